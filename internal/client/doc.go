// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the walletvault command line.
//
// It wires configuration, storages and services into one process and maps
// commands onto the two runtime contexts: the web-app side (connect, save,
// list) and the extension side (ext resolve, ext status, ext lookup). The
// two sides only meet in storage.
package client
