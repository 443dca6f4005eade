// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line given in args and returns once the
	// command finished.
	Run(ctx context.Context, args []string) error
}

// Clipboard receives revealed passwords on `ext lookup --copy`.
type Clipboard interface {
	WriteAll(text string) error
}
