// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NormalizeWallet lower-cases and trims a wallet address. Every storage key
// and every key derivation goes through it, so addresses that differ only in
// case or surrounding whitespace address the same vault.
func NormalizeWallet(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ShortAddress renders an address as its first 6 and last 4 characters,
// e.g. "0xab12...cd34". Addresses of 10 characters or fewer are returned
// unchanged.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
