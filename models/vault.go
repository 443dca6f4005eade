// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultStatus tells apart the three outcomes of reading a wallet's vault.
type VaultStatus int

const (
	// VaultAbsent means nothing is stored for the wallet yet.
	VaultAbsent VaultStatus = iota

	// VaultLoaded means the blob was present and decrypted successfully.
	VaultLoaded

	// VaultUnreadable means a blob is present but could not be decrypted
	// or decoded (wrong key, truncated or tampered token).
	VaultUnreadable
)

func (s VaultStatus) String() string {
	switch s {
	case VaultAbsent:
		return "absent"
	case VaultLoaded:
		return "loaded"
	case VaultUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// VaultListing is the result of listing a wallet's credentials. Entries is
// always non-nil; when Status is [VaultUnreadable] it is empty and Err holds
// the decryption failure.
type VaultListing struct {
	Entries VaultRecord
	Status  VaultStatus
	Err     error
}

// DecryptionError reports whether the listing failed to decrypt, as opposed
// to simply having nothing stored.
func (l VaultListing) DecryptionError() bool {
	return l.Status == VaultUnreadable
}

// RevealedEntry is a vault entry with its password field decrypted. When the
// field cannot be opened, Password is empty and Err is set so the entry can
// be shown in a "decryption error" state without dropping the rest of the list.
type RevealedEntry struct {
	CredentialEntry
	Err error
}

// DecryptionError reports whether the password field of the entry failed
// to decrypt.
func (e RevealedEntry) DecryptionError() bool {
	return e.Err != nil
}

// PlatformStatus is one row of the extension's per-platform overview.
type PlatformStatus struct {
	Platform   Platform
	Registered bool
}
