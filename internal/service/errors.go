package service

import "errors"

var (
	// ErrAlreadyExists is returned by Save when the wallet's vault already
	// holds an entry for the platform. Nothing is written in that case.
	ErrAlreadyExists = errors.New("credential for platform already exists")

	// ErrNotFound is returned when a pointer, a session or a vault entry is
	// absent.
	ErrNotFound = errors.New("not found")

	// ErrVaultUnreadable is returned when a stored vault blob exists but
	// cannot be decrypted or decoded under the wallet's key.
	ErrVaultUnreadable = errors.New("vault is unreadable")

	// ErrConnectCancelled is returned by a [WalletProvider] when the user
	// declined to share an address.
	ErrConnectCancelled = errors.New("wallet connection cancelled")
)
