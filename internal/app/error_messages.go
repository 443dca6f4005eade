// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// walletvault command line.
//
// All Msg* constants are human-readable message strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across commands.
package app

const (
	// MsgCredentialSaved confirms a successful save.
	MsgCredentialSaved = "credentials saved"

	// MsgCredentialAlreadyExists is shown when the wallet already holds
	// credentials for the platform. Entries cannot be replaced.
	MsgCredentialAlreadyExists = "credentials for this platform already exist"

	// MsgVaultUnreadable is shown when stored credentials exist but cannot
	// be decrypted with the connected wallet.
	MsgVaultUnreadable = "stored credentials could not be decrypted"

	// MsgDecryptionError marks a single entry whose password did not open.
	MsgDecryptionError = "decryption error"

	// MsgNoCredentials is shown when a wallet has nothing stored yet.
	MsgNoCredentials = "no credentials saved yet"

	// MsgCredentialNotFound is shown when no credentials are registered for
	// the requested platform.
	MsgCredentialNotFound = "no credentials found for this platform"

	// MsgNoWalletConnected is shown when a command needs a connected wallet
	// and none is remembered.
	MsgNoWalletConnected = "no wallet connected, run `walletvault connect` first"

	// MsgNoWalletPublished is shown on the extension side when the web app
	// has not published a wallet yet.
	MsgNoWalletPublished = "no wallet published for the extension"

	// MsgWalletConnected confirms a successful connection.
	MsgWalletConnected = "wallet connected"

	// MsgWalletDisconnected confirms a disconnect.
	MsgWalletDisconnected = "wallet disconnected"

	// MsgConnectCancelled is shown when the user declined to share an
	// address.
	MsgConnectCancelled = "wallet connection cancelled"

	// MsgInvalidWallet is shown for an empty wallet address.
	MsgInvalidWallet = "wallet address must not be empty"

	// MsgUnknownPlatform is shown for platforms outside the supported set.
	MsgUnknownPlatform = "unsupported platform"

	// MsgInvalidDataProvided is shown when a credential fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownSite is shown when a page URL belongs to no supported
	// platform.
	MsgUnknownSite = "this site is not supported"

	// MsgCopiedToClipboard confirms that a password was copied.
	MsgCopiedToClipboard = "password copied to clipboard"

	// MsgInternalError is shown for failures the user cannot resolve, such
	// as an unavailable database.
	MsgInternalError = "something went wrong, see the log for details"
)
