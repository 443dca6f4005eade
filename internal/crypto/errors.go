// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the wallet cipher. Callers match them with [errors.Is];
// the codec wraps them with the failing step for diagnostics.
var (
	// ErrInvalidKeyInput is returned when the wallet address used as key
	// material is empty or blank.
	ErrInvalidKeyInput = errors.New("invalid key input: wallet address is empty")

	// ErrMissingInput is returned when the plaintext to encrypt or the token
	// to decrypt is empty.
	ErrMissingInput = errors.New("missing input")

	// ErrDecryptionFailed is returned when a token cannot be opened: bad
	// encoding, truncated blob, wrong wallet, or an empty result.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnknownCipher is returned for cipher names or token headers that do
	// not match a supported algorithm.
	ErrUnknownCipher = errors.New("unknown cipher")
)
