// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/json"
	"fmt"
)

// SealJSON marshals v to JSON and encrypts it with codec under walletAddress.
// This is how a whole vault record becomes one blob.
func SealJSON(codec CipherCodec, v any, walletAddress string) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	token, err := codec.Encrypt(string(plaintext), walletAddress)
	if err != nil {
		return "", fmt.Errorf("encrypt data: %w", err)
	}
	return token, nil
}

// OpenJSON decrypts token under walletAddress and unmarshals the JSON into
// target, which must be a non-nil pointer. A payload that decrypts but is not
// valid JSON for target is reported as [ErrDecryptionFailed] too: from the
// caller's side both mean the stored blob is unusable.
func OpenJSON(codec CipherCodec, token, walletAddress string, target any) error {
	plaintext, err := codec.Decrypt(token, walletAddress)
	if err != nil {
		return fmt.Errorf("decrypt data: %w", err)
	}

	if err := json.Unmarshal([]byte(plaintext), target); err != nil {
		return fmt.Errorf("%w: unmarshal data: %w", ErrDecryptionFailed, err)
	}
	return nil
}
