// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// DerivedKeySize is the length in bytes of the key produced by [DeriveKey].
const DerivedKeySize = sha256.Size

// DerivedKey is the symmetric key of one wallet: SHA-256 of the normalized
// wallet address. It is recomputed on every operation and never persisted.
type DerivedKey [DerivedKeySize]byte

// DeriveKey lower-cases and trims walletAddress, then hashes it with
// SHA-256. The result depends only on the normalized address, so
// " 0xABC " and "0xabc" share a key in every process.
//
// Returns [ErrInvalidKeyInput] if the address is empty after trimming.
func DeriveKey(walletAddress string) (DerivedKey, error) {
	normalized := models.NormalizeWallet(walletAddress)
	if normalized == "" {
		return DerivedKey{}, ErrInvalidKeyInput
	}
	return sha256.Sum256([]byte(normalized)), nil
}

// Bytes returns a copy of the raw key material, sized for AES-256 and
// XChaCha20-Poly1305.
func (k DerivedKey) Bytes() []byte {
	out := make([]byte, DerivedKeySize)
	copy(out, k[:])
	return out
}

// String renders the key as 64 lower-case hex characters.
func (k DerivedKey) String() string {
	return hex.EncodeToString(k[:])
}
