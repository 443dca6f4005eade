// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Supported cipher names, as accepted by [NewCipherCodec] and the APP_CIPHER
// configuration value.
const (
	CipherAESGCM            = "aes-gcm"
	CipherXChaCha20Poly1305 = "xchacha20-poly1305"
)

// Token header bytes. The header lets a reader open tokens written by a
// process configured with a different cipher.
const (
	headerAESGCM            byte = 0x01
	headerXChaCha20Poly1305 byte = 0x02
)

// suite binds a token header to the AEAD constructor for that algorithm.
type suite struct {
	name   string
	header byte
	aead   func(key []byte) (cipher.AEAD, error)
}

var suites = map[byte]suite{
	headerAESGCM: {
		name:   CipherAESGCM,
		header: headerAESGCM,
		aead: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, fmt.Errorf("create cipher: %w", err)
			}
			return cipher.NewGCM(block)
		},
	},
	headerXChaCha20Poly1305: {
		name:   CipherXChaCha20Poly1305,
		header: headerXChaCha20Poly1305,
		aead:   chacha20poly1305.NewX,
	},
}

// walletCodec is the private implementation of [CipherCodec].
type walletCodec struct {
	// sealer is used for Encrypt; Decrypt picks the suite from the token header.
	sealer suite
}

// NewCipherCodec constructs a [CipherCodec] that seals new tokens with the
// named cipher. An empty name selects AES-256-GCM. Tokens of every supported
// cipher can be opened regardless of the configured name.
//
// Returns [ErrUnknownCipher] for unsupported names.
func NewCipherCodec(name string) (CipherCodec, error) {
	if name == "" {
		name = CipherAESGCM
	}
	for _, s := range suites {
		if s.name == name {
			return &walletCodec{sealer: s}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
}

// Encrypt implements [CipherCodec]. The token is the standard Base64 encoding
// of: header (1 byte) ‖ nonce ‖ ciphertext+tag.
func (c *walletCodec) Encrypt(plaintext, walletAddress string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: plaintext is empty", ErrMissingInput)
	}
	key, err := DeriveKey(walletAddress)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMissingInput, err)
	}

	aead, err := c.sealer.aead(key.Bytes())
	if err != nil {
		return "", fmt.Errorf("create %s: %w", c.sealer.name, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, c.sealer.header)
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [CipherCodec].
func (c *walletCodec) Decrypt(token, walletAddress string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: token is empty", ErrMissingInput)
	}
	key, err := DeriveKey(walletAddress)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}
	if len(blob) == 0 {
		return "", fmt.Errorf("%w: token too short", ErrDecryptionFailed)
	}

	s, ok := suites[blob[0]]
	if !ok {
		return "", fmt.Errorf("%w: %w: header 0x%02x", ErrDecryptionFailed, ErrUnknownCipher, blob[0])
	}

	aead, err := s.aead(key.Bytes())
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrDecryptionFailed, s.name, err)
	}

	body := blob[1:]
	nonceSize := aead.NonceSize()
	if len(body) < nonceSize+aead.Overhead() {
		return "", fmt.Errorf("%w: token too short", ErrDecryptionFailed)
	}
	nonce, ciphertext := body[:nonceSize], body[nonceSize:]

	// An authentication failure almost always means another wallet sealed it.
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if len(plaintext) == 0 {
		return "", fmt.Errorf("%w: empty plaintext", ErrDecryptionFailed)
	}

	return string(plaintext), nil
}
