// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// IVSize is the AES-GCM nonce length in bytes (96 bits).
	IVSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes (128 bits).
	TagSize = 16
)

// Sealed is the output of [VaultCipher.Encrypt]: the AEAD ciphertext with its
// tag appended, and the IV it was sealed under. Both are opaque bytes.
type Sealed struct {
	Ciphertext []byte
	IV         []byte
}

// aesGCMCipher is the AES-256-GCM implementation of [VaultCipher].
type aesGCMCipher struct {
	// random supplies IVs. Always crypto/rand outside of tests.
	random io.Reader
}

// NewVaultCipher returns a [VaultCipher] drawing IVs from crypto/rand.
func NewVaultCipher() VaultCipher {
	return &aesGCMCipher{random: rand.Reader}
}

// Encrypt implements [VaultCipher]. No associated data is bound.
func (c *aesGCMCipher) Encrypt(plaintext string, key *VaultKey) (Sealed, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return Sealed{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return Sealed{}, fmt.Errorf("generate iv: %w", err)
	}

	return Sealed{
		Ciphertext: gcm.Seal(nil, iv, []byte(plaintext), nil),
		IV:         iv,
	}, nil
}

// Decrypt implements [VaultCipher].
func (c *aesGCMCipher) Decrypt(ciphertext, iv []byte, key *VaultKey) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(iv) != IVSize || len(ciphertext) < TagSize {
		return "", errDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", errDecryptionFailed
	}

	return string(plaintext), nil
}

func newGCM(key *VaultKey) (cipher.AEAD, error) {
	if !key.usable() {
		return nil, errUnusableKey
	}

	block, err := aes.NewCipher(key.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
