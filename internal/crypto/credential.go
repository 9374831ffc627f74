// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"
)

// PasswordSaltSize is the length of the random HMAC key used as the login
// password salt (the HMAC-SHA512 block size).
const PasswordSaltSize = 64

// PasswordHash is a stored login credential: HMAC-SHA512(Salt, password).
type PasswordHash struct {
	Hash []byte
	Salt []byte
}

// Encode returns hash and salt as standard base64, one string per column.
func (p PasswordHash) Encode() (hash, salt string) {
	return base64.StdEncoding.EncodeToString(p.Hash), base64.StdEncoding.EncodeToString(p.Salt)
}

// credentialVerifier is the HMAC-SHA512 implementation of [CredentialVerifier].
type credentialVerifier struct {
	random io.Reader
}

// NewCredentialVerifier returns a [CredentialVerifier] drawing salts from
// crypto/rand.
func NewCredentialVerifier() CredentialVerifier {
	return &credentialVerifier{random: rand.Reader}
}

// HashPassword implements [CredentialVerifier].
func (c *credentialVerifier) HashPassword(password string) (PasswordHash, error) {
	if password == "" {
		return PasswordHash{}, errEmptyPassword
	}

	salt := make([]byte, PasswordSaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return PasswordHash{}, fmt.Errorf("generate salt: %w", err)
	}

	return PasswordHash{Hash: computeHMAC(password, salt), Salt: salt}, nil
}

// VerifyPassword implements [CredentialVerifier]. An empty salt or hash never
// verifies.
func (c *credentialVerifier) VerifyPassword(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}

	return hmac.Equal(computeHMAC(password, salt), hash)
}

// VerifyEncoded implements [CredentialVerifier].
func (c *credentialVerifier) VerifyEncoded(password, hash, salt string) bool {
	rawHash, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	return c.VerifyPassword(password, rawHash, rawSalt)
}

func computeHMAC(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
