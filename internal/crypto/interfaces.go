// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic core of the vault.
//
// Two independent secrets flow through it and never meet:
//
//	master passphrase → KeyDerivation → VaultKey → VaultCipher   (client only)
//	login password    → CredentialVerifier → hash + salt         (server only)
//
// The VaultKey is produced and used on the client; the server stores only
// ciphertext and IV and never holds key material.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a master passphrase into a [VaultKey].
type KeyDerivation interface {
	// DeriveKey runs PBKDF2-HMAC-SHA256 over passphrase and salt and returns
	// a 256-bit key handle. The result is deterministic for the same inputs.
	// Returns [ErrInvalidInput] if passphrase or salt is empty.
	DeriveKey(passphrase string, salt []byte) (*VaultKey, error)

	// Derive is DeriveKey with the deployment salt the deriver was built with.
	Derive(passphrase string) (*VaultKey, error)
}

// VaultCipher seals and opens single secrets with AES-256-GCM.
type VaultCipher interface {
	// Encrypt seals plaintext under key with a fresh random 96-bit IV.
	// The returned ciphertext carries the 128-bit authentication tag.
	Encrypt(plaintext string, key *VaultKey) (Sealed, error)

	// Decrypt opens ciphertext with iv and key. Any tag mismatch (wrong key,
	// tampered ciphertext or IV) yields [ErrAuthenticationFailure] and an
	// empty string.
	Decrypt(ciphertext, iv []byte, key *VaultKey) (string, error)
}

// CredentialVerifier hashes and verifies login passwords. It is unrelated to
// the vault key: the login password is a different secret and its hash is
// HMAC-SHA512 under a random per-user salt.
type CredentialVerifier interface {
	// HashPassword returns the HMAC-SHA512 of password keyed with 64 fresh
	// random bytes, together with those bytes as the salt.
	HashPassword(password string) (PasswordHash, error)

	// VerifyPassword recomputes the HMAC and compares it in constant time.
	VerifyPassword(password string, hash, salt []byte) bool

	// VerifyEncoded is VerifyPassword over base64-encoded hash and salt. It
	// returns false on any decoding error.
	VerifyEncoded(password, hash, salt string) bool
}
