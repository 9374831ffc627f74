// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count the deriver accepts.
	MinIterations = 100_000

	// DefaultSalt is the deployment-wide derivation salt. Every user of a
	// deployment shares it, so equal passphrases yield equal keys.
	DefaultSalt = "static-salt"
)

// KDFConfig parameterises a [KeyDerivation].
type KDFConfig struct {
	// Iterations is the PBKDF2 round count. Zero selects MinIterations.
	Iterations int

	// Salt is the deployment salt used by Derive. Empty selects DefaultSalt.
	Salt []byte
}

// keyDeriver is the PBKDF2-HMAC-SHA256 implementation of [KeyDerivation].
type keyDeriver struct {
	iterations int
	salt       []byte
}

// NewKeyDerivation validates cfg and builds a [KeyDerivation]. Iteration
// counts below [MinIterations] are rejected with [ErrInvalidInput].
func NewKeyDerivation(cfg KDFConfig) (KeyDerivation, error) {
	iterations := cfg.Iterations
	if iterations == 0 {
		iterations = MinIterations
	}
	if iterations < MinIterations {
		return nil, errWeakIterations
	}

	salt := cfg.Salt
	if len(salt) == 0 {
		salt = []byte(DefaultSalt)
	}

	return &keyDeriver{
		iterations: iterations,
		salt:       append([]byte(nil), salt...),
	}, nil
}

// DeriveKey implements [KeyDerivation].
func (k *keyDeriver) DeriveKey(passphrase string, salt []byte) (*VaultKey, error) {
	if passphrase == "" {
		return nil, errEmptyPassphrase
	}
	if len(salt) == 0 {
		return nil, errEmptySalt
	}

	return newVaultKey(pbkdf2.Key([]byte(passphrase), salt, k.iterations, KeySize, sha256.New)), nil
}

// Derive implements [KeyDerivation].
func (k *keyDeriver) Derive(passphrase string) (*VaultKey, error) {
	return k.DeriveKey(passphrase, k.salt)
}
