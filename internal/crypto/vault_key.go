// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// KeySize is the vault key length in bytes (AES-256).
const KeySize = 32

const (
	jwkKeyType   = "oct"
	jwkAlgorithm = "A256GCM"
)

// VaultKey is an opaque handle over the 256-bit vault key. The raw bytes are
// never exposed; the handle can be exported as a JWK for client-local
// persistence and must be wiped on logout.
type VaultKey struct {
	key []byte
}

func newVaultKey(key []byte) *VaultKey {
	return &VaultKey{key: key}
}

func (k *VaultKey) usable() bool {
	return k != nil && len(k.key) == KeySize
}

// Wipe zeroes the key material. A wiped key is rejected by every cipher
// operation with [ErrInvalidInput].
func (k *VaultKey) Wipe() {
	if k == nil {
		return
	}
	clear(k.key)
	k.key = nil
}

// Equal reports whether both handles hold the same usable key. The
// comparison runs in constant time.
func (k *VaultKey) Equal(other *VaultKey) bool {
	if !k.usable() || !other.usable() {
		return false
	}
	return subtle.ConstantTimeCompare(k.key, other.key) == 1
}

// jsonWebKey is the symmetric JWK shape (RFC 7517) produced by WebCrypto for
// an exportable AES-GCM key.
type jsonWebKey struct {
	Kty    string   `json:"kty"`
	K      string   `json:"k"`
	Alg    string   `json:"alg,omitempty"`
	Ext    bool     `json:"ext"`
	KeyOps []string `json:"key_ops,omitempty"`
}

// ExportJWK serialises the key as a JSON Web Key. The output is key material
// and must only ever be written to client-local storage.
func (k *VaultKey) ExportJWK() ([]byte, error) {
	if !k.usable() {
		return nil, errUnusableKey
	}

	return json.Marshal(jsonWebKey{
		Kty:    jwkKeyType,
		K:      base64.RawURLEncoding.EncodeToString(k.key),
		Alg:    jwkAlgorithm,
		Ext:    true,
		KeyOps: []string{"encrypt", "decrypt"},
	})
}

// ImportJWK restores a key handle from [VaultKey.ExportJWK] output. Returns
// [ErrInvalidInput] for malformed JSON, a non-symmetric key type, a foreign
// algorithm or a key that is not 256 bits long.
func ImportJWK(data []byte) (*VaultKey, error) {
	var jwk jsonWebKey
	if err := json.Unmarshal(data, &jwk); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedKey, err)
	}

	if jwk.Kty != jwkKeyType || (jwk.Alg != "" && jwk.Alg != jwkAlgorithm) {
		return nil, errMalformedKey
	}

	key, err := base64.RawURLEncoding.DecodeString(jwk.K)
	if err != nil || len(key) != KeySize {
		return nil, errMalformedKey
	}

	return newVaultKey(key), nil
}
