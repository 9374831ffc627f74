package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) *VaultKey {
	return newVaultKey(bytes.Repeat([]byte{b}, KeySize))
}

func TestVaultKey_ExportImportRoundTrip(t *testing.T) {
	key := testKey(0x42)

	data, err := key.ExportJWK()
	require.NoError(t, err)

	var jwk map[string]any
	require.NoError(t, json.Unmarshal(data, &jwk))
	assert.Equal(t, "oct", jwk["kty"])
	assert.Equal(t, "A256GCM", jwk["alg"])
	assert.Equal(t, true, jwk["ext"])
	assert.Equal(t, []any{"encrypt", "decrypt"}, jwk["key_ops"])

	imported, err := ImportJWK(data)
	require.NoError(t, err)
	assert.True(t, key.Equal(imported))
}

func TestVaultKey_ImportedKeyDecrypts(t *testing.T) {
	kdf := newTestDeriver(t)
	key, err := kdf.Derive("correct-horse-battery")
	require.NoError(t, err)

	cipher := NewVaultCipher()
	sealed, err := cipher.Encrypt("mySecret123", key)
	require.NoError(t, err)

	data, err := key.ExportJWK()
	require.NoError(t, err)
	restored, err := ImportJWK(data)
	require.NoError(t, err)

	plaintext, err := cipher.Decrypt(sealed.Ciphertext, sealed.IV, restored)
	require.NoError(t, err)
	assert.Equal(t, "mySecret123", plaintext)
}

func TestImportJWK_Malformed(t *testing.T) {
	validK := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{1}, KeySize))
	shortK := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{1}, 16))

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not-json"},
		{name: "wrong kty", data: `{"kty":"RSA","k":"` + validK + `"}`},
		{name: "wrong alg", data: `{"kty":"oct","k":"` + validK + `","alg":"A128GCM"}`},
		{name: "short key", data: `{"kty":"oct","k":"` + shortK + `"}`},
		{name: "bad base64", data: `{"kty":"oct","k":"***"}`},
		{name: "missing key", data: `{"kty":"oct"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ImportJWK([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, key)
		})
	}
}

func TestImportJWK_AlgOptional(t *testing.T) {
	k := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{7}, KeySize))

	key, err := ImportJWK([]byte(`{"kty":"oct","k":"` + k + `"}`))
	require.NoError(t, err)
	assert.True(t, key.Equal(testKey(7)))
}

func TestVaultKey_Wipe(t *testing.T) {
	key := testKey(0x42)
	raw := key.key

	key.Wipe()

	assert.Equal(t, make([]byte, KeySize), raw)
	assert.False(t, key.usable())

	_, err := key.ExportJWK()
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewVaultCipher().Encrypt("mySecret123", key)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var nilKey *VaultKey
	assert.NotPanics(t, nilKey.Wipe)
}

func TestVaultKey_Equal(t *testing.T) {
	assert.True(t, testKey(1).Equal(testKey(1)))
	assert.False(t, testKey(1).Equal(testKey(2)))
	assert.False(t, testKey(1).Equal(nil))

	wiped := testKey(1)
	wiped.Wipe()
	assert.False(t, wiped.Equal(wiped))
}
