package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testPassphrase = "correct horse battery staple"
	testSessionJWT = "header.payload.signature"
)

// clientFixture wires both client services to one keyring over mocks.
type clientFixture struct {
	adapter  *mock.MockServerAdapter
	sessions *mock.MockLocalSessionRepository
	kdf      *mock.MockKeyDerivation

	keys  *keyring
	auth  *clientAuthService
	vault *clientVaultService
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &clientFixture{
		adapter:  mock.NewMockServerAdapter(ctrl),
		sessions: mock.NewMockLocalSessionRepository(ctrl),
		kdf:      mock.NewMockKeyDerivation(ctrl),
	}

	f.keys = newKeyring(f.sessions, f.adapter)
	f.auth = newClientAuthService(f.adapter, f.keys, f.kdf, logger.Nop())
	f.vault = newClientVaultService(f.adapter, f.keys, logger.Nop())
	return f
}

// expectStoredSession makes the next unlock find key and token on disk.
func (f *clientFixture) expectStoredSession(t *testing.T, key *crypto.VaultKey) {
	t.Helper()

	jwk, err := key.ExportJWK()
	require.NoError(t, err)

	f.sessions.EXPECT().Load(gomock.Any()).Return(models.LocalSession{Token: testSessionJWT, VaultKeyJWK: jwk}, nil)
	f.adapter.EXPECT().SetToken(testSessionJWT)
}

func deriveTestKey(t *testing.T, passphrase string) *crypto.VaultKey {
	t.Helper()

	kdf, err := crypto.NewKeyDerivation(crypto.KDFConfig{})
	require.NoError(t, err)

	key, err := kdf.Derive(passphrase)
	require.NoError(t, err)
	return key
}

// sealedEntry returns an entry whose password is secret sealed under key.
func sealedEntry(t *testing.T, id int64, secret string, key *crypto.VaultKey) models.VaultEntry {
	t.Helper()

	sealed, err := crypto.NewVaultCipher().Encrypt(secret, key)
	require.NoError(t, err)
	encoded := sealed.Encode()

	return models.VaultEntry{
		ID:                id,
		Website:           "example.com",
		Username:          "alice",
		EncryptedPassword: encoded.Ciphertext,
		IV:                encoded.IV,
		Version:           1,
	}
}

func openTestEntry(t *testing.T, entry models.VaultEntry, key *crypto.VaultKey) string {
	t.Helper()

	plaintext, err := openEntry(crypto.NewVaultCipher(), entry, key)
	require.NoError(t, err)
	return plaintext
}
