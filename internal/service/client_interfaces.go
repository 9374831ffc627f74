package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client's account session. The master
// passphrase is turned into the vault key on this device only; the server
// sees the login password and never the passphrase.
type ClientAuthService interface {
	// Register creates an account, derives the vault key from
	// masterPassphrase and stores the token and key locally. The passphrase
	// must be at least [validators.MinPassphraseLength] characters; the
	// returned strength lets the caller warn about weak ones.
	Register(ctx context.Context, username, email, password, masterPassphrase string) (validators.PassphraseStrength, error)

	// Login authenticates and derives the vault key. If the vault already
	// holds entries the key is checked against one of them first, and
	// [ErrCouldNotDecrypt] is returned for a wrong passphrase without
	// storing anything.
	Login(ctx context.Context, email, password, masterPassphrase string) error

	// Logout wipes the in-memory key and removes the stored session.
	Logout(ctx context.Context) error
}

// ClientVaultService works on the logged-in user's vault. Secrets are
// sealed before they are handed to the adapter and opened only in Reveal.
type ClientVaultService interface {
	// Add encrypts secret and stores a new entry.
	Add(ctx context.Context, website, username, secret string) (models.VaultEntry, error)

	// List returns entries as stored: website and username in clear, the
	// password still sealed.
	List(ctx context.Context) ([]models.VaultEntry, error)

	// Reveal decrypts one entry. A wrong key or tampered data yields
	// [ErrCouldNotDecrypt] and no plaintext.
	Reveal(ctx context.Context, id int64) (models.RevealedEntry, error)

	// Update changes an entry. Empty fields of changes are kept as they
	// are; a non-empty Password is re-sealed under a fresh IV. A non-zero
	// changes.Version is sent as the expected version.
	Update(ctx context.Context, changes models.RevealedEntry) error

	// Delete removes an entry.
	Delete(ctx context.Context, id int64) error

	// ServerVersion reports the server's version string.
	ServerVersion(ctx context.Context) (string, error)
}
