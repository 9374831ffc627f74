package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	keys      *keyring
	kdf       crypto.KeyDerivation
	cipher    crypto.VaultCipher
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions store.LocalSessionRepository, kdf crypto.KeyDerivation, logger *logger.Logger) ClientAuthService {
	return newClientAuthService(serverAdapter, newKeyring(sessions, serverAdapter), kdf, logger)
}

func newClientAuthService(serverAdapter adapter.ServerAdapter, keys *keyring, kdf crypto.KeyDerivation, logger *logger.Logger) *clientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		keys:      keys,
		kdf:       kdf,
		cipher:    crypto.NewVaultCipher(),
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, username, email, password, masterPassphrase string) (validators.PassphraseStrength, error) {
	user := models.User{Username: username, Email: email, Password: password}
	if err := a.validator.Validate(ctx, user, validators.RegisterFields...); err != nil {
		return validators.PassphraseStrength{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	strength, err := validators.ValidateMasterPassphrase(masterPassphrase, username, email)
	if err != nil {
		return validators.PassphraseStrength{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("server rejected registration")
		return validators.PassphraseStrength{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	key, err := a.kdf.Derive(masterPassphrase)
	if err != nil {
		return validators.PassphraseStrength{}, fmt.Errorf("derive vault key: %w", err)
	}

	if err = a.keys.store(ctx, token.SignedString, key); err != nil {
		key.Wipe()
		return validators.PassphraseStrength{}, err
	}

	a.logger.Info().Str("func", "*clientAuthService.Register").Int("passphrase_score", strength.Score).Msg("registered")
	return strength, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password, masterPassphrase string) error {
	if masterPassphrase == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrPassphraseTooShort)
	}

	token, err := a.adapter.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("server rejected login")
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	key, err := a.kdf.Derive(masterPassphrase)
	if err != nil {
		return fmt.Errorf("derive vault key: %w", err)
	}

	if err = a.checkKey(ctx, key); err != nil {
		key.Wipe()
		a.adapter.SetToken("")
		return err
	}

	if err = a.keys.store(ctx, token.SignedString, key); err != nil {
		key.Wipe()
		return err
	}

	a.logger.Info().Str("func", "*clientAuthService.Login").Msg("logged in")
	return nil
}

// checkKey opens the first stored entry with key. An empty vault accepts
// any key.
func (a *clientAuthService) checkKey(ctx context.Context, key *crypto.VaultKey) error {
	entries, err := a.adapter.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", mapAdapterError(err))
	}
	if len(entries) == 0 {
		return nil
	}

	if _, err = openEntry(a.cipher, entries[0], key); err != nil {
		a.logger.Warn().Str("func", "*clientAuthService.checkKey").Int64("entry_id", entries[0].ID).
			Msg("master passphrase does not open the vault")
		return err
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.keys.lock()

	if err := a.keys.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	a.logger.Info().Str("func", "*clientAuthService.Logout").Msg("logged out")
	return nil
}

// openEntry decrypts entry's password. Malformed base64 is treated like a
// failed tag check.
func openEntry(cipher crypto.VaultCipher, entry models.VaultEntry, key *crypto.VaultKey) (string, error) {
	sealed, err := crypto.EncodedSecret{Ciphertext: entry.EncryptedPassword, IV: entry.IV}.Decode()
	if err != nil {
		return "", ErrCouldNotDecrypt
	}

	plaintext, err := cipher.Decrypt(sealed.Ciphertext, sealed.IV, key)
	if errors.Is(err, crypto.ErrAuthenticationFailure) {
		return "", ErrCouldNotDecrypt
	}
	if err != nil {
		return "", fmt.Errorf("decrypt entry %d: %w", entry.ID, err)
	}
	return plaintext, nil
}
