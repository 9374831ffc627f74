// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// entryInputFields are checked on the client before anything is sealed or
// sent. Ciphertext and IV are produced here, so only the clear fields need
// checking.
var entryInputFields = []string{validators.FieldWebsite, validators.FieldEntryUsername}

type clientVaultService struct {
	adapter   adapter.ServerAdapter
	keys      *keyring
	cipher    crypto.VaultCipher
	validator validators.Validator

	logger *logger.Logger
}

func newClientVaultService(serverAdapter adapter.ServerAdapter, keys *keyring, logger *logger.Logger) *clientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		keys:      keys,
		cipher:    crypto.NewVaultCipher(),
		validator: validators.NewVaultEntryValidator(),
		logger:    logger,
	}
}

func (v *clientVaultService) Add(ctx context.Context, website, username, secret string) (models.VaultEntry, error) {
	entry := models.VaultEntry{Website: website, Username: username}
	if err := v.validator.Validate(ctx, entry, entryInputFields...); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key, err := v.keys.unlock(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	if err = v.seal(&entry, secret, key); err != nil {
		return models.VaultEntry{}, err
	}

	created, err := v.adapter.CreateEntry(ctx, entry)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("create entry: %w", mapAdapterError(err))
	}

	v.logger.Debug().Str("func", "*clientVaultService.Add").Int64("entry_id", created.ID).Msg("entry added")
	return created, nil
}

func (v *clientVaultService) List(ctx context.Context) ([]models.VaultEntry, error) {
	if _, err := v.keys.unlock(ctx); err != nil {
		return nil, err
	}

	entries, err := v.adapter.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", mapAdapterError(err))
	}
	return entries, nil
}

func (v *clientVaultService) Reveal(ctx context.Context, id int64) (models.RevealedEntry, error) {
	key, err := v.keys.unlock(ctx)
	if err != nil {
		return models.RevealedEntry{}, err
	}

	entry, err := v.adapter.GetEntry(ctx, id)
	if err != nil {
		return models.RevealedEntry{}, fmt.Errorf("get entry: %w", mapAdapterError(err))
	}

	password, err := openEntry(v.cipher, entry, key)
	if err != nil {
		v.logger.Warn().Str("func", "*clientVaultService.Reveal").Int64("entry_id", id).Msg("entry could not be decrypted")
		return models.RevealedEntry{}, err
	}

	return models.RevealedEntry{
		ID:       entry.ID,
		Website:  entry.Website,
		Username: entry.Username,
		Password: password,
		Version:  entry.Version,
	}, nil
}

func (v *clientVaultService) Update(ctx context.Context, changes models.RevealedEntry) error {
	key, err := v.keys.unlock(ctx)
	if err != nil {
		return err
	}

	current, err := v.adapter.GetEntry(ctx, changes.ID)
	if err != nil {
		return fmt.Errorf("get entry: %w", mapAdapterError(err))
	}

	if changes.Website != "" {
		current.Website = changes.Website
	}
	if changes.Username != "" {
		current.Username = changes.Username
	}
	if changes.Version > 0 {
		current.Version = changes.Version
	}

	if err = v.validator.Validate(ctx, current, entryInputFields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if changes.Password != "" {
		if err = v.seal(&current, changes.Password, key); err != nil {
			return err
		}
	}

	if err = v.adapter.UpdateEntry(ctx, current); err != nil {
		return fmt.Errorf("update entry: %w", mapAdapterError(err))
	}
	return nil
}

func (v *clientVaultService) Delete(ctx context.Context, id int64) error {
	if _, err := v.keys.unlock(ctx); err != nil {
		return err
	}

	if err := v.adapter.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", mapAdapterError(err))
	}
	return nil
}

func (v *clientVaultService) ServerVersion(ctx context.Context) (string, error) {
	version, err := v.adapter.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

// seal encrypts secret under key into entry's ciphertext and IV fields.
func (v *clientVaultService) seal(entry *models.VaultEntry, secret string, key *crypto.VaultKey) error {
	sealed, err := v.cipher.Encrypt(secret, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	encoded := sealed.Encode()
	entry.EncryptedPassword = encoded.Ciphertext
	entry.IV = encoded.IV
	return nil
}
