package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Hand-written fakes for the server-side store interfaces. Unset funcs
// return zero values.

type fakeUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return user, nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if f.findFn != nil {
		return f.findFn(ctx, email)
	}
	return models.User{}, nil
}

type fakeVaultEntryRepository struct {
	createFn func(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	getFn    func(ctx context.Context, ownerID, entryID int64) (models.VaultEntry, error)
	listFn   func(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
	updateFn func(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	deleteFn func(ctx context.Context, ownerID, entryID int64) error
}

func (f *fakeVaultEntryRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	if f.createFn != nil {
		return f.createFn(ctx, entry)
	}
	return entry, nil
}

func (f *fakeVaultEntryRepository) GetEntry(ctx context.Context, ownerID, entryID int64) (models.VaultEntry, error) {
	if f.getFn != nil {
		return f.getFn(ctx, ownerID, entryID)
	}
	return models.VaultEntry{}, nil
}

func (f *fakeVaultEntryRepository) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	if f.listFn != nil {
		return f.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (f *fakeVaultEntryRepository) UpdateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, entry)
	}
	return entry, nil
}

func (f *fakeVaultEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, ownerID, entryID)
	}
	return nil
}
