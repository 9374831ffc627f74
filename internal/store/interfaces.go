package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. It stores only the login password hash
// and salt, never the password itself.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns [ErrLoginAlreadyExists] on a username or email collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultEntryRepository is the vault store: it persists opaque
// (ciphertext, iv, owner) tuples. Every method is scoped by owner id, and an
// entry owned by someone else is indistinguishable from a missing one.
type VaultEntryRepository interface {
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	GetEntry(ctx context.Context, ownerID, entryID int64) (models.VaultEntry, error)
	ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)

	// UpdateEntry overwrites the entry and bumps its version. When
	// entry.Version is positive it must match the stored version, otherwise
	// [ErrVersionConflict] is returned.
	UpdateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	DeleteEntry(ctx context.Context, ownerID, entryID int64) error
}
