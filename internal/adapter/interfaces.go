// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the vault server.
//
// [ServerAdapter] decouples the client services from the protocol. The only
// implementation is HTTP/REST over resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's message is kept after the
// sentinel.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the vault API. It only ever sends
// ciphertext; plaintext secrets and key material never reach it.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent entry requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned session token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates with email and password and stores the returned
	// session token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListEntries returns all entries of the token's owner.
	ListEntries(ctx context.Context) ([]models.VaultEntry, error)

	// GetEntry returns one entry. [ErrNotFound] covers both a missing entry
	// and one owned by someone else.
	GetEntry(ctx context.Context, id int64) (models.VaultEntry, error)

	// CreateEntry stores a new entry and returns it with its server id and
	// version.
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	// UpdateEntry overwrites an entry. A stale entry.Version yields
	// [ErrConflict].
	UpdateEntry(ctx context.Context, entry models.VaultEntry) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id int64) error

	// ServerVersion returns the server's version string.
	ServerVersion(ctx context.Context) (string, error)
}
