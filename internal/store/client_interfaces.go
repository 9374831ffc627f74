package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository is the client key store. It holds at most one
// session: the token and the JWK-exported vault key of the logged-in user.
type LocalSessionRepository interface {
	// Save replaces any stored session.
	Save(ctx context.Context, session models.LocalSession) error

	// Load returns [ErrLocalSessionNotFound] when nobody is logged in.
	Load(ctx context.Context) (models.LocalSession, error)

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
