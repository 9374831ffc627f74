package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// SessionIssuer issues and validates session tokens. A token proves who the
// caller is; it never carries or derives vault key material.
type SessionIssuer interface {
	// IssueToken signs a token for user with the configured issuer, audience
	// and lifetime.
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// ValidateToken returns [ErrTokenIsExpiredOrInvalid] for any bad token;
	// expired tokens also match [ErrTokenIsExpired].
	ValidateToken(ctx context.Context, token string) (models.Token, error)
}

// AuthService registers and logs in users with their login password.
type AuthService interface {
	// Register stores the user with an HMAC-SHA512 hash of the password and
	// returns a session token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login returns [ErrInvalidCredentials] for an unknown email and for a
	// wrong password alike.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate validates a bearer token and returns the owner id.
	Authenticate(ctx context.Context, token string) (int64, error)
}

// VaultEntryService manages stored secrets. Every call is scoped by the
// owner id placed in the context by the auth middleware; the service only
// moves opaque ciphertext and never decrypts.
type VaultEntryService interface {
	Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	Get(ctx context.Context, entryID int64) (models.VaultEntry, error)
	List(ctx context.Context) ([]models.VaultEntry, error)
	Update(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	Delete(ctx context.Context, entryID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper and VaultEntryServiceWrapper decorate a service with
// additional behaviour such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type VaultEntryServiceWrapper interface {
	Wrap(VaultEntryService) VaultEntryService
}
