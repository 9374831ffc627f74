package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestAuthService(t *testing.T, repo store.UserRepository) (AuthService, SessionIssuer) {
	t.Helper()

	issuer := newTestIssuer(t, testAppConfig(), &fakeClock{now: time.Now()})
	svc, err := NewAuthService(repo, crypto.NewCredentialVerifier(), issuer, logger.Nop())
	require.NoError(t, err)
	return svc, issuer
}

// memoryUsers is a fakeUserRepository backed by a map keyed by email.
func memoryUsers() *fakeUserRepository {
	users := map[string]models.User{}
	var nextID int64

	return &fakeUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			if _, ok := users[user.Email]; ok {
				return models.User{}, store.ErrLoginAlreadyExists
			}
			nextID++
			user.UserID = nextID
			users[user.Email] = user
			return user, nil
		},
		findFn: func(_ context.Context, email string) (models.User, error) {
			user, ok := users[email]
			if !ok {
				return models.User{}, store.ErrNoUserWasFound
			}
			return user, nil
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	var stored models.User
	repo := &fakeUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 7
			return user, nil
		},
	}
	svc, issuer := newTestAuthService(t, repo)
	ctx := context.Background()

	token, err := svc.Register(ctx, models.User{Username: "alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	assert.Empty(t, stored.Password, "plaintext password must not reach the repository")
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordSalt)
	assert.True(t, crypto.NewCredentialVerifier().VerifyEncoded("hunter22", stored.PasswordHash, stored.PasswordSalt))

	parsed, err := issuer.ValidateToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _ := newTestAuthService(t, memoryUsers())
	ctx := context.Background()
	user := models.User{Username: "alice", Email: "alice@example.com", Password: "hunter22"}

	_, err := svc.Register(ctx, user)
	require.NoError(t, err)

	_, err = svc.Register(ctx, user)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, issuer := newTestAuthService(t, memoryUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.User{Username: "alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(ctx, models.User{Email: "alice@example.com", Password: "hunter22"})
		require.NoError(t, err)

		parsed, err := issuer.ValidateToken(ctx, token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, int64(1), parsed.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.User{Email: "alice@example.com", Password: "hunter23"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, models.User{Email: "bob@example.com", Password: "hunter22"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_LoginStoreFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc, _ := newTestAuthService(t, &fakeUserRepository{
		findFn: func(context.Context, string) (models.User, error) {
			return models.User{}, dbErr
		},
	})

	_, err := svc.Login(context.Background(), models.User{Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, issuer := newTestAuthService(t, memoryUsers())
	ctx := context.Background()

	token, err := issuer.IssueToken(ctx, models.User{UserID: 99})
	require.NoError(t, err)

	ownerID, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(99), ownerID)

	_, err = svc.Authenticate(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthValidationService(t *testing.T) {
	calls := 0
	repo := &fakeUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			calls++
			user.UserID = 1
			return user, nil
		},
	}
	inner, _ := newTestAuthService(t, repo)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.User{Username: "", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.User{Username: "alice", Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, calls)

	_, err = svc.Login(ctx, models.User{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.Register(ctx, models.User{Username: "alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
