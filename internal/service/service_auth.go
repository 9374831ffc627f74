package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	userRepository store.UserRepository
	verifier       crypto.CredentialVerifier
	sessions       SessionIssuer

	// decoy is verified against when the email is unknown so that both
	// failure paths cost one HMAC.
	decoy crypto.PasswordHash

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(userRepository store.UserRepository, verifier crypto.CredentialVerifier, sessions SessionIssuer, logger *logger.Logger) (AuthService, error) {
	decoy, err := verifier.HashPassword("decoy")
	if err != nil {
		return nil, fmt.Errorf("prepare credential verifier: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		verifier:       verifier,
		sessions:       sessions,
		decoy:          decoy,
		logger:         logger,
	}, nil
}

// Register hashes the login password, persists the user and issues a token.
// The plaintext password never reaches the repository.
func (a *authService) Register(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	hashed, err := a.verifier.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user.PasswordHash, user.PasswordSalt = hashed.Encode()
	user.Password = ""

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", user.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.sessions.IssueToken(ctx, created)
}

func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.verifier.VerifyPassword(user.Password, a.decoy.Hash, a.decoy.Salt)
		log.Info().Str("func", "*authService.Login").Msg("login for unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.verifier.VerifyEncoded(user.Password, found.PasswordHash, found.PasswordSalt) {
		log.Info().Str("func", "*authService.Login").Int64("owner_id", found.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.sessions.IssueToken(ctx, found)
}

func (a *authService) Authenticate(ctx context.Context, token string) (int64, error) {
	parsed, err := a.sessions.ValidateToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return parsed.UserID, nil
}
