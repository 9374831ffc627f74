package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// AuthValidationService rejects malformed account input before it reaches
// the wrapped [AuthService].
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewUserValidator()}
}

func (v *AuthValidationService) Register(ctx context.Context, user models.User) (models.Token, error) {
	if err := v.validator.Validate(ctx, user, validators.RegisterFields...); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Register(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.Token, error) {
	// shape errors on login are still reported as bad credentials
	if err := v.validator.Validate(ctx, user, validators.LoginFields...); err != nil {
		return models.Token{}, ErrInvalidCredentials
	}
	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrTokenIsExpiredOrInvalid
	}
	return v.inner.Authenticate(ctx, token)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
