// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sessionIssuer is the HS256 JWT implementation of [SessionIssuer].
type sessionIssuer struct {
	params utils.JWTParams
	logger *logger.Logger
}

// SessionOption customises a [SessionIssuer].
type SessionOption func(*sessionIssuer)

// WithClock replaces the time source used for iat, exp and expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(s *sessionIssuer) {
		s.params.Now = now
	}
}

// NewSessionIssuer builds a [SessionIssuer] from the token settings in cfg.
func NewSessionIssuer(cfg config.App, logger *logger.Logger, opts ...SessionOption) (SessionIssuer, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenAudience == "" || cfg.TokenDuration <= 0 {
		return nil, fmt.Errorf("%w: token sign key, issuer, audience and duration are required", ErrInvalidDataProvided)
	}

	s := &sessionIssuer{
		params: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			SignKey:  cfg.TokenSignKey,
			Duration: cfg.TokenDuration,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *sessionIssuer) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.params, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionIssuer.IssueToken").
			Int64("owner_id", user.UserID).Msg("failed to issue token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *sessionIssuer) ValidateToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.params)
	if err == nil {
		return token, nil
	}

	log := logger.FromContext(ctx)
	if errors.Is(err, jwt.ErrTokenExpired) {
		log.Debug().Str("func", "*sessionIssuer.ValidateToken").Msg("token expired")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrTokenIsExpired)
	}

	log.Debug().Str("func", "*sessionIssuer.ValidateToken").Str("reason", err.Error()).Msg("token rejected")
	return models.Token{}, ErrTokenIsExpiredOrInvalid
}
