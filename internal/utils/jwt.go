package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidJWTParams = errors.New("invalid params for JWT token")
	errEmptySubject     = errors.New("empty subject error")
	errNonPositiveOwner = errors.New("subject is not a positive owner id")
)

// JWTParams holds the signing and validation parameters shared by
// [GenerateJWTToken] and [ValidateAndParseJWTToken].
type JWTParams struct {
	// Issuer is written to and required in the iss claim.
	Issuer string
	// Audience is written to and required in the aud claim.
	Audience string
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
	// Duration is the token lifetime. Only used when generating.
	Duration time.Duration
	// Now is the time source. nil means time.Now.
	Now func() time.Time
}

func (p JWTParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for user.
//
// The token carries iss, aud, sub (user id), iat and exp, plus the user's
// display name and email. Issuer, audience, sign key and a positive duration
// are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, user)
func GenerateJWTToken(params JWTParams, user models.User) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.SignKey == "" || params.Duration <= 0 {
		return models.Token{}, errInvalidJWTParams
	}
	if user.UserID <= 0 {
		return models.Token{}, errNonPositiveOwner
	}

	now := params.now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{params.Audience},
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:  user.Username,
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString, UserID: user.UserID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - HMAC signing method and signature
//   - iss and aud claims against params
//   - exp claim presence and expiry (using params.Now)
//   - sub claim presence and conversion to a positive int64 user id
//
// Expired tokens return an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Token, error) {
	if params.SignKey == "" {
		return models.Token{}, errInvalidJWTParams
	}

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(params.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errEmptySubject
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	if userID <= 0 {
		return models.Token{}, errNonPositiveOwner
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
