package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTParams() JWTParams {
	return JWTParams{
		Issuer:   "test-issuer",
		Audience: "test-audience",
		SignKey:  "secret-key",
		Duration: time.Hour,
	}
}

func testUser() models.User {
	return models.User{UserID: 42, Username: "alice", Email: "alice@example.com"}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testJWTParams(), testUser())
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "test-issuer", token.Claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"test-audience"}, token.Claims.Audience)
	assert.Equal(t, "42", token.Claims.Subject)
	assert.Equal(t, "alice", token.Claims.Name)
	assert.Equal(t, "alice@example.com", token.Claims.Email)
	assert.Equal(t, time.Hour, token.Claims.ExpiresAt.Sub(token.Claims.IssuedAt.Time))
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *JWTParams)
	}{
		{"empty issuer", func(p *JWTParams) { p.Issuer = "" }},
		{"empty audience", func(p *JWTParams) { p.Audience = "" }},
		{"zero duration", func(p *JWTParams) { p.Duration = 0 }},
		{"empty key", func(p *JWTParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testJWTParams()
			tt.mutate(&params)
			_, err := GenerateJWTToken(params, testUser())
			assert.Error(t, err)
		})
	}

	_, err := GenerateJWTToken(testJWTParams(), models.User{})
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	params := testJWTParams()
	generated, err := GenerateJWTToken(params, testUser())
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, params)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Claims.Email)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	params := testJWTParams()
	generated, err := GenerateJWTToken(params, testUser())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(p *JWTParams)
	}{
		{"wrong key", func(p *JWTParams) { p.SignKey = "wrong-key" }},
		{"wrong issuer", func(p *JWTParams) { p.Issuer = "fake-issuer" }},
		{"wrong audience", func(p *JWTParams) { p.Audience = "other-app" }},
		{"empty key", func(p *JWTParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params
			tt.mutate(&p)
			_, err := ValidateAndParseJWTToken(generated.SignedString, p)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	params := testJWTParams()
	params.Now = func() time.Time { return issuedAt }

	generated, err := GenerateJWTToken(params, testUser())
	require.NoError(t, err)

	params.Now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = ValidateAndParseJWTToken(generated.SignedString, params)
	require.NoError(t, err)

	params.Now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = ValidateAndParseJWTToken(generated.SignedString, params)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_RejectsForeignAlgorithms(t *testing.T) {
	params := testJWTParams()
	claims := models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Audience:  jwt.ClaimStrings{params.Audience},
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(none, params)
	assert.Error(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(params.SignKey))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(hs512, params)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_BadSubject(t *testing.T) {
	params := testJWTParams()
	sign := func(sub string, exp bool) string {
		rc := jwt.RegisteredClaims{Issuer: params.Issuer, Audience: jwt.ClaimStrings{params.Audience}, Subject: sub}
		if exp {
			rc.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.SessionClaims{RegisteredClaims: rc}).
			SignedString([]byte(params.SignKey))
		require.NoError(t, err)
		return s
	}

	for _, raw := range []string{sign("", true), sign("abc", true), sign("-5", true), sign("42", false)} {
		_, err := ValidateAndParseJWTToken(raw, params)
		assert.Error(t, err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testJWTParams())
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer   abc  ")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
