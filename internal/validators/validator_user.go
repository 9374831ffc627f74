package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	maxUsernameLength = 64
	maxEmailLength    = 254
)

// RegisterFields and LoginFields are the field sets checked on the two
// account endpoints.
var (
	RegisterFields = []string{FieldUsername, FieldEmail, FieldPassword}
	LoginFields    = []string{FieldEmail, FieldPassword}
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = RegisterFields
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			name := strings.TrimSpace(user.Username)
			if name == "" {
				return ErrEmptyUsername
			}
			if len(name) > maxUsernameLength {
				return ErrFieldTooLong
			}
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
