package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidEntryID     = errors.New("invalid entry id")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrEmptyWebsite       = errors.New("website is required")
	ErrInvalidCiphertext  = errors.New("encrypted password must be base64 ciphertext with tag")
	ErrInvalidIV          = errors.New("iv must be base64 of 12 bytes")
	ErrInvalidVersion     = errors.New("invalid version")
	ErrPassphraseTooShort = errors.New("master passphrase must be at least 8 characters long")
	ErrFieldTooLong       = errors.New("field is too long")
)
