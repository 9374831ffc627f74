package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login does not reveal which accounts exist.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", crypto.ErrAuthenticationFailure)

	// ErrTokenIsExpiredOrInvalid is returned for any rejected session token.
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("token is expired or invalid: %w", crypto.ErrAuthenticationFailure)

	// ErrTokenIsExpired additionally marks rejections caused by expiry.
	ErrTokenIsExpired = errors.New("token is expired")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrNoOwnerInContext      = errors.New("no vault owner in context")
)

// Client-side errors.
var (
	// ErrCouldNotDecrypt means an entry could not be opened with the current
	// vault key: wrong master passphrase or tampered data. The entry is left
	// untouched and the user may log in again with the right passphrase.
	ErrCouldNotDecrypt = fmt.Errorf("could not decrypt entry: %w", crypto.ErrAuthenticationFailure)

	ErrNotLoggedIn      = errors.New("not logged in")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
