// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every vault operation. Both are terminal: retrying
// with the same inputs cannot succeed. Messages stay generic so that they do
// not act as an oracle.
var (
	// ErrInvalidInput reports a malformed passphrase, password, key or
	// encoding.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthenticationFailure reports a wrong credential, an AEAD tag
	// mismatch or a rejected session token.
	ErrAuthenticationFailure = errors.New("authentication failure")
)

var (
	errEmptyPassphrase  = fmt.Errorf("%w: empty passphrase", ErrInvalidInput)
	errEmptySalt        = fmt.Errorf("%w: empty salt", ErrInvalidInput)
	errEmptyPassword    = fmt.Errorf("%w: empty password", ErrInvalidInput)
	errUnusableKey      = fmt.Errorf("%w: vault key is missing or wiped", ErrInvalidInput)
	errMalformedKey     = fmt.Errorf("%w: malformed key material", ErrInvalidInput)
	errMalformedEncoded = fmt.Errorf("%w: malformed base64", ErrInvalidInput)
	errWeakIterations   = fmt.Errorf("%w: pbkdf2 iteration count below %d", ErrInvalidInput, MinIterations)
	errDecryptionFailed = fmt.Errorf("decryption failed: %w", ErrAuthenticationFailure)
)
