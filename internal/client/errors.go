package client

import "errors"

var (
	errNilLogger          = errors.New("logger is nil")
	errInvalidEntryID     = errors.New("entry id must be a positive integer")
	errPassphraseMismatch = errors.New("master passphrases do not match")
	errNothingToChange    = errors.New("nothing to change")
)
