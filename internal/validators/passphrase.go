package validators

import (
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	// MinPassphraseLength is the hard floor for a master passphrase.
	MinPassphraseLength = 8

	// WeakPassphraseScore is the zxcvbn score below which the client warns.
	WeakPassphraseScore = 3
)

// PassphraseStrength is the zxcvbn estimate for a master passphrase.
type PassphraseStrength struct {
	// Score is 0 (trivial) to 4 (very strong).
	Score int
	// CrackTime is zxcvbn's human readable offline crack time.
	CrackTime string
}

// Weak reports whether the passphrase deserves a warning.
func (s PassphraseStrength) Weak() bool {
	return s.Score < WeakPassphraseScore
}

// ValidateMasterPassphrase enforces the length floor and estimates strength.
// userInputs (username, email) are fed to zxcvbn as known words. Only the
// length floor is an error; a low score is for the caller to warn about.
func ValidateMasterPassphrase(passphrase string, userInputs ...string) (PassphraseStrength, error) {
	if utf8.RuneCountInString(passphrase) < MinPassphraseLength {
		return PassphraseStrength{}, ErrPassphraseTooShort
	}

	match := zxcvbn.PasswordStrength(passphrase, userInputs)
	return PassphraseStrength{Score: match.Score, CrackTime: match.CrackTimeDisplay}, nil
}
