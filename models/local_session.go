package models

import "time"

// LocalSession is what the client keeps between invocations: the session
// token and the exported vault key. It never leaves the device.
type LocalSession struct {
	Token       string
	VaultKeyJWK []byte
	SavedAt     time.Time
}
