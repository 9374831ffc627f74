package models

// RevealedEntry is a decrypted vault entry. It exists only in client memory
// and is never serialized to the server.
type RevealedEntry struct {
	ID       int64
	Website  string
	Username string
	Password string
	Version  int64
}
