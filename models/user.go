package models

import "time"

// User represents an account entity used for authentication and authorization.
// The same type carries register/login input and the persisted row.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user (the vault owner id).
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is the plaintext login password as received from the client.
	// It is only read from request bodies and never persisted or logged.
	Password string `json:"password,omitempty"`

	// PasswordHash is the base64 HMAC-SHA512 of the login password.
	PasswordHash string `json:"-"`

	// PasswordSalt is the base64 64-byte HMAC key used for PasswordHash.
	PasswordSalt string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
