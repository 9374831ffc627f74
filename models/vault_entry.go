package models

import "time"

// VaultEntry is one stored credential. The secret itself only ever exists as
// AES-GCM ciphertext plus IV, both standard base64; the server never sees
// plaintext or key material.
type VaultEntry struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// OwnerID is the user the entry belongs to. Never accepted from clients;
	// always taken from the authenticated session.
	OwnerID int64 `json:"-"`

	// Website and Username are stored in clear so entries can be listed.
	Website  string `json:"website"`
	Username string `json:"username"`

	// EncryptedPassword is base64(ciphertext || tag).
	EncryptedPassword string `json:"encryptedPassword"`

	// IV is base64 of the 12-byte nonce the password was sealed under.
	IV string `json:"iv"`

	// Version is incremented on every update and used for optimistic
	// concurrency control.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (v VaultEntry) TableName() string {
	return "vault_entries"
}

// VaultEntryPayload is the integrity-checked part of a create/update body:
// the fields a request HMAC is computed over.
type VaultEntryPayload struct {
	Website           string `json:"website"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encryptedPassword"`
	IV                string `json:"iv"`
}

// Payload returns the integrity-checked fields of the entry.
func (v VaultEntry) Payload() VaultEntryPayload {
	return VaultEntryPayload{
		Website:           v.Website,
		Username:          v.Username,
		EncryptedPassword: v.EncryptedPassword,
		IV:                v.IV,
	}
}
