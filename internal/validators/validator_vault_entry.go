package validators

import (
	"context"
	"encoding/base64"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldEntryID           = "id"
	FieldOwnerID           = "owner_id"
	FieldWebsite           = "website"
	FieldEntryUsername     = "entry_username"
	FieldEncryptedPassword = "encrypted_password"
	FieldIV                = "iv"
	FieldVersion           = "version"

	maxWebsiteLength = 2048
)

var (
	CreateEntryFields = []string{FieldOwnerID, FieldWebsite, FieldEntryUsername, FieldEncryptedPassword, FieldIV}
	UpdateEntryFields = []string{FieldEntryID, FieldOwnerID, FieldWebsite, FieldEntryUsername, FieldEncryptedPassword, FieldIV, FieldVersion}
)

// VaultEntryValidator checks the shape of a stored secret. It can tell that
// ciphertext and IV are well-formed base64 of plausible length, nothing
// more: the server holds no key.
type VaultEntryValidator struct{}

func NewVaultEntryValidator() Validator {
	return &VaultEntryValidator{}
}

func (v *VaultEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateEntry(value, fields...)
	case *models.VaultEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultEntryValidator) validateEntry(entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = UpdateEntryFields
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if entry.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldOwnerID:
			if entry.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldWebsite:
			if entry.Website == "" {
				return ErrEmptyWebsite
			}
			if len(entry.Website) > maxWebsiteLength {
				return ErrFieldTooLong
			}
		case FieldEntryUsername:
			if len(entry.Username) > maxWebsiteLength {
				return ErrFieldTooLong
			}
		case FieldEncryptedPassword:
			raw, err := base64.StdEncoding.DecodeString(entry.EncryptedPassword)
			if err != nil || len(raw) < crypto.TagSize {
				return ErrInvalidCiphertext
			}
		case FieldIV:
			raw, err := base64.StdEncoding.DecodeString(entry.IV)
			if err != nil || len(raw) != crypto.IVSize {
				return ErrInvalidIV
			}
		case FieldVersion:
			if entry.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
