package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultEntryValidationService checks entry shape (base64 ciphertext with a
// tag, 12-byte IV, website present) before the wrapped [VaultEntryService]
// touches storage.
type VaultEntryValidationService struct {
	inner     VaultEntryService
	validator validators.Validator
}

func NewVaultEntryValidationService() VaultEntryServiceWrapper {
	return &VaultEntryValidationService{validator: validators.NewVaultEntryValidator()}
}

func (v *VaultEntryValidationService) Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	entry.OwnerID, _ = utils.GetOwnerIDFromContext(ctx)
	if err := v.validator.Validate(ctx, entry, validators.CreateEntryFields...); err != nil {
		return models.VaultEntry{}, v.wrap(err)
	}
	return v.inner.Create(ctx, entry)
}

func (v *VaultEntryValidationService) Get(ctx context.Context, entryID int64) (models.VaultEntry, error) {
	if entryID <= 0 {
		return models.VaultEntry{}, v.wrap(validators.ErrInvalidEntryID)
	}
	return v.inner.Get(ctx, entryID)
}

func (v *VaultEntryValidationService) List(ctx context.Context) ([]models.VaultEntry, error) {
	return v.inner.List(ctx)
}

func (v *VaultEntryValidationService) Update(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	entry.OwnerID, _ = utils.GetOwnerIDFromContext(ctx)
	if err := v.validator.Validate(ctx, entry, validators.UpdateEntryFields...); err != nil {
		return models.VaultEntry{}, v.wrap(err)
	}
	return v.inner.Update(ctx, entry)
}

func (v *VaultEntryValidationService) Delete(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return v.wrap(validators.ErrInvalidEntryID)
	}
	return v.inner.Delete(ctx, entryID)
}

func (v *VaultEntryValidationService) Wrap(inner VaultEntryService) VaultEntryService {
	v.inner = inner
	return v
}

// wrap keeps a missing owner distinguishable from bad input.
func (v *VaultEntryValidationService) wrap(err error) error {
	if errors.Is(err, validators.ErrInvalidOwnerID) {
		return ErrNoOwnerInContext
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
