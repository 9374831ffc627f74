package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultEntryService is the concrete implementation of [VaultEntryService].
// The owner id always comes from the context, never from the request body.
type vaultEntryService struct {
	repository store.VaultEntryRepository
	logger     *logger.Logger
}

func NewVaultEntryService(repository store.VaultEntryRepository, logger *logger.Logger) VaultEntryService {
	return &vaultEntryService{repository: repository, logger: logger}
}

func ownerFromContext(ctx context.Context) (int64, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return 0, ErrNoOwnerInContext
	}
	return ownerID, nil
}

func (s *vaultEntryService) Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry.ID = 0
	entry.OwnerID = ownerID

	created, err := s.repository.CreateEntry(ctx, entry)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("create vault entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("entry_id", created.ID).Msg("vault entry created")
	return created, nil
}

func (s *vaultEntryService) Get(ctx context.Context, entryID int64) (models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry, err := s.repository.GetEntry(ctx, ownerID, entryID)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("get vault entry: %w", err)
	}
	return entry, nil
}

func (s *vaultEntryService) List(ctx context.Context) ([]models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.repository.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vault entries: %w", err)
	}
	return entries, nil
}

func (s *vaultEntryService) Update(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry.OwnerID = ownerID

	updated, err := s.repository.UpdateEntry(ctx, entry)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("update vault entry: %w", err)
	}
	return updated, nil
}

func (s *vaultEntryService) Delete(ctx context.Context, entryID int64) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	if err = s.repository.DeleteEntry(ctx, ownerID, entryID); err != nil {
		return fmt.Errorf("delete vault entry: %w", err)
	}
	return nil
}
