package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Services groups the server-side services used by the HTTP handler.
type Services struct {
	AuthService       AuthService
	VaultEntryService VaultEntryService
	AppInfoService    AppInfoService
}

// NewServices wires the server services over storages. Auth and vault entry
// services are wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	sessions, err := NewSessionIssuer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("session issuer: %w", err)
	}

	auth, err := NewAuthService(storages.UserRepository, crypto.NewCredentialVerifier(), sessions, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthValidationService().Wrap(auth),
		VaultEntryService: NewVaultEntryValidationService().Wrap(NewVaultEntryService(storages.VaultEntryRepository, logger)),
		AppInfoService:    appInfo,
	}, nil
}
