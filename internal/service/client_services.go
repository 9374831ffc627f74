package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ClientServices groups the client services. They share one keyring so a
// logout in AuthService locks VaultService too.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

func NewClientServices(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	kdf, err := crypto.NewKeyDerivation(crypto.KDFConfig{
		Iterations: cfg.KDFIterations,
		Salt:       []byte(cfg.VaultSalt),
	})
	if err != nil {
		return nil, fmt.Errorf("key derivation: %w", err)
	}

	keys := newKeyring(sessions, serverAdapter)

	return &ClientServices{
		AuthService:  newClientAuthService(serverAdapter, keys, kdf, logger),
		VaultService: newClientVaultService(serverAdapter, keys, logger),
	}, nil
}
