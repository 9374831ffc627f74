package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// keyring holds the unlocked vault key for the life of the process and
// keeps the adapter's token in step with the stored session. It is shared
// by the client services.
type keyring struct {
	mu  sync.Mutex
	key *crypto.VaultKey

	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
}

func newKeyring(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter) *keyring {
	return &keyring{sessions: sessions, adapter: serverAdapter}
}

// unlock returns the vault key, loading the stored session on first use.
func (k *keyring) unlock(ctx context.Context) (*crypto.VaultKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return k.key, nil
	}

	session, err := k.sessions.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("load local session: %w", err)
	}

	key, err := crypto.ImportJWK(session.VaultKeyJWK)
	clear(session.VaultKeyJWK)
	if err != nil {
		return nil, fmt.Errorf("%w: stored vault key is unreadable: %w", ErrNotLoggedIn, err)
	}

	k.adapter.SetToken(session.Token)
	k.key = key
	return key, nil
}

// store persists token and key as the current session and keeps the key
// unlocked.
func (k *keyring) store(ctx context.Context, token string, key *crypto.VaultKey) error {
	jwk, err := key.ExportJWK()
	if err != nil {
		return fmt.Errorf("export vault key: %w", err)
	}
	defer clear(jwk)

	if err = k.sessions.Save(ctx, models.LocalSession{Token: token, VaultKeyJWK: jwk}); err != nil {
		return fmt.Errorf("save local session: %w", err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != key {
		k.key.Wipe()
	}
	k.key = key
	k.adapter.SetToken(token)
	return nil
}

// lock wipes the in-memory key and forgets the token.
func (k *keyring) lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.key.Wipe()
	k.key = nil
	k.adapter.SetToken("")
}
