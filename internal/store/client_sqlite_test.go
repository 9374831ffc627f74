// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestClientStorages(t *testing.T) (*ClientStorages, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "vault.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestLocalSession_LoadEmpty(t *testing.T) {
	s, _ := newTestClientStorages(t)

	_, err := s.SessionRepository.Load(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLocalSession_SaveLoadReplaceClear(t *testing.T) {
	s, _ := newTestClientStorages(t)
	ctx := context.Background()
	repo := s.SessionRepository

	first := models.LocalSession{
		Token:       "token-1",
		VaultKeyJWK: []byte(`{"kty":"oct","k":"AAAA"}`),
		SavedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, first))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Token, got.Token)
	assert.Equal(t, first.VaultKeyJWK, got.VaultKeyJWK)
	assert.True(t, first.SavedAt.Equal(got.SavedAt))

	second := models.LocalSession{Token: "token-2", VaultKeyJWK: []byte(`{"kty":"oct","k":"BBBB"}`)}
	require.NoError(t, repo.Save(ctx, second))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.Token)
	assert.False(t, got.SavedAt.IsZero())

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	require.NoError(t, repo.Clear(ctx))
}

func TestLocalSession_SurvivesReopen(t *testing.T) {
	s, path := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.SessionRepository.Save(ctx, models.LocalSession{Token: "persisted", VaultKeyJWK: []byte("{}")}))
	require.NoError(t, s.Close())

	reopened, err := NewClientStorages(ctx, config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.SessionRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Token)
}

func TestCreateLocalDBFile_OwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	require.NoError(t, createLocalDBFileIfNotExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, createLocalDBFileIfNotExists(path))
}
