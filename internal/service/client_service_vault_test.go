package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestClientVaultService_Add(t *testing.T) {
	f := newClientFixture(t)
	key := deriveTestKey(t, testPassphrase)
	f.expectStoredSession(t, key)

	f.adapter.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
			assert.Equal(t, "example.com", entry.Website)
			assert.Equal(t, "alice", entry.Username)
			assert.NotContains(t, entry.EncryptedPassword, "hunter2")
			assert.Equal(t, "hunter2", openTestEntry(t, entry, key))

			entry.ID = 7
			entry.Version = 1
			return entry, nil
		})

	created, err := f.vault.Add(context.Background(), "example.com", "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, int64(1), created.Version)
}

func TestClientVaultService_Add_FreshIVPerEntry(t *testing.T) {
	f := newClientFixture(t)
	key := deriveTestKey(t, testPassphrase)
	f.expectStoredSession(t, key)

	var sent []models.VaultEntry
	f.adapter.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
			sent = append(sent, entry)
			return entry, nil
		})

	for range 2 {
		_, err := f.vault.Add(context.Background(), "example.com", "alice", "same secret")
		require.NoError(t, err)
	}

	require.Len(t, sent, 2)
	assert.NotEqual(t, sent[0].IV, sent[1].IV)
	assert.NotEqual(t, sent[0].EncryptedPassword, sent[1].EncryptedPassword)
}

func TestClientVaultService_Add_Invalid(t *testing.T) {
	f := newClientFixture(t)

	_, err := f.vault.Add(context.Background(), "", "alice", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyWebsite)
}

func TestClientVaultService_NotLoggedIn(t *testing.T) {
	f := newClientFixture(t)
	f.sessions.EXPECT().Load(gomock.Any()).Return(models.LocalSession{}, store.ErrLocalSessionNotFound).Times(4)

	ctx := context.Background()

	_, err := f.vault.Add(ctx, "example.com", "alice", "hunter2")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = f.vault.List(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = f.vault.Reveal(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	err = f.vault.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientVaultService_List_ExpiredSession(t *testing.T) {
	f := newClientFixture(t)
	f.expectStoredSession(t, deriveTestKey(t, testPassphrase))

	f.adapter.EXPECT().ListEntries(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired))

	_, err := f.vault.List(context.Background())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestClientVaultService_Reveal(t *testing.T) {
	key := deriveTestKey(t, testPassphrase)
	entry := sealedEntry(t, 3, "hunter2", key)

	t.Run("own key", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, key)
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(3)).Return(entry, nil)

		revealed, err := f.vault.Reveal(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, models.RevealedEntry{
			ID: 3, Website: "example.com", Username: "alice", Password: "hunter2", Version: 1,
		}, revealed)
	})

	t.Run("foreign key", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, deriveTestKey(t, "someone else entirely"))
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(3)).Return(entry, nil)

		revealed, err := f.vault.Reveal(context.Background(), 3)
		assert.ErrorIs(t, err, ErrCouldNotDecrypt)
		assert.Empty(t, revealed.Password)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, key)

		tampered := entry
		tampered.IV = sealedEntry(t, 3, "hunter2", key).IV
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(3)).Return(tampered, nil)

		_, err := f.vault.Reveal(context.Background(), 3)
		assert.ErrorIs(t, err, ErrCouldNotDecrypt)
	})
}

func TestClientVaultService_Update(t *testing.T) {
	key := deriveTestKey(t, testPassphrase)
	current := sealedEntry(t, 5, "old-secret", key)
	current.Version = 2

	t.Run("new password is resealed", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, key)
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(5)).Return(current, nil)
		f.adapter.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.VaultEntry) error {
				assert.Equal(t, int64(5), entry.ID)
				assert.Equal(t, "new.example.com", entry.Website)
				assert.Equal(t, "alice", entry.Username)
				assert.Equal(t, int64(2), entry.Version)
				assert.NotEqual(t, current.IV, entry.IV)
				assert.Equal(t, "new-secret", openTestEntry(t, entry, key))
				return nil
			})

		err := f.vault.Update(context.Background(), models.RevealedEntry{ID: 5, Website: "new.example.com", Password: "new-secret"})
		require.NoError(t, err)
	})

	t.Run("blank password keeps ciphertext", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, key)
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(5)).Return(current, nil)
		f.adapter.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.VaultEntry) error {
				assert.Equal(t, current.EncryptedPassword, entry.EncryptedPassword)
				assert.Equal(t, current.IV, entry.IV)
				assert.Equal(t, "bob", entry.Username)
				return nil
			})

		require.NoError(t, f.vault.Update(context.Background(), models.RevealedEntry{ID: 5, Username: "bob"}))
	})

	t.Run("stale version", func(t *testing.T) {
		f := newClientFixture(t)
		f.expectStoredSession(t, key)
		f.adapter.EXPECT().GetEntry(gomock.Any(), int64(5)).Return(current, nil)
		f.adapter.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.VaultEntry) error {
				assert.Equal(t, int64(1), entry.Version)
				return fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVersionConflict)
			})

		err := f.vault.Update(context.Background(), models.RevealedEntry{ID: 5, Password: "x", Version: 1})
		assert.ErrorIs(t, err, store.ErrVersionConflict)
	})
}

func TestClientVaultService_Delete_NotFound(t *testing.T) {
	f := newClientFixture(t)
	f.expectStoredSession(t, deriveTestKey(t, testPassphrase))

	f.adapter.EXPECT().DeleteEntry(gomock.Any(), int64(9)).
		Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgEntryNotFound))

	err := f.vault.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestClientVaultService_ServerVersion(t *testing.T) {
	f := newClientFixture(t)
	f.adapter.EXPECT().ServerVersion(gomock.Any()).Return("1.2.3", nil)

	version, err := f.vault.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestMapAdapterError(t *testing.T) {
	unreachable := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgIDMismatch), ErrInvalidDataProvided},
		{"invalid credentials", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrInvalidCredentials},
		{"expired", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"invalid token", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgEntryNotFound), store.ErrEntryNotFound},
		{"login taken", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists), store.ErrLoginAlreadyExists},
		{"version conflict", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVersionConflict), store.ErrVersionConflict},
		{"transport", unreachable, unreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
