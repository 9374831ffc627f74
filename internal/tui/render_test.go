package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestRenderEntries(t *testing.T) {
	assert.Contains(t, RenderEntries(nil), "No entries")

	out := RenderEntries([]models.VaultEntry{
		{ID: 1, Website: "example.com", Username: "alice", EncryptedPassword: "Y2lwaGVy", IV: "aXY=", Version: 3},
		{ID: 2, Website: "mail.example.org", Version: 1},
	})

	assert.Contains(t, out, "WEBSITE")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "mail.example.org")
	assert.NotContains(t, out, "Y2lwaGVy")
}

func TestRenderEntry(t *testing.T) {
	entry := models.RevealedEntry{ID: 1, Website: "example.com", Username: "alice", Password: "hunter2", Version: 2}

	masked := RenderEntry(entry, false)
	assert.NotContains(t, masked, "hunter2")
	assert.Contains(t, masked, maskedSecret)

	assert.Contains(t, RenderEntry(entry, true), "hunter2")
}

func TestRenderStrength(t *testing.T) {
	assert.Empty(t, RenderStrength(validators.PassphraseStrength{Score: 4}))
	assert.Contains(t, RenderStrength(validators.PassphraseStrength{Score: 1, CrackTime: "instant"}), "weak master passphrase")
}

func TestRenderVersion(t *testing.T) {
	out := RenderVersion(models.NewAppBuildInfo("1.0.0", "", "abc123"), "")

	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "N/A")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "пароль", fitText("пароль", 6))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("list: %w", service.ErrNotLoggedIn), "not logged in"},
		{fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, service.ErrTokenIsExpired), "expired"},
		{service.ErrTokenIsExpiredOrInvalid, "no longer valid"},
		{fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrInvalidCredentials), "Invalid email or password"},
		{service.ErrCouldNotDecrypt, "could not be decrypted"},
		{store.ErrLoginAlreadyExists, "already registered"},
		{store.ErrEntryNotFound, "No such entry"},
		{store.ErrVersionConflict, "changed elsewhere"},
		{ErrPromptCancelled, "Cancelled"},
		{errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "unreachable"},
		{errors.New("something odd"), "something odd"},
	}

	for _, tt := range tests {
		assert.Contains(t, Describe(tt.err), tt.want)
	}
}
