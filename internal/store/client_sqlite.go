package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	saveLocalSession = `
		INSERT INTO session (id, token, vault_key_jwk, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token         = excluded.token,
			vault_key_jwk = excluded.vault_key_jwk,
			saved_at      = excluded.saved_at;`

	loadLocalSession = `SELECT token, vault_key_jwk, saved_at FROM session WHERE id = 1;`

	clearLocalSession = `DELETE FROM session;`
)

// localSessionRepository is the SQLite-backed [LocalSessionRepository].
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] over an
// already migrated SQLite db.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger, now: time.Now}
}

func (r *localSessionRepository) Save(ctx context.Context, session models.LocalSession) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = r.now().UTC()
	}

	if _, err := r.db.ExecContext(ctx, saveLocalSession, session.Token, string(session.VaultKeyJWK), session.SavedAt); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.Save").Msg("failed to save local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) Load(ctx context.Context) (models.LocalSession, error) {
	var (
		session models.LocalSession
		jwk     string
	)

	err := r.db.QueryRowContext(ctx, loadLocalSession).Scan(&session.Token, &jwk, &session.SavedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.LocalSession{}, ErrLocalSessionNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*localSessionRepository.Load").Msg("failed to load local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session.VaultKeyJWK = []byte(jwk)
	return session, nil
}

func (r *localSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearLocalSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.Clear").Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
