// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultEntriesTable = "vault_entries"

var entryColumns = []string{
	"id",
	"owner_id",
	"website",
	"username",
	"encrypted_password",
	"iv",
	"version",
	"created_at",
	"updated_at",
}

// vaultEntryRepository is the PostgreSQL-backed [VaultEntryRepository].
// Queries are built with squirrel; ownership is always part of the WHERE
// clause so a foreign entry can never be read or written.
type vaultEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultEntryRepository constructs a [VaultEntryRepository] over db.
func NewVaultEntryRepository(db *DB, logger *logger.Logger) VaultEntryRepository {
	logger.Debug().Msg("creating vault entry repository")
	return &vaultEntryRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.VaultEntry, error) {
	var e models.VaultEntry
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Website,
		&e.Username,
		&e.EncryptedPassword,
		&e.IV,
		&e.Version,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (v *vaultEntryRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*vaultEntryRepository.CreateEntry").
		Int64("owner_id", entry.OwnerID).Logger()

	query, args, err := psql.Insert(vaultEntriesTable).
		Columns("owner_id", "website", "username", "encrypted_password", "iv").
		Values(entry.OwnerID, entry.Website, entry.Username, entry.EncryptedPassword, entry.IV).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build insert query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntry(v.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Error().Msg("insert returned no row")
		return models.VaultEntry{}, ErrEntryNotSaved
	default:
		log.Err(err).Msg("failed to insert vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (v *vaultEntryRepository) GetEntry(ctx context.Context, ownerID, entryID int64) (models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*vaultEntryRepository.GetEntry").
		Int64("owner_id", ownerID).Int64("entry_id", entryID).Logger()

	query, args, err := psql.Select(entryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build select query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.VaultEntry
	err = v.withRetry(ctx, func() error {
		var scanErr error
		entry, scanErr = scanEntry(v.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.VaultEntry{}, ErrEntryNotFound
	default:
		log.Err(err).Msg("failed to get vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (v *vaultEntryRepository) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*vaultEntryRepository.ListEntries").
		Int64("owner_id", ownerID).Logger()

	query, args, err := psql.Select(entryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = v.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = v.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Msg("failed to execute query for listing vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0, 50)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Msg("failed to scan vault entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (v *vaultEntryRepository) UpdateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*vaultEntryRepository.UpdateEntry").
		Int64("owner_id", entry.OwnerID).Int64("entry_id", entry.ID).Logger()

	builder := psql.Update(vaultEntriesTable).
		Set("website", entry.Website).
		Set("username", entry.Username).
		Set("encrypted_password", entry.EncryptedPassword).
		Set("iv", entry.IV).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"owner_id": entry.OwnerID}).
		Where(sq.Eq{"id": entry.ID})
	if entry.Version > 0 {
		builder = builder.Where(sq.Eq{"version": entry.Version})
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(entryColumns, ", ")).ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build update query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEntry(v.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		// either the entry is gone or someone bumped the version first
		if _, getErr := v.GetEntry(ctx, entry.OwnerID, entry.ID); getErr != nil {
			return models.VaultEntry{}, getErr
		}
		log.Warn().Int64("version", entry.Version).Msg("version conflict")
		return models.VaultEntry{}, ErrVersionConflict
	default:
		log.Err(err).Msg("failed to update vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (v *vaultEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID int64) error {
	log := logger.FromContext(ctx).With().Str("func", "*vaultEntryRepository.DeleteEntry").
		Int64("owner_id", ownerID).Int64("entry_id", entryID).Logger()

	query, args, err := psql.Delete(vaultEntriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to delete vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
