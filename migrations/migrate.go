// Package migrations embeds the goose schema migrations: the server's
// Postgres schema at the top level and the client's SQLite key store under
// local/.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed local/*.sql
var embedLocalMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the server migrations to a pgx-backed db.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateLocal applies the client key store migrations to a sqlite3 db.
func MigrateLocal(db *sql.DB) error {
	return up(db, embedLocalMigrations, "sqlite3", "local")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
