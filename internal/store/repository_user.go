package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, password_salt)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password_hash, password_salt, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, password_salt, created_at
    FROM users
    WHERE email = $1;`
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] over db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. A unique_violation on either the
// username or the email index maps to [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.PasswordSalt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Email,
		&created.PasswordHash, &created.PasswordSalt, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findUserByEmail, email).Scan(&found.UserID, &found.Username, &found.Email,
			&found.PasswordHash, &found.PasswordSalt, &found.CreatedAt)
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error looking up user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
