package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching the given
// username and/or email. A nil pointer for either argument skips that
// predicate. Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, first_name, last_name, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with empty first and last name and returns
// the stored record. The password hash is never logged.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, '', '', NOW(), NOW())
		RETURNING user_id, username, email, password_hash, first_name, last_name, created_at, updated_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sets the first and last name of the user with the
// given id in a single statement and returns the updated record.
// sql.ErrNoRows is returned when no such user exists.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET first_name = $2, last_name = $3, updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, username, email, password_hash, first_name, last_name, created_at, updated_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID, firstName, lastName)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, firstName, lastName},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}
