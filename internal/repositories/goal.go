package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
)

// GoalReadRepository handles goal read operations.
type GoalReadRepository struct {
	db *sqlx.DB
}

func NewGoalReadRepository(db *sqlx.DB) *GoalReadRepository {
	return &GoalReadRepository{db: db}
}

// ListByOwner returns all goals owned by the given user.
func (r *GoalReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.GoalDB, error) {
	const query = `
		SELECT goal_id, user_id, name, description, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at
	`

	var goals []models.GoalDB
	err := r.db.SelectContext(ctx, &goals, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(goals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return goals, nil
}

// GoalWriteRepository handles goal write operations. Every mutation is
// filtered by both goal id and owner id in one predicate, so a goal
// outside the caller's ownership is indistinguishable from a missing
// one (sql.ErrNoRows either way).
type GoalWriteRepository struct {
	db *sqlx.DB
}

func NewGoalWriteRepository(db *sqlx.DB) *GoalWriteRepository {
	return &GoalWriteRepository{db: db}
}

// Save inserts a new goal for the given owner and returns the stored record.
func (r *GoalWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.GoalDB, error) {
	const query = `
		INSERT INTO goals (user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING goal_id, user_id, name, description, created_at, updated_at
	`
	args := []any{ownerID, name, description}

	var goal models.GoalDB
	err := r.db.GetContext(ctx, &goal, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateByIDAndOwner updates the goal matching both id and owner and
// returns the updated record, or sql.ErrNoRows when no row matches.
func (r *GoalWriteRepository) UpdateByIDAndOwner(ctx context.Context, goalID, ownerID uuid.UUID, name, description string) (*models.GoalDB, error) {
	const query = `
		UPDATE goals
		SET name = $3, description = $4, updated_at = NOW()
		WHERE goal_id = $1 AND user_id = $2
		RETURNING goal_id, user_id, name, description, created_at, updated_at
	`
	args := []any{goalID, ownerID, name, description}

	var goal models.GoalDB
	err := r.db.GetContext(ctx, &goal, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteByIDAndOwner deletes the goal matching both id and owner and
// returns the deleted record, or sql.ErrNoRows when no row matches.
func (r *GoalWriteRepository) DeleteByIDAndOwner(ctx context.Context, goalID, ownerID uuid.UUID) (*models.GoalDB, error) {
	const query = `
		DELETE FROM goals
		WHERE goal_id = $1 AND user_id = $2
		RETURNING goal_id, user_id, name, description, created_at, updated_at
	`
	args := []any{goalID, ownerID}

	var goal models.GoalDB
	err := r.db.GetContext(ctx, &goal, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &goal, nil
}
