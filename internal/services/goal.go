package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/sanitize"
)

// Error variables
var (
	ErrMissingGoalFields = errors.New("missing goal name or description")
	ErrInvalidGoalFields = errors.New("invalid goal name or description")
	ErrMissingGoalID     = errors.New("missing goal id")
	ErrInvalidGoalID     = errors.New("invalid goal id")
	ErrGoalNotFound      = errors.New("goal not found")
)

// GoalReader defines read-only operations for goals.
type GoalReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.GoalDB, error)
}

// GoalWriter defines write operations for goals. Mutations are scoped
// by goal id and owner id in a single predicate.
type GoalWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.GoalDB, error)
	UpdateByIDAndOwner(ctx context.Context, goalID, ownerID uuid.UUID, name, description string) (*models.GoalDB, error)
	DeleteByIDAndOwner(ctx context.Context, goalID, ownerID uuid.UUID) (*models.GoalDB, error)
}

// GoalListCache caches per-owner goal lists.
type GoalListCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error)
	Set(ctx context.Context, ownerID uuid.UUID, goals []models.Goal) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}

// GoalService handles ownership-scoped goal CRUD.
type GoalService struct {
	reader      GoalReader
	writer      GoalWriter
	cache       GoalListCache
	kafkaWriter KafkaWriter
}

// NewGoalService creates a new GoalService. cache and kafkaWriter may
// be nil; caching and event publishing are then skipped.
func NewGoalService(reader GoalReader, writer GoalWriter, cache GoalListCache, kafkaWriter KafkaWriter) *GoalService {
	return &GoalService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all goals owned by the given user, cache-first.
func (svc *GoalService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, ownerID)
		if err != nil {
			logger.Log.Errorw("goal cache read failed", "ownerID", ownerID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	rows, err := svc.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list goals", "ownerID", ownerID, "err", err)
		return nil, err
	}

	goals := make([]models.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, *rows[i].Public())
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, ownerID, goals); err != nil {
			logger.Log.Errorw("goal cache write failed", "ownerID", ownerID, "err", err)
		}
	}

	return goals, nil
}

// Create stores a new goal for the given owner.
func (svc *GoalService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Goal, error) {
	if name == "" || description == "" {
		return nil, ErrMissingGoalFields
	}

	sanitizedName := sanitize.Clean(name)
	sanitizedDescription := sanitize.Clean(description)

	if sanitizedName == "" || sanitizedDescription == "" {
		return nil, ErrInvalidGoalFields
	}

	goal, err := svc.writer.Save(ctx, ownerID, sanitizedName, sanitizedDescription)
	if err != nil {
		logger.Log.Errorw("failed to save goal", "ownerID", ownerID, "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx, ownerID)
	publishEvent(ctx, svc.kafkaWriter, EventGoalCreated, ownerID.String(), goal.GoalID.String())

	return goal.Public(), nil
}

// Update rewrites name and description of a goal owned by the given
// user. A goal owned by someone else reports ErrGoalNotFound, never a
// permission error.
func (svc *GoalService) Update(ctx context.Context, ownerID uuid.UUID, goalID, name, description string) (*models.Goal, error) {
	id, err := svc.parseGoalID(goalID)
	if err != nil {
		return nil, err
	}

	if name == "" || description == "" {
		return nil, ErrMissingGoalFields
	}

	sanitizedName := sanitize.Clean(name)
	sanitizedDescription := sanitize.Clean(description)

	if sanitizedName == "" || sanitizedDescription == "" {
		return nil, ErrInvalidGoalFields
	}

	goal, err := svc.writer.UpdateByIDAndOwner(ctx, id, ownerID, sanitizedName, sanitizedDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		logger.Log.Errorw("failed to update goal", "goalID", id, "ownerID", ownerID, "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx, ownerID)
	publishEvent(ctx, svc.kafkaWriter, EventGoalUpdated, ownerID.String(), goal.GoalID.String())

	return goal.Public(), nil
}

// Delete removes a goal owned by the given user and returns the
// deleted record.
func (svc *GoalService) Delete(ctx context.Context, ownerID uuid.UUID, goalID string) (*models.Goal, error) {
	id, err := svc.parseGoalID(goalID)
	if err != nil {
		return nil, err
	}

	goal, err := svc.writer.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		logger.Log.Errorw("failed to delete goal", "goalID", id, "ownerID", ownerID, "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx, ownerID)
	publishEvent(ctx, svc.kafkaWriter, EventGoalDeleted, ownerID.String(), goal.GoalID.String())

	return goal.Public(), nil
}

// parseGoalID validates the path id format before any query runs. A
// malformed id is a client error, distinct from not-found.
func (svc *GoalService) parseGoalID(goalID string) (uuid.UUID, error) {
	if goalID == "" {
		return uuid.Nil, ErrMissingGoalID
	}
	id, err := uuid.Parse(sanitize.Clean(goalID))
	if err != nil {
		return uuid.Nil, ErrInvalidGoalID
	}
	return id, nil
}

func (svc *GoalService) invalidateCache(ctx context.Context, ownerID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, ownerID); err != nil {
		logger.Log.Errorw("goal cache invalidation failed", "ownerID", ownerID, "err", err)
	}
}
