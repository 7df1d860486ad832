package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/services"
)

// GoalCreator defines the interface that the service must implement.
type GoalCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Goal, error)
}

// GoalRequest represents the JSON body for creating or updating a goal
// swagger:model GoalRequest
type GoalRequest struct {
	// Goal name
	// required: true
	// example: Run a marathon
	Name string `json:"name"`

	// Goal description
	// required: true
	// example: Finish a full marathon before the end of the year
	Description string `json:"description"`
}

// NewCreateGoalHandler returns an HTTP handler creating a goal for the
// authenticated user.
// @Summary Create goal
// @Description Creates a goal owned by the authenticated user
// @Tags goals
// @Accept json
// @Produce json
// @Param goalRequest body handlers.GoalRequest true "Goal request"
// @Success 201 {object} models.Goal "Created goal"
// @Failure 400 {object} handlers.GoalErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.GoalErrorResponse "Unauthorized"
// @Router /api/goals [post]
// @Security BearerAuth
func NewCreateGoalHandler(svc GoalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GoalErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GoalErrorResponse{
				Error: "Missing goal name or description",
			})
			return
		}

		goal, err := svc.Create(r.Context(), ownerID, req.Name, req.Description)
		if err != nil {
			writeGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(goal)
	}
}

// writeGoalError maps goal service errors to HTTP responses. Shared by
// the create, update and delete handlers.
func writeGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMissingGoalFields):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Missing goal name or description",
		})
	case errors.Is(err, services.ErrInvalidGoalFields):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Invalid goal name or description",
		})
	case errors.Is(err, services.ErrMissingGoalID):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Missing goal ID",
		})
	case errors.Is(err, services.ErrInvalidGoalID):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Invalid goal ID",
		})
	case errors.Is(err, services.ErrGoalNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Goal not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GoalErrorResponse{
			Error: "Internal Server Error",
		})
	}
}
