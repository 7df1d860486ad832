package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
)

// GoalUpdater defines the interface that the service must implement.
type GoalUpdater interface {
	Update(ctx context.Context, ownerID uuid.UUID, goalID, name, description string) (*models.Goal, error)
}

// NewUpdateGoalHandler returns an HTTP handler updating a goal owned
// by the authenticated user. A goal owned by someone else is reported
// as not found.
// @Summary Update goal
// @Description Updates name and description of a goal owned by the authenticated user
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path string true "Goal ID"
// @Param goalRequest body handlers.GoalRequest true "Goal request"
// @Success 200 {object} models.Goal "Updated goal"
// @Failure 400 {object} handlers.GoalErrorResponse "Missing or invalid id or fields"
// @Failure 401 {object} handlers.GoalErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GoalErrorResponse "Goal not found"
// @Router /api/goals/{goalID} [put]
// @Security BearerAuth
func NewUpdateGoalHandler(svc GoalUpdater) http.HandlerFunc {
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

		goal, err := svc.Update(r.Context(), ownerID, chi.URLParam(r, "goalID"), req.Name, req.Description)
		if err != nil {
			writeGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(goal)
	}
}
