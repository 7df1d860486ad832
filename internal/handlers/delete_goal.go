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

// GoalDeleter defines the interface that the service must implement.
type GoalDeleter interface {
	Delete(ctx context.Context, ownerID uuid.UUID, goalID string) (*models.Goal, error)
}

// NewDeleteGoalHandler returns an HTTP handler deleting a goal owned
// by the authenticated user and echoing the deleted record.
// @Summary Delete goal
// @Description Deletes a goal owned by the authenticated user
// @Tags goals
// @Produce json
// @Param goalID path string true "Goal ID"
// @Success 200 {object} models.Goal "Deleted goal"
// @Failure 400 {object} handlers.GoalErrorResponse "Missing or invalid goal ID"
// @Failure 401 {object} handlers.GoalErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GoalErrorResponse "Goal not found"
// @Router /api/goals/{goalID} [delete]
// @Security BearerAuth
func NewDeleteGoalHandler(svc GoalDeleter) http.HandlerFunc {
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

		goal, err := svc.Delete(r.Context(), ownerID, chi.URLParam(r, "goalID"))
		if err != nil {
			writeGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(goal)
	}
}
