package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
)

// GoalLister defines the interface that the service must implement.
type GoalLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error)
}

// GoalErrorResponse represents an error response for goal endpoints
// swagger:model GoalErrorResponse
type GoalErrorResponse struct {
	// Error message
	// example: Goal not found
	Error string `json:"error"`
}

// NewListGoalsHandler returns an HTTP handler listing the
// authenticated user's goals.
// @Summary List goals
// @Description Returns all goals owned by the authenticated user
// @Tags goals
// @Produce json
// @Success 200 {array} models.Goal "Goals"
// @Failure 401 {object} handlers.GoalErrorResponse "Unauthorized"
// @Router /api/goals [get]
// @Security BearerAuth
func NewListGoalsHandler(svc GoalLister) http.HandlerFunc {
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

		goals, err := svc.List(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GoalErrorResponse{
				Error: "Internal Server Error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(goals)
	}
}
