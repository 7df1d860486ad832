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

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	// required: true
	// example: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"lastName"`
}

// UpdateProfileErrorResponse represents an error response for a profile update
// swagger:model UpdateProfileErrorResponse
type UpdateProfileErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// authenticated user's first and last name.
// @Summary Update user profile
// @Description Sets first and last name of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.UpdateProfileErrorResponse "Missing or invalid name"
// @Failure 401 {object} handlers.UpdateProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateProfileErrorResponse "User not found"
// @Router /api/auth/user [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Error: "Missing first or last name",
			})
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Error: "Missing first or last name",
				})
			case errors.Is(err, services.ErrInvalidName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Error: "Invalid first or last name",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Error: "Internal Server Error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
