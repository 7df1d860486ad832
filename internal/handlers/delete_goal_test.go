package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	goalID := uuid.New()
	goal := &models.Goal{
		ID:          goalID.String(),
		Name:        "run",
		Description: "a marathon",
		UserID:      ownerID.String(),
	}

	tests := []struct {
		name          string
		goalID        string
		mockSetup     func(m *MockGoalDeleter)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success echoes the deleted goal",
			goalID: goalID.String(),
			mockSetup: func(m *MockGoalDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, goalID.String()).
					Return(goal, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "malformed goal id",
			goalID: "42",
			mockSetup: func(m *MockGoalDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, "42").
					Return(nil, services.ErrInvalidGoalID)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid goal ID",
		},
		{
			name:   "goal not found",
			goalID: goalID.String(),
			mockSetup: func(m *MockGoalDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, goalID.String()).
					Return(nil, services.ErrGoalNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Goal not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGoalDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/api/goals/{goalID}", NewDeleteGoalHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/api/goals/"+tt.goalID, nil)
			req = req.WithContext(middlewares.ContextWithUserID(req.Context(), ownerID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp GoalErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp models.Goal
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, goalID.String(), resp.ID)
		})
	}
}

// A delete without a trailing id never reaches the handler; the
// router's not-found handler answers with a structured body.
func TestDeleteGoal_MissingTrailingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGoalDeleter(ctrl)

	router := chi.NewRouter()
	router.NotFound(NewNotFoundHandler())
	router.Delete("/api/goals/{goalID}", NewDeleteGoalHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/api/goals/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp NotFoundResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Not Found", resp.Error)
}
