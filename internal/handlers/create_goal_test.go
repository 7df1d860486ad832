package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/sbilibin2017/gw-goal-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	goal := &models.Goal{
		ID:          uuid.NewString(),
		Name:        "run",
		Description: "a marathon",
		UserID:      ownerID.String(),
	}

	tests := []struct {
		name          string
		reqBody       GoalRequest
		rawBody       string
		noAuth        bool
		mockSetup     func(m *MockGoalCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "success",
			reqBody: GoalRequest{Name: "run", Description: "a marathon"},
			mockSetup: func(m *MockGoalCreator) {
				m.EXPECT().
					Create(gomock.Any(), ownerID, "run", "a marathon").
					Return(goal, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "no authenticated user",
			reqBody:       GoalRequest{Name: "run", Description: "a marathon"},
			noAuth:        true,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:    "missing fields",
			reqBody: GoalRequest{Name: "run"},
			mockSetup: func(m *MockGoalCreator) {
				m.EXPECT().
					Create(gomock.Any(), ownerID, "run", "").
					Return(nil, services.ErrMissingGoalFields)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing goal name or description",
		},
		{
			name:    "whitespace-only fields",
			reqBody: GoalRequest{Name: "   ", Description: "a marathon"},
			mockSetup: func(m *MockGoalCreator) {
				m.EXPECT().
					Create(gomock.Any(), ownerID, "   ", "a marathon").
					Return(nil, services.ErrInvalidGoalFields)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid goal name or description",
		},
		{
			name:    "internal server error",
			reqBody: GoalRequest{Name: "run", Description: "a marathon"},
			mockSetup: func(m *MockGoalCreator) {
				m.EXPECT().
					Create(gomock.Any(), ownerID, "run", "a marathon").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal Server Error",
		},
		{
			name:          "invalid json",
			rawBody:       "{invalid json}",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing goal name or description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGoalCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateGoalHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/goals", body)
			if !tt.noAuth {
				req = req.WithContext(middlewares.ContextWithUserID(req.Context(), ownerID))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp GoalErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp models.Goal
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "run", resp.Name)
			assert.Equal(t, ownerID.String(), resp.UserID)
		})
	}
}
