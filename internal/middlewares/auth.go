package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/sanitize"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// AuthMiddleware returns a middleware that validates the bearer token
// and injects the verified user id into the request context. A missing
// or malformed Authorization header yields 401 "Unauthorized"; a
// present but unverifiable token yields 401 "Invalid token". The user
// id extracted from the claim is re-sanitized and re-parsed before it
// is allowed anywhere near a store query.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, "Unauthorized")
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, "Invalid token")
				return
			}

			sanitized := sanitize.Clean(userID.String())
			verified, err := uuid.Parse(sanitized)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(ctx, verified)))
		})
	}
}

// ContextWithUserID stores a verified user id in the context the same
// way AuthMiddleware does.
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the verified user id stored by
// AuthMiddleware. ok is false when the request never passed the
// middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
