package handlers

import (
	"encoding/json"
	"net/http"
)

// NotFoundResponse is the structured body for unmatched routes.
// swagger:model NotFoundResponse
type NotFoundResponse struct {
	// Error message
	// example: Not Found
	Error string `json:"error"`
}

// NewNotFoundHandler returns the handler for unmatched routes, so even
// routing misses (like a delete with a missing trailing id) answer
// with a structured JSON body.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(NotFoundResponse{Error: "Not Found"})
	}
}
