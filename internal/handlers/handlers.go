// Package handlers contains the HTTP handlers for the ReviewZone API.
//
// Handlers decode and validate request payloads, delegate to the service
// layer, and translate service errors into the JSON response envelope. No
// business rules live here.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// parseIDParam extracts a numeric URL parameter from the request path.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, utils.NewValidationError(name, "is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError(name, "must be a positive integer")
	}

	return id, nil
}

// keywordParam extracts the search keyword from the query string.
func keywordParam(r *http.Request) (string, error) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		return "", utils.NewValidationError("keyword", "is required")
	}
	return keyword, nil
}
