package middleware

import (
	"net/http"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// TokenAuth is a middleware that requires a valid session token in the
// x-auth-token header
func TokenAuth(jwtService auth.SessionValidator) func(http.Handler) http.Handler {
	provider := auth.NewTokenAuthProvider(jwtService)
	return auth.RequireAuth(provider)
}

// AdminOnly is a middleware that requires the caller to hold the admin role.
// It must run after TokenAuth.
func AdminOnly() func(http.Handler) http.Handler {
	return auth.RequireRole(constants.RoleAdmin)
}
