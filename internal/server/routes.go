package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/middleware"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// SetupRoutes configures the router hierarchy. Routes are grouped by
// functionality, with token authentication on everything under /api except
// the credential endpoints, and an additional admin gate on moderation
// routes.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	allowedOrigins := getAllowedOrigins()
	r.Use(corsMiddleware(allowedOrigins))

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			if err := s.Db.HealthCheck(req.Context()); err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get("/version", func(w http.ResponseWriter, req *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Credential lifecycle routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/registration", s.Handlers.AuthHandler.Register)
			r.Post("/signin", s.Handlers.AuthHandler.SignIn)
			r.Post("/forgotPassword", s.Handlers.AuthHandler.ForgotPassword)
			r.Post("/resetPassword/{token}", s.Handlers.AuthHandler.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(middleware.TokenAuth(s.authProviders.JWTService))
				r.Post("/changePassword", s.Handlers.AuthHandler.ChangePassword)
			})
		})

		// Everything below requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.TokenAuth(s.authProviders.JWTService))

			r.Route("/company", func(r chi.Router) {
				r.Post("/", s.Handlers.CompanyHandler.Create)
				r.Get("/", s.Handlers.CompanyHandler.List)
				r.Get("/{id}", s.Handlers.CompanyHandler.Get)
				r.Patch("/{id}", s.Handlers.CompanyHandler.Update)
				r.Delete("/{id}", s.Handlers.CompanyHandler.Delete)
				r.With(middleware.AdminOnly()).Patch("/suspend/{id}", s.Handlers.CompanyHandler.Suspend)
			})

			r.Route("/review", func(r chi.Router) {
				r.Post("/", s.Handlers.ReviewHandler.Create)
				r.Get("/", s.Handlers.ReviewHandler.List)
				r.Patch("/{id}", s.Handlers.ReviewHandler.Update)
				r.Delete("/{id}", s.Handlers.ReviewHandler.Delete)
			})

			r.Route("/response", func(r chi.Router) {
				r.Post("/", s.Handlers.ReviewHandler.Respond)
				r.Patch("/", s.Handlers.ReviewHandler.Respond)
				r.Delete("/", s.Handlers.ReviewHandler.DeleteResponse)
			})

			r.Route("/search", func(r chi.Router) {
				r.Get("/company", s.Handlers.SearchHandler.SearchByName)
				r.Get("/tag", s.Handlers.SearchHandler.SearchByTag)
			})
			r.Route("/suggestion", func(r chi.Router) {
				r.Get("/company", s.Handlers.SearchHandler.SuggestNames)
				r.Get("/tag", s.Handlers.SearchHandler.SuggestTags)
			})

			// Account moderation (admin only)
			r.Route("/user", func(r chi.Router) {
				r.Use(middleware.AdminOnly())
				r.Get("/active", s.Handlers.UserHandler.ListActive)
				r.Get("/suspended", s.Handlers.UserHandler.ListSuspended)
				r.Patch("/suspend/{id}", s.Handlers.UserHandler.Suspend)
				r.Patch("/active/{id}", s.Handlers.UserHandler.Activate)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.NotFound(w, "The requested resource does not exist")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.MethodNotAllowed(w)
	})

	s.router = r
}

// GetRouter exposes the configured router, primarily for tests.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// corsMiddleware adds CORS headers for allowed origins and answers OPTIONS
// preflight requests.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")

					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID, x-auth-token")
					w.Header().Set("Access-Control-Expose-Headers", "x-auth-token")
					w.Header().Set("Access-Control-Max-Age", "300")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getAllowedOrigins reads allowed CORS origins from the environment, falling
// back to the local frontend dev server.
func getAllowedOrigins() []string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	return []string{"http://localhost:3000"}
}
