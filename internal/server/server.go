// Package server provides the HTTP server for the ReviewZone API.
// It handles routing, middleware configuration, and server lifecycle
// management including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/config"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/database"
	"github.com/reviewzone/ReviewZone_Backend/internal/handlers"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/migrations"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	AuthHandler    *handlers.AuthHandler
	CompanyHandler *handlers.CompanyHandler
	ReviewHandler  *handlers.ReviewHandler
	SearchHandler  *handlers.SearchHandler
	UserHandler    *handlers.UserHandler
}

// AuthProviders contains the authentication services shared between the
// credential routes and the protected-route middleware.
type AuthProviders struct {
	JWTService  *auth.JWTService
	PasswordCfg *auth.PasswordConfig
}

// Server represents the ReviewZone API server. It encapsulates all server
// components and handles initialization, startup, and graceful shutdown.
type Server struct {
	Config *config.AppConfig
	Db     *database.Pool

	router        chi.Router
	Handlers      *Handlers
	authProviders *AuthProviders
	httpServer    *http.Server

	repositories struct {
		userRepo    repository.UserRepository
		companyRepo repository.CompanyRepository
		reviewRepo  repository.ReviewRepository
	}
	services struct {
		authService    *service.AuthService
		companyService *service.CompanyService
		reviewService  *service.ReviewService
		userService    *service.UserService
	}
}

// NewServer creates a fully initialized server. Initialization runs in
// dependency order: database, auth providers, repositories, services,
// handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.setupAuthProviders()
	s.setupRepositories()

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects to Postgres and brings the schema up to date.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}
	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

func (s *Server) setupAuthProviders() {
	s.authProviders = &AuthProviders{
		JWTService:  auth.NewJWTService(&s.Config.JWT),
		PasswordCfg: auth.ConfigFromAppConfig(s.Config),
	}
}

func (s *Server) setupRepositories() {
	s.repositories.userRepo = repository.NewUserRepository(s.Db)
	s.repositories.companyRepo = repository.NewCompanyRepository(s.Db)
	s.repositories.reviewRepo = repository.NewReviewRepository(s.Db)
}

func (s *Server) setupServices() error {
	if s.authProviders == nil || s.authProviders.JWTService == nil {
		return fmt.Errorf("JWT service not initialized")
	}

	var emailSender service.EmailSender
	emailService, err := service.NewEmailService(&s.Config.Email)
	switch {
	case err == nil:
		emailSender = emailService
	case s.Config.App.IsProduction():
		return fmt.Errorf("failed to set up email service: %w", err)
	default:
		// Outside production, reset links go to the log instead
		log.Warn().Err(err).Msg("Mail provider unavailable, logging reset links instead")
		emailSender = &service.LogEmailSender{}
	}

	s.services.authService = service.NewAuthService(
		s.repositories.userRepo,
		s.authProviders.JWTService,
		s.authProviders.PasswordCfg,
		emailSender,
	)
	s.services.companyService = service.NewCompanyService(
		s.repositories.companyRepo,
		s.repositories.userRepo,
	)
	s.services.reviewService = service.NewReviewService(
		s.repositories.reviewRepo,
		s.repositories.companyRepo,
	)
	s.services.userService = service.NewUserService(s.repositories.userRepo)

	return nil
}

func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		AuthHandler:    handlers.NewAuthHandler(s.services.authService),
		CompanyHandler: handlers.NewCompanyHandler(s.services.companyService),
		ReviewHandler:  handlers.NewReviewHandler(s.services.reviewService),
		SearchHandler:  handlers.NewSearchHandler(s.services.companyService),
		UserHandler:    handlers.NewUserHandler(s.services.userService),
	}
}

// Start runs the HTTP server and blocks until a server error occurs or a
// shutdown signal arrives, then shuts down gracefully.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
