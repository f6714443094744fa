package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/config"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// InitLogger initializes the application logger with the given configuration.
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogAuth logs an authentication event. Never pass plaintext credentials or
// reset secrets here.
func LogAuth(event, userID, email string, success bool, reason string) {
	entry := log.Info()
	if !success {
		entry = log.Warn()
	}

	entry.
		Str("category", constants.LogCategoryAuth).
		Str("event", event).
		Str("user_id", userID).
		Str("email", email).
		Bool("success", success)

	if reason != "" {
		entry.Str("reason", reason)
	}

	entry.Msg("Auth event")
}

// LogDBQuery logs a database query execution with its duration.
// Sensitive argument values must be redacted by the caller.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	entry := log.Debug()
	if err != nil {
		entry = log.Error().Err(err)
	}

	entry.
		Str("query", strings.Join(strings.Fields(query), " ")).
		Interface("args", args).
		Dur("duration", duration).
		Msg("Database query")
}

// LogHTTPRequest logs a completed HTTP request.
func LogHTTPRequest(requestID, method, path, remoteAddr string, statusCode int, latency time.Duration) {
	log.Info().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Str("remote_addr", remoteAddr).
		Int("status", statusCode).
		Dur("latency", latency).
		Msg("HTTP request")
}
