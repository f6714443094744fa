// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings, establish boundaries for resource usage, and define security
// parameters.
package constants

// Default Pagination Values define the parameters used for paginated responses.
// Out-of-range requests fall back to the defaults rather than erroring.
const (
	// DefaultPage is the default page number for paginated results when not specified.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page when not specified.
	DefaultPageSize = 10

	// MinPageSize is the minimum allowable page size.
	MinPageSize = 10

	// MaxPageSize is the maximum allowable page size to prevent excessive resource usage.
	MaxPageSize = 50
)

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 3000

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Limits guard against denial of service via oversized payloads.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB
)

// Password Hashing Defaults define the bcrypt parameters for credential storage.
const (
	// DefaultBcryptCost is the bcrypt work factor used in production. Each
	// increment doubles the hashing time.
	DefaultBcryptCost = 10

	// DevBcryptCost is a reduced work factor for development and test runs.
	DevBcryptCost = 4
)

// Token Constants define values related to session and reset token handling.
const (
	// DefaultJWTIssuer is the issuer claim value for signed tokens.
	DefaultJWTIssuer = "reviewzone-api"

	// ResetSecretBytes is the number of random bytes in a reset challenge
	// secret before hex encoding (160 bits of entropy).
	ResetSecretBytes = 20
)
