// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling and
// messaging. User-facing error messages are crafted to be informative without
// revealing sensitive details: the sign-in failure message deliberately does
// not distinguish an unknown email from a wrong password.
package constants

// Error Types define the categories of errors that can occur in the application.
const (
	// ErrorNotFound indicates that a requested resource could not be found.
	ErrorNotFound = "resource not found"

	// ErrorUnauthorized indicates that authentication is required but was not provided.
	ErrorUnauthorized = "unauthorized access"

	// ErrorForbidden indicates that the requester lacks sufficient permissions.
	ErrorForbidden = "forbidden access"

	// ErrorBadRequest indicates that the request was malformed or invalid.
	ErrorBadRequest = "invalid request"

	// ErrorValidation indicates that input validation failed.
	ErrorValidation = "validation error"

	// ErrorDuplicate indicates an attempt to create a resource that already exists.
	ErrorDuplicate = "duplicate resource"

	// ErrorInvalidCredentials indicates that authentication credentials are incorrect.
	ErrorInvalidCredentials = "invalid credentials"

	// ErrorExpiredToken indicates that a token's validity window has passed.
	ErrorExpiredToken = "expired token"

	// ErrorInvalidToken indicates that a token is malformed or invalid.
	ErrorInvalidToken = "invalid token"
)

// User-Facing Error Messages define standardized messages safe to present to clients.
const (
	// MsgAuthRequired indicates that the caller must present a session token.
	MsgAuthRequired = "Access denied. No token provided"

	// MsgCredentialMismatch is the single message used for every sign-in
	// failure, whether the account is missing or the password is wrong.
	MsgCredentialMismatch = "Email and password doesn't match"

	// MsgAlreadyRegistered indicates an account already exists for the email.
	MsgAlreadyRegistered = "User already registered"

	// MsgEmailNotFound is the forgot-password response for an unknown email.
	// Unlike sign-in, this endpoint intentionally discloses account existence.
	MsgEmailNotFound = "Email doesn't exist"

	// MsgPasswordsDoNotMatch indicates the new password and its confirmation differ.
	MsgPasswordsDoNotMatch = "New password & confirm password should be the same"

	// MsgPasswordChanged confirms a successful password change or reset.
	MsgPasswordChanged = "Changed successfully"

	// MsgResetMailSent acknowledges a forgot-password request.
	MsgResetMailSent = "Success"

	// MsgTokenExpired indicates the reset challenge's validity window has passed.
	MsgTokenExpired = "Expired token"

	// MsgInvalidToken indicates a token failed signature or shape verification.
	MsgInvalidToken = "Invalid token"

	// MsgAccessDenied indicates the caller's role does not permit the action.
	MsgAccessDenied = "Access denied. You are not permitted"

	// MsgNotCompanyOwner indicates a review response was attempted by someone
	// other than the reviewed company's owner.
	MsgNotCompanyOwner = "You are not the company owner"

	// MsgResourceNotFound indicates the requested resource does not exist.
	MsgResourceNotFound = "Not found"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported for the endpoint.
	MsgMethodNotAllowed = "This method is not allowed for this resource"
)

// Database Error Types define constants for recognizing database-specific errors.
const (
	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null constraint violations.
	PGErrorNotNullConstraint = "23502"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryAuth is the log category for authentication-related events.
	LogCategoryAuth = "auth"

	// LogEventSignin is the log event type for user sign-in.
	LogEventSignin = "signin"

	// LogEventRegister is the log event type for user registration.
	LogEventRegister = "register"

	// LogEventPasswordReset is the log event type for password reset operations.
	LogEventPasswordReset = "password_reset"

	// LogRedactedValue replaces sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
