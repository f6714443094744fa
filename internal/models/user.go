// Package models defines the domain entities of the ReviewZone platform and
// the request payloads the API accepts for them.
package models

import (
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// ResetChallenge holds a pending password-reset grant embedded in an account
// row. At most one challenge is pending per account; issuing a new one
// replaces it.
type ResetChallenge struct {
	Secret    string `json:"-" db:"reset_secret"`
	CreatedAt int64  `json:"-" db:"reset_created_at"` // unix seconds
}

// User represents a registered account on the ReviewZone platform.
// It contains authentication information and core account attributes.
type User struct {
	ID             int64           `json:"id" db:"user_id"`
	Name           string          `json:"name" db:"name" validate:"required,min=3,max=50"`
	Email          string          `json:"email" db:"email" validate:"required,email,min=5,max=255"`
	PasswordHash   string          `json:"-" db:"password_hash"`
	Status         string          `json:"status" db:"status"`
	Role           string          `json:"role" db:"role"`
	ResetChallenge *ResetChallenge `json:"-" db:"-"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// NewUser creates a new User instance with the given name and email.
// New accounts start in pending status with the base user role; the password
// hash is populated during registration.
func NewUser(name, email string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		Status:    constants.StatusPending,
		Role:      constants.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information from the User object when sending to
// clients. The password hash and any pending reset challenge are never
// exposed.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	sanitized.ResetChallenge = nil
	return &sanitized
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// IsSuspended reports whether the account has been suspended by a moderator.
func (u *User) IsSuspended() bool {
	return u.Status == constants.StatusSuspend
}

// UserRegistration represents the data required to register an account.
type UserRegistration struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// UserCredentials represents the sign-in payload.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// ForgotPasswordRequest represents the payload that starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,min=5,max=255"`
}

// ResetPasswordRequest represents the payload that redeems a reset token.
// The token itself travels in the URL path, not the body. The confirmation
// is optional; when present it must match the new password.
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=5,max=255"`
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password"`
}

// ChangePasswordRequest represents the payload for an authenticated password
// change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=5,max=255"`
	NewPassword     string `json:"newPassword" validate:"required,min=5,max=255"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}
