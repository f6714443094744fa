// Package auth provides credential primitives for the ReviewZone API: JWT
// issuing and validation, bcrypt password hashing, and the password-reset
// challenge lifecycle.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/reviewzone/ReviewZone_Backend/internal/config"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// JWT errors
var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
)

// SessionClaims represents the claims in a session token. Session tokens are
// deliberately unbounded in time: sign-out is purely client-side and the
// server never tracks issued tokens, so no expiry claim is set.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ResetClaims represents the claims in a password-reset token. The reset
// secret ties the token to a single stored challenge; the 5-minute window is
// enforced against the challenge timestamp at redemption time, not by an
// expiry claim, so that a wrong secret can be rejected before staleness is
// even considered.
type ResetClaims struct {
	Email  string `json:"email"`
	Secret string `json:"reset_secret"`
	jwt.RegisteredClaims
}

// JWTService provides JWT token generation and validation functionality.
// Session and reset tokens share one signing key and are told apart by
// claim shape.
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: config,
	}
}

// GenerateSessionToken generates a signed session token for a user
func (s *JWTService) GenerateSessionToken(userID int64, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.Config.Issuer,
			Subject:  fmt.Sprintf("%d", userID),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.Config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// GenerateResetToken generates a signed password-reset token carrying the
// account email and the challenge secret
func (s *JWTService) GenerateResetToken(email, secret string) (string, error) {
	now := time.Now()
	claims := ResetClaims{
		Email:  email,
		Secret: secret,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.Config.Issuer,
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.Config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken validates a session token and returns its claims if
// valid. Tokens of the wrong shape, including reset tokens, are rejected.
func (s *JWTService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	// Shape check: a reset token carries no user_id, so it cannot pass here
	// even though it was signed with the same key.
	if claims.UserID == 0 || claims.Role == "" {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}

// ValidateResetToken validates a password-reset token and returns its claims
// if valid. Session tokens carry no email or secret and are rejected by the
// shape check.
func (s *JWTService) ValidateResetToken(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	if claims.Email == "" || claims.Secret == "" {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}

// keyFunc returns the shared signing key after checking the signing method
func (s *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidSigningMethod
	}
	return []byte(s.Config.Secret), nil
}
