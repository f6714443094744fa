package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/reviewzone/ReviewZone_Backend/internal/config"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// PasswordConfig holds the parameters for bcrypt password hashing
type PasswordConfig struct {
	Cost int
}

// DefaultPasswordConfig returns the default configuration for password hashing
func DefaultPasswordConfig() *PasswordConfig {
	return &PasswordConfig{
		Cost: constants.DefaultBcryptCost,
	}
}

// ConfigFromAppConfig creates a password config from the application config
func ConfigFromAppConfig(cfg *config.AppConfig) *PasswordConfig {
	return &PasswordConfig{
		Cost: cfg.Password.BcryptCost,
	}
}

// HashPassword generates a bcrypt hash of the provided password. The salt is
// generated internally and carried inside the encoded hash, so only one value
// is stored per account.
func HashPassword(password string, cfg *PasswordConfig) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
// bcrypt's comparison is constant-time over the derived key.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	return true, nil
}

// GenerateRandomBytes generates cryptographically secure random bytes
func GenerateRandomBytes(length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}

// GenerateRandomHex generates a hex-encoded random string from length random
// bytes. Used for reset challenge secrets.
func GenerateRandomHex(length int) (string, error) {
	b, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
