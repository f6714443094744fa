package auth

import (
	"crypto/subtle"
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// ResetChallenge is a single-use password-reset grant stored on an account
// row. The secret proves the bearer received the reset email; the timestamp
// bounds how long the grant stays redeemable.
type ResetChallenge struct {
	Secret    string
	CreatedAt int64 // unix seconds
}

// NewResetChallenge generates a fresh challenge with a random secret and the
// current time. Issuing a new challenge replaces any pending one.
func NewResetChallenge() (*ResetChallenge, error) {
	secret, err := GenerateRandomHex(constants.ResetSecretBytes)
	if err != nil {
		return nil, err
	}
	return &ResetChallenge{
		Secret:    secret,
		CreatedAt: time.Now().Unix(),
	}, nil
}

// Verify checks a presented secret against the stored challenge. The secret
// is compared before the window is evaluated: a forged or superseded token
// must always read as invalid, never as expired, so the response does not
// leak whether a live challenge exists.
func (c *ResetChallenge) Verify(secret string, now time.Time) error {
	if c == nil || c.Secret == "" {
		return utils.NewInvalidTokenError()
	}

	if subtle.ConstantTimeCompare([]byte(c.Secret), []byte(secret)) != 1 {
		return utils.NewInvalidTokenError()
	}

	issued := time.Unix(c.CreatedAt, 0)
	if now.Sub(issued) > constants.ResetChallengeWindow {
		return utils.NewExpiredTokenError()
	}

	return nil
}
