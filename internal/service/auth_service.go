// Package service implements the business flows of the ReviewZone platform
// on top of the repository layer.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// AuthService handles the credential lifecycle: registration, sign-in and the
// three password flows.
type AuthService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	passwordCfg  *auth.PasswordConfig
	emailService EmailSender
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	passwordCfg *auth.PasswordConfig,
	emailService EmailSender,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		passwordCfg:  passwordCfg,
		emailService: emailService,
	}
}

// RegisterUser creates a new account and signs the caller in. The returned
// token lets the client skip a separate sign-in after registering.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		utils.LogAuth("register_failed", "0", reg.Email, false, "email already registered")
		return nil, "", utils.NewDuplicateError("User", "email", reg.Email)
	}

	passwordHash, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(reg.Name, reg.Email)
	user.PasswordHash = passwordHash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	utils.LogAuth("register_success", fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return user.Sanitize(), token, nil
}

// AuthenticateUser verifies credentials and returns a session token. Unknown
// email and wrong password produce the same error, so the response never
// reveals whether an account exists.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login_failed", "0", creds.Email, false, "user not found")
			return nil, "", utils.NewInvalidCredentialsError()
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	match, err := auth.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}

	if !match {
		utils.LogAuth("login_failed", fmt.Sprintf("%d", user.ID), user.Email, false, "invalid password")
		return nil, "", utils.NewInvalidCredentialsError()
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	utils.LogAuth("login_success", fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return user.Sanitize(), token, nil
}

// ForgotPassword stores a fresh reset challenge on the account and mails a
// token that proves receipt of that mail. An unknown email is reported as
// not found: the platform discloses account existence here on purpose, to
// tell users which address they registered with.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("forgot_password_failed", "0", email, false, "email not found")
			return utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	challenge, err := auth.NewResetChallenge()
	if err != nil {
		return fmt.Errorf("failed to generate reset challenge: %w", err)
	}

	// Replaces any pending challenge; only the newest token stays redeemable
	if err := s.userRepo.SetResetChallenge(ctx, user.ID, &models.ResetChallenge{
		Secret:    challenge.Secret,
		CreatedAt: challenge.CreatedAt,
	}); err != nil {
		return err
	}

	token, err := s.jwtService.GenerateResetToken(user.Email, challenge.Secret)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	utils.LogAuth("forgot_password", fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return nil
}

// ResetPassword redeems a reset token and writes the new password. The token
// signature and shape are checked before the payload, then the account is
// looked up (an unknown email reads as not found, same as forgot-password),
// then the secret against the stored challenge, and only then the 5-minute
// window: a wrong secret always reads as invalid rather than expired. The
// challenge is cleared in the same statement that writes the hash, so a
// redeemed token can never be replayed.
func (s *AuthService) ResetPassword(ctx context.Context, tokenString string, req *models.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateResetToken(tokenString)
	if err != nil {
		return err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("reset_password_failed", "0", claims.Email, false, "email not found")
			return err
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	var challenge *auth.ResetChallenge
	if user.ResetChallenge != nil {
		challenge = &auth.ResetChallenge{
			Secret:    user.ResetChallenge.Secret,
			CreatedAt: user.ResetChallenge.CreatedAt,
		}
	}

	if err := challenge.Verify(claims.Secret, time.Now()); err != nil {
		utils.LogAuth("reset_password_failed", fmt.Sprintf("%d", user.ID), user.Email, false, "challenge verification failed")
		return err
	}

	passwordHash, err := auth.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}

	utils.LogAuth("reset_password_success", fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return nil
}

// ChangePassword updates the password of an authenticated account after
// re-proving the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := auth.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	if !match {
		utils.LogAuth("change_password_failed", fmt.Sprintf("%d", user.ID), user.Email, false, "current password mismatch")
		return utils.NewInvalidCredentialsError()
	}

	passwordHash, err := auth.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}

	utils.LogAuth("change_password_success", fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return nil
}
