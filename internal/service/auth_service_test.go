package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/config"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// setupAuthServiceTest wires an AuthService onto in-memory mocks
func setupAuthServiceTest() (*AuthService, *MockUserRepository, *MockEmailSender, *auth.JWTService) {
	userRepo := NewMockUserRepository()
	emailSender := &MockEmailSender{}
	jwtService := auth.NewJWTService(&config.JWTSettings{
		Secret: "test-secret",
		Issuer: "test-issuer",
	})
	passwordCfg := &auth.PasswordConfig{Cost: 4}

	authService := NewAuthService(userRepo, jwtService, passwordCfg, emailSender)
	return authService, userRepo, emailSender, jwtService
}

// registerTestUser registers an account and returns it
func registerTestUser(t *testing.T, s *AuthService, email, password string) *models.User {
	t.Helper()

	user, _, err := s.RegisterUser(context.Background(), &models.UserRegistration{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	return user
}

func TestRegisterUser(t *testing.T) {
	authService, _, _, jwtService := setupAuthServiceTest()

	user, token, err := authService.RegisterUser(context.Background(), &models.UserRegistration{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be assigned")
	}

	// New accounts start pending with the base role
	if user.Status != "pending" {
		t.Errorf("Expected status 'pending', got %q", user.Status)
	}
	if user.Role != "user" {
		t.Errorf("Expected role 'user', got %q", user.Role)
	}

	// The returned user is sanitized
	if user.PasswordHash != "" {
		t.Error("Expected password hash to be stripped from returned user")
	}

	// Registration signs the caller in
	claims, err := jwtService.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected token user_id %d, got %d", user.ID, claims.UserID)
	}
	if claims.Role != "user" {
		t.Errorf("Expected token role 'user', got %q", claims.Role)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	registerTestUser(t, authService, "taken@example.com", "password123")

	_, _, err := authService.RegisterUser(context.Background(), &models.UserRegistration{
		Name:     "Second User",
		Email:    "taken@example.com",
		Password: "otherpassword",
	})

	if err == nil {
		t.Fatal("Expected error for duplicate email, got nil")
	}
	if !utils.IsDuplicateError(err) {
		t.Errorf("Expected duplicate error, got %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	authService, _, _, jwtService := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "password123")

	user, token, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}

	if user.ID != registered.ID {
		t.Errorf("Expected user ID %d, got %d", registered.ID, user.ID)
	}

	claims, err := jwtService.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("Expected token user_id %d, got %d", registered.ID, claims.UserID)
	}
}

func TestAuthenticateUser_GenericFailure(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	registerTestUser(t, authService, "test@example.com", "password123")

	// Unknown email and wrong password must be indistinguishable
	_, _, unknownErr := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	_, _, wrongErr := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "wrongpassword",
	})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("Expected both sign-in attempts to fail")
	}

	var unknownApp, wrongApp *utils.AppError
	if !errors.As(unknownErr, &unknownApp) || !errors.As(wrongErr, &wrongApp) {
		t.Fatalf("Expected AppErrors, got %T and %T", unknownErr, wrongErr)
	}

	if unknownApp.Message != wrongApp.Message {
		t.Errorf("Expected identical messages, got %q and %q", unknownApp.Message, wrongApp.Message)
	}
	if unknownApp.StatusCode != wrongApp.StatusCode {
		t.Errorf("Expected identical status codes, got %d and %d", unknownApp.StatusCode, wrongApp.StatusCode)
	}
}

func TestForgotPassword(t *testing.T) {
	authService, userRepo, emailSender, jwtService := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "password123")

	if err := authService.ForgotPassword(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	// A challenge is now stored on the account
	stored := userRepo.users[registered.ID]
	if stored.ResetChallenge == nil {
		t.Fatal("Expected reset challenge to be stored")
	}
	if len(stored.ResetChallenge.Secret) != 40 {
		t.Errorf("Expected 40-char secret, got %d chars", len(stored.ResetChallenge.Secret))
	}

	// The mailed token carries the same secret
	if len(emailSender.SentTokens) != 1 {
		t.Fatalf("Expected 1 email, got %d", len(emailSender.SentTokens))
	}
	claims, err := jwtService.ValidateResetToken(emailSender.SentTokens[0])
	if err != nil {
		t.Fatalf("ValidateResetToken() error = %v", err)
	}
	if claims.Secret != stored.ResetChallenge.Secret {
		t.Error("Expected mailed token secret to match stored challenge")
	}
	if claims.Email != "test@example.com" {
		t.Errorf("Expected token email 'test@example.com', got %q", claims.Email)
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	authService, _, emailSender, _ := setupAuthServiceTest()

	err := authService.ForgotPassword(context.Background(), "nobody@example.com")

	if err == nil {
		t.Fatal("Expected error for unknown email, got nil")
	}
	if !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if len(emailSender.SentTo) != 0 {
		t.Error("Expected no email to be sent")
	}
}

func TestResetPassword(t *testing.T) {
	authService, userRepo, emailSender, _ := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "oldpassword")

	if err := authService.ForgotPassword(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	token := emailSender.SentTokens[0]

	err := authService.ResetPassword(context.Background(), token, &models.ResetPasswordRequest{
		Password:        "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	// The challenge is consumed
	if userRepo.users[registered.ID].ResetChallenge != nil {
		t.Error("Expected challenge to be cleared after redemption")
	}

	// Old password no longer works, new one does
	if _, _, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "oldpassword",
	}); err == nil {
		t.Error("Expected old password to be rejected after reset")
	}
	if _, _, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "newpassword",
	}); err != nil {
		t.Errorf("Expected new password to work, got %v", err)
	}

	// The same token cannot be redeemed twice
	err = authService.ResetPassword(context.Background(), token, &models.ResetPasswordRequest{
		Password:        "anotherpassword",
		ConfirmPassword: "anotherpassword",
	})
	if err == nil {
		t.Fatal("Expected replay to fail, got nil")
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, utils.ErrInvalidToken) {
		t.Errorf("Expected invalid token error on replay, got %v", err)
	}
}

func TestResetPassword_ExpiredChallenge(t *testing.T) {
	authService, userRepo, emailSender, _ := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "oldpassword")

	if err := authService.ForgotPassword(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	// Age the stored challenge past the 5-minute window
	stored := userRepo.users[registered.ID]
	stored.ResetChallenge.CreatedAt = time.Now().Add(-6 * time.Minute).Unix()

	err := authService.ResetPassword(context.Background(), emailSender.SentTokens[0], &models.ResetPasswordRequest{
		Password:        "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err == nil {
		t.Fatal("Expected expired error, got nil")
	}

	var appErr *utils.AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, utils.ErrExpiredToken) {
		t.Errorf("Expected expired token error, got %v", err)
	}
}

func TestResetPassword_SupersededToken(t *testing.T) {
	authService, _, emailSender, _ := setupAuthServiceTest()

	registerTestUser(t, authService, "test@example.com", "oldpassword")

	// Two forgot-password requests; only the newest token stays redeemable
	if err := authService.ForgotPassword(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if err := authService.ForgotPassword(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	firstToken := emailSender.SentTokens[0]
	err := authService.ResetPassword(context.Background(), firstToken, &models.ResetPasswordRequest{
		Password:        "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err == nil {
		t.Fatal("Expected superseded token to fail, got nil")
	}

	var appErr *utils.AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, utils.ErrInvalidToken) {
		t.Errorf("Expected invalid token error for superseded token, got %v", err)
	}

	// The newest token still works
	secondToken := emailSender.SentTokens[1]
	if err := authService.ResetPassword(context.Background(), secondToken, &models.ResetPasswordRequest{
		Password:        "newpassword",
		ConfirmPassword: "newpassword",
	}); err != nil {
		t.Errorf("Expected newest token to succeed, got %v", err)
	}
}

func TestResetPassword_SessionTokenRejected(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	registerTestUser(t, authService, "test@example.com", "password123")

	_, sessionToken, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}

	// A session token signed with the same key must not pass as a reset token
	err = authService.ResetPassword(context.Background(), sessionToken, &models.ResetPasswordRequest{
		Password:        "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err == nil {
		t.Fatal("Expected session token to be rejected, got nil")
	}
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	authService, _, _, jwtService := setupAuthServiceTest()

	// A validly signed token whose email matches no account reads as not
	// found, same as forgot-password
	token, err := jwtService.GenerateResetToken("nobody@example.com", "some-secret")
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}

	err = authService.ResetPassword(context.Background(), token, &models.ResetPasswordRequest{
		Password: "newpassword",
	})
	if err == nil {
		t.Fatal("Expected error for unknown email, got nil")
	}
	if !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestResetPassword_TokenCheckedBeforePayload(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	// A bad token with a bad payload answers as a token failure
	err := authService.ResetPassword(context.Background(), "not-a-token", &models.ResetPasswordRequest{
		Password: "abc",
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, utils.ErrInvalidToken) {
		t.Errorf("Expected invalid token error, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "oldpassword")

	err := authService.ChangePassword(context.Background(), registered.ID, &models.ChangePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, _, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "newpassword",
	}); err != nil {
		t.Errorf("Expected new password to work, got %v", err)
	}
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	authService, _, _, _ := setupAuthServiceTest()

	registered := registerTestUser(t, authService, "test@example.com", "oldpassword")

	err := authService.ChangePassword(context.Background(), registered.ID, &models.ChangePasswordRequest{
		CurrentPassword: "wrongpassword",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	})
	if err == nil {
		t.Fatal("Expected error for wrong current password, got nil")
	}

	var appErr *utils.AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, utils.ErrInvalidCredentials) {
		t.Errorf("Expected invalid credentials error, got %v", err)
	}

	// Password is unchanged
	if _, _, err := authService.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "oldpassword",
	}); err != nil {
		t.Errorf("Expected old password to still work, got %v", err)
	}
}
