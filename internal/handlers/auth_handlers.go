package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// AuthHandler handles the credential lifecycle routes.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{authService: authService}
}

// Register handles account registration. On success the session token is
// emitted in the x-auth-token response header alongside the sanitized
// account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, token, err := h.authService.RegisterUser(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	w.Header().Set(constants.HeaderAuthToken, token)
	utils.JSON(w, constants.StatusCreated, user)
}

// SignIn handles account authentication. The session token travels in the
// x-auth-token response header, never in the body.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, token, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	w.Header().Set(constants.HeaderAuthToken, token)
	utils.JSON(w, constants.StatusOK, user)
}

// ForgotPassword starts a password reset: a fresh challenge is stored and a
// reset link is mailed to the account's address.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": constants.MsgResetMailSent,
	})
}

// ResetPassword completes a password reset. The reset token arrives as a URL
// parameter from the mailed link. The body is only decoded here; the service
// checks the token before validating the new password, so a bad token answers
// as a token error even when the payload is also bad.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		utils.ErrorFromAppError(w, utils.NewInvalidTokenError())
		return
	}

	var req models.ResetPasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), token, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": constants.MsgPasswordChanged,
	})
}

// ChangePassword rotates the signed-in account's password after verifying
// the current one.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var req models.ChangePasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": constants.MsgPasswordChanged,
	})
}
