package handlers

import (
	"net/http"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// UserHandler handles admin account moderation routes. Role enforcement
// happens in the routing layer; these handlers assume an admin caller.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

// ListActive returns a page of active accounts, sanitized.
func (h *UserHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	page := utils.GetPaginationParams(r)

	users, err := h.userService.ListActiveUsers(r.Context(), &page)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, users, page)
}

// ListSuspended returns a page of suspended accounts, sanitized.
func (h *UserHandler) ListSuspended(w http.ResponseWriter, r *http.Request) {
	page := utils.GetPaginationParams(r)

	users, err := h.userService.ListSuspendedUsers(r.Context(), &page)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, users, page)
}

// Suspend marks an account as suspended.
func (h *UserHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.userService.SuspendUser(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "User suspended",
	})
}

// Activate marks an account as active.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.userService.ActivateUser(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "User activated",
	})
}
