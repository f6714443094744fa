package handlers

import (
	"net/http"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// CompanyHandler handles company listing routes.
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	if companyService == nil {
		panic("companyService cannot be nil")
	}
	return &CompanyHandler{companyService: companyService}
}

// Create registers a new listing owned by the caller.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var req models.CompanyCreate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, company)
}

// List returns the caller's active listings. Admins see all active listings.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.GetUserID(r)
	role, _ := auth.GetUserRole(r)
	page := utils.GetPaginationParams(r)

	companies, err := h.companyService.ListOwnedCompanies(r.Context(), userID, role, &page)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, companies, page)
}

// Get fetches one of the caller's listings by ID.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	userID, _ := auth.GetUserID(r)
	role, _ := auth.GetUserRole(r)

	company, err := h.companyService.GetOwnedCompany(r.Context(), id, userID, role)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, company)
}

// Update modifies one of the caller's listings.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	userID, _ := auth.GetUserID(r)
	role, _ := auth.GetUserRole(r)

	var req models.CompanyUpdate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	company, err := h.companyService.UpdateCompany(r.Context(), id, userID, role, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, company)
}

// Delete soft-deletes one of the caller's listings. Admins may delete any
// listing.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	userID, _ := auth.GetUserID(r)
	role, _ := auth.GetUserRole(r)

	if err := h.companyService.DeleteCompany(r.Context(), id, userID, role); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "Company deleted",
	})
}

// Suspend marks a listing as suspended. Admin only.
func (h *CompanyHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	role, _ := auth.GetUserRole(r)

	if err := h.companyService.SuspendCompany(r.Context(), id, role); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "Company suspended",
	})
}
