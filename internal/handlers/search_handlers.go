package handlers

import (
	"net/http"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// SearchHandler handles company search and typeahead suggestion routes.
type SearchHandler struct {
	companyService *service.CompanyService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(companyService *service.CompanyService) *SearchHandler {
	if companyService == nil {
		panic("companyService cannot be nil")
	}
	return &SearchHandler{companyService: companyService}
}

// SearchByName returns active companies whose name contains the keyword.
func (h *SearchHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	page := utils.GetPaginationParams(r)
	companies, err := h.companyService.SearchCompaniesByName(r.Context(), keyword, &page)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, companies, page)
}

// SearchByTag returns active companies carrying a tag that starts with the
// keyword.
func (h *SearchHandler) SearchByTag(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	page := utils.GetPaginationParams(r)
	companies, err := h.companyService.SearchCompaniesByTag(r.Context(), keyword, &page)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, companies, page)
}

// SuggestNames returns distinct company name completions for the keyword.
func (h *SearchHandler) SuggestNames(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	names, err := h.companyService.SuggestCompanyNames(r.Context(), keyword)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, names)
}

// SuggestTags returns distinct tag completions for the keyword.
func (h *SearchHandler) SuggestTags(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	tags, err := h.companyService.SuggestTags(r.Context(), keyword)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, tags)
}
