package handlers

import (
	"net/http"
	"strconv"

	"github.com/reviewzone/ReviewZone_Backend/internal/auth"
	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/service"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// ReviewHandler handles review and owner-response routes.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{reviewService: reviewService}
}

// Create posts a review against an existing company.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var req models.ReviewCreate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, review)
}

// List returns reviews for a company given ?company=, or the caller's own
// reviews when the parameter is absent.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.GetUserID(r)
	page := utils.GetPaginationParams(r)

	var (
		reviews []*models.Review
		err     error
	)
	if raw := r.URL.Query().Get("company"); raw != "" {
		companyID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || companyID <= 0 {
			utils.ErrorFromAppError(w, utils.NewValidationError("company", "must be a positive integer"))
			return
		}
		reviews, err = h.reviewService.ListReviewsByCompany(r.Context(), companyID, &page)
	} else {
		reviews, err = h.reviewService.ListReviewsByUser(r.Context(), userID, &page)
	}
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, reviews, page)
}

// Update modifies one of the caller's reviews.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	userID, _ := auth.GetUserID(r)

	var req models.ReviewUpdate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}
	// The path parameter wins over whatever the body carries
	req.ReviewID = id

	review, err := h.reviewService.UpdateReview(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, review)
}

// Delete soft-deletes a review. The author or an admin may delete it.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	userID, _ := auth.GetUserID(r)
	role, _ := auth.GetUserRole(r)

	if err := h.reviewService.DeleteReview(r.Context(), id, userID, role); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "Review deleted",
	})
}

// Respond attaches or replaces the owner response on a review. Only the
// owner of the reviewed company may respond.
func (h *ReviewHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var req models.ResponseRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	review, err := h.reviewService.RespondToReview(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, review)
}

// DeleteResponse removes the owner response from a review.
func (h *ReviewHandler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var req models.ResponseRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.reviewService.DeleteResponse(r.Context(), userID, req.ReviewID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "Response deleted",
	})
}
