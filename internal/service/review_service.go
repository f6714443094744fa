package service

import (
	"context"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// ReviewService handles review and owner-response operations
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	companyRepo repository.CompanyRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository, companyRepo repository.CompanyRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
	}
}

// CreateReview posts a review of a company by the caller. The company must
// exist and not be deleted.
func (s *ReviewService) CreateReview(ctx context.Context, userID int64, req *models.ReviewCreate) (*models.Review, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	review := models.NewReview(userID, req.CompanyID)
	review.Star = req.Star
	review.Title = req.Title
	review.Details = req.Details

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// ListReviewsByCompany retrieves a page of active reviews for a company
func (s *ReviewService) ListReviewsByCompany(ctx context.Context, companyID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	return s.reviewRepo.ListByCompany(ctx, companyID, page)
}

// ListReviewsByUser retrieves a page of active reviews written by a user
func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID, page)
}

// UpdateReview modifies a review. Only the author may update it.
func (s *ReviewService) UpdateReview(ctx context.Context, callerID int64, req *models.ReviewUpdate) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, req.ReviewID)
	if err != nil {
		return nil, err
	}

	if !review.IsAuthoredBy(callerID) {
		return nil, utils.NewForbiddenError(constants.MsgAccessDenied)
	}

	if req.Star != 0 {
		review.Star = req.Star
	}
	if req.Title != "" {
		review.Title = req.Title
	}
	if req.Details != "" {
		review.Details = req.Details
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview soft-deletes a review. The author or an admin may delete it.
func (s *ReviewService) DeleteReview(ctx context.Context, id, callerID int64, callerRole string) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !review.IsAuthoredBy(callerID) && callerRole != constants.RoleAdmin {
		return utils.NewForbiddenError(constants.MsgAccessDenied)
	}

	return s.reviewRepo.UpdateStatus(ctx, id, constants.StatusDelete)
}

// RespondToReview attaches or replaces the owner's reply on a review. Only
// the owner of the reviewed company may respond.
func (s *ReviewService) RespondToReview(ctx context.Context, callerID int64, req *models.ResponseRequest) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, req.ReviewID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, review.CompanyID)
	if err != nil {
		return nil, err
	}

	if !company.IsOwnedBy(callerID) {
		return nil, utils.NewForbiddenError(constants.MsgNotCompanyOwner)
	}

	if err := s.reviewRepo.SetResponse(ctx, review.ID, req.Details); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByID(ctx, review.ID)
}

// DeleteResponse removes the owner's reply from a review. Only the owner of
// the reviewed company may remove it.
func (s *ReviewService) DeleteResponse(ctx context.Context, callerID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	company, err := s.companyRepo.GetByID(ctx, review.CompanyID)
	if err != nil {
		return err
	}

	if !company.IsOwnedBy(callerID) {
		return utils.NewForbiddenError(constants.MsgNotCompanyOwner)
	}

	return s.reviewRepo.ClearResponse(ctx, reviewID)
}
