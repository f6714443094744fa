package service

import (
	"context"
	"testing"

	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// setupReviewServiceTest wires a ReviewService onto in-memory mocks with one
// company owned by user 1
func setupReviewServiceTest(t *testing.T) (*ReviewService, *models.Company) {
	t.Helper()

	companyRepo := NewMockCompanyRepository()
	reviewRepo := NewMockReviewRepository()

	company := models.NewCompany("Acme AS", 1)
	if err := companyRepo.Create(context.Background(), company); err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}

	return NewReviewService(reviewRepo, companyRepo), company
}

func TestCreateReview(t *testing.T) {
	reviewService, company := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(context.Background(), 2, &models.ReviewCreate{
		CompanyID: company.ID,
		Star:      4,
		Title:     "Solid work",
		Details:   "Fixed the leak quickly and cleaned up after.",
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	if review.ID == 0 {
		t.Error("Expected review ID to be assigned")
	}
	if review.UserID != 2 {
		t.Errorf("Expected user ID 2, got %d", review.UserID)
	}
	if review.Status != "active" {
		t.Errorf("Expected status 'active', got %q", review.Status)
	}
}

func TestCreateReview_UnknownCompany(t *testing.T) {
	reviewService, _ := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(context.Background(), 2, &models.ReviewCreate{
		CompanyID: 999,
		Star:      4,
		Title:     "Solid work",
		Details:   "Review of a company that does not exist.",
	})

	if !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestUpdateReview_AuthorOnly(t *testing.T) {
	reviewService, company := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(context.Background(), 2, &models.ReviewCreate{
		CompanyID: company.ID,
		Star:      4,
		Title:     "Solid work",
		Details:   "Fixed the leak quickly.",
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	updated, err := reviewService.UpdateReview(context.Background(), 2, &models.ReviewUpdate{
		ReviewID: review.ID,
		Star:     5,
	})
	if err != nil {
		t.Fatalf("UpdateReview() error = %v", err)
	}
	if updated.Star != 5 {
		t.Errorf("Expected star 5, got %d", updated.Star)
	}
	// Unchanged fields are kept
	if updated.Title != "Solid work" {
		t.Errorf("Expected title to be kept, got %q", updated.Title)
	}

	// A different user cannot update
	_, err = reviewService.UpdateReview(context.Background(), 3, &models.ReviewUpdate{
		ReviewID: review.ID,
		Star:     1,
	})
	if utils.StatusCode(err) != 403 {
		t.Errorf("Expected 403 for non-author update, got %v", err)
	}
}

func TestDeleteReview_AuthorOrAdmin(t *testing.T) {
	reviewService, company := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(context.Background(), 2, &models.ReviewCreate{
		CompanyID: company.ID,
		Star:      4,
		Title:     "Solid work",
		Details:   "Fixed the leak quickly.",
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	if err := reviewService.DeleteReview(context.Background(), review.ID, 3, "user"); err == nil {
		t.Error("Expected error for stranger delete, got nil")
	}

	if err := reviewService.DeleteReview(context.Background(), review.ID, 3, "admin"); err != nil {
		t.Fatalf("DeleteReview() as admin error = %v", err)
	}

	if _, err := reviewService.GetReview(context.Background(), review.ID); !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found after delete, got %v", err)
	}
}

func TestRespondToReview(t *testing.T) {
	reviewService, company := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(context.Background(), 2, &models.ReviewCreate{
		CompanyID: company.ID,
		Star:      4,
		Title:     "Solid work",
		Details:   "Fixed the leak quickly.",
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	// Only the company owner (user 1) may respond
	_, err = reviewService.RespondToReview(context.Background(), 2, &models.ResponseRequest{
		ReviewID: review.ID,
		Details:  "Thanks!",
	})
	if utils.StatusCode(err) != 403 {
		t.Errorf("Expected 403 for non-owner response, got %v", err)
	}

	responded, err := reviewService.RespondToReview(context.Background(), 1, &models.ResponseRequest{
		ReviewID: review.ID,
		Details:  "Thanks for the kind words!",
	})
	if err != nil {
		t.Fatalf("RespondToReview() error = %v", err)
	}
	if responded.Response == nil || responded.Response.Details != "Thanks for the kind words!" {
		t.Error("Expected response to be attached")
	}

	// The owner can also remove the response
	if err := reviewService.DeleteResponse(context.Background(), 1, review.ID); err != nil {
		t.Fatalf("DeleteResponse() error = %v", err)
	}
	cleared, err := reviewService.GetReview(context.Background(), review.ID)
	if err != nil {
		t.Fatalf("GetReview() error = %v", err)
	}
	if cleared.Response != nil {
		t.Error("Expected response to be cleared")
	}
}
