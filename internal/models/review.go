package models

import (
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// ReviewResponse is the company owner's single reply attached to a review.
type ReviewResponse struct {
	Details   string    `json:"details" db:"response_details"`
	CreatedAt time.Time `json:"created_at" db:"response_created_at"`
}

// Review represents a user's rating of a company. A review may carry at most
// one owner response.
type Review struct {
	ID        int64           `json:"id" db:"review_id"`
	UserID    int64           `json:"user_id" db:"user_id"`
	CompanyID int64           `json:"company_id" db:"company_id"`
	Star      int             `json:"star" db:"star" validate:"required,min=1,max=5"`
	Title     string          `json:"title" db:"title" validate:"required,min=3,max=30"`
	Details   string          `json:"details" db:"details" validate:"required,min=3,max=1024"`
	Status    string          `json:"status" db:"status"`
	Response  *ReviewResponse `json:"response,omitempty" db:"-"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// NewReview creates a new Review by the given user for the given company.
func NewReview(userID, companyID int64) *Review {
	now := time.Now()
	return &Review{
		UserID:    userID,
		CompanyID: companyID,
		Status:    constants.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the Review model.
func (r *Review) TableName() string {
	return "reviews"
}

// IsDeleted reports whether the review has been soft-deleted.
func (r *Review) IsDeleted() bool {
	return r.Status == constants.StatusDelete
}

// IsAuthoredBy reports whether the given user wrote this review.
func (r *Review) IsAuthoredBy(userID int64) bool {
	return r.UserID == userID
}

// ReviewCreate represents the payload for posting a review.
type ReviewCreate struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	Star      int    `json:"star" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"required,min=3,max=30"`
	Details   string `json:"details" validate:"required,min=3,max=1024"`
}

// ReviewUpdate represents the fields an author may change on their review.
type ReviewUpdate struct {
	ReviewID int64  `json:"review_id" validate:"required"`
	Star     int    `json:"star" validate:"omitempty,min=1,max=5"`
	Title    string `json:"title" validate:"omitempty,min=3,max=30"`
	Details  string `json:"details" validate:"omitempty,min=3,max=1024"`
}

// ResponseRequest represents a company owner's reply to a review, and also
// identifies the review whose response to remove on delete.
type ResponseRequest struct {
	ReviewID int64  `json:"review_id" validate:"required"`
	Details  string `json:"details" validate:"omitempty,min=3,max=1024"`
}
