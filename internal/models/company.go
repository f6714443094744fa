package models

import (
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
)

// CompanyContact holds the public contact details of a company profile.
type CompanyContact struct {
	Mobile  string `json:"mobile" db:"contact_mobile" validate:"omitempty,max=20"`
	Address string `json:"address" db:"contact_address" validate:"omitempty,max=255"`
	Website string `json:"website" db:"contact_website" validate:"omitempty,url,max=255"`
}

// Company represents a business profile listed on the platform. Each company
// has exactly one owner; a user may own multiple companies.
type Company struct {
	ID        int64          `json:"id" db:"company_id"`
	Name      string         `json:"name" db:"name" validate:"required,min=3,max=255"`
	Image     string         `json:"image" db:"image"`
	Contact   CompanyContact `json:"contact" db:"-"`
	Details   string         `json:"details" db:"details"`
	Tags      []string       `json:"tags" db:"tags"`
	Status    string         `json:"status" db:"status"`
	OwnerID   int64          `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// NewCompany creates a new Company owned by the given user. Listings start
// active.
func NewCompany(name string, ownerID int64) *Company {
	now := time.Now()
	return &Company{
		Name:      name,
		OwnerID:   ownerID,
		Status:    constants.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the Company model.
func (c *Company) TableName() string {
	return "companies"
}

// IsDeleted reports whether the listing has been soft-deleted.
func (c *Company) IsDeleted() bool {
	return c.Status == constants.StatusDelete
}

// IsOwnedBy reports whether the given user owns this company.
func (c *Company) IsOwnedBy(userID int64) bool {
	return c.OwnerID == userID
}

// CompanyCreate represents the payload for registering a company listing.
type CompanyCreate struct {
	Name    string         `json:"name" validate:"required,min=3,max=255"`
	Image   string         `json:"image" validate:"omitempty,max=255"`
	Contact CompanyContact `json:"contact"`
	Details string         `json:"details" validate:"omitempty,max=2048"`
	Tags    []string       `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// CompanyUpdate represents the fields an owner may change on a listing.
type CompanyUpdate struct {
	Name    string         `json:"name" validate:"omitempty,min=3,max=255"`
	Image   string         `json:"image" validate:"omitempty,max=255"`
	Contact CompanyContact `json:"contact"`
	Details string         `json:"details" validate:"omitempty,max=2048"`
	Tags    []string       `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}
