package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// CompanyService handles company listing operations
type CompanyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// CreateCompany registers a new listing owned by the caller. Registering a
// first company promotes the owner from the base role to company owner.
func (s *CompanyService) CreateCompany(ctx context.Context, ownerID int64, req *models.CompanyCreate) (*models.Company, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	company := models.NewCompany(req.Name, ownerID)
	company.Image = req.Image
	company.Contact = req.Contact
	company.Details = req.Details
	company.Tags = req.Tags

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	if owner.Role == constants.RoleUser {
		if err := s.userRepo.UpdateRole(ctx, ownerID, constants.RoleCompanyOwner); err != nil {
			return nil, fmt.Errorf("failed to promote owner role: %w", err)
		}
		log.Info().
			Int64("user_id", ownerID).
			Msg("User promoted to company owner")
	}

	return company, nil
}

// GetCompany retrieves a listing by ID
func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// ListCompanies retrieves a page of active listings
func (s *CompanyService) ListCompanies(ctx context.Context, page *utils.PaginationParams) ([]*models.Company, error) {
	return s.companyRepo.List(ctx, page)
}

// ListOwnedCompanies retrieves the caller's active listings. Admins see every
// active listing instead.
func (s *CompanyService) ListOwnedCompanies(ctx context.Context, callerID int64, callerRole string, page *utils.PaginationParams) ([]*models.Company, error) {
	if callerRole == constants.RoleAdmin {
		return s.companyRepo.List(ctx, page)
	}
	return s.companyRepo.ListByOwner(ctx, callerID)
}

// GetOwnedCompany retrieves a listing by ID, restricted to its owner. Admins
// may fetch any listing.
func (s *CompanyService) GetOwnedCompany(ctx context.Context, id, callerID int64, callerRole string) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !company.IsOwnedBy(callerID) && callerRole != constants.RoleAdmin {
		return nil, utils.NewForbiddenError(constants.MsgNotCompanyOwner)
	}

	return company, nil
}

// UpdateCompany modifies a listing. The owner may update it; admins may
// update any listing.
func (s *CompanyService) UpdateCompany(ctx context.Context, id, callerID int64, callerRole string, req *models.CompanyUpdate) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !company.IsOwnedBy(callerID) && callerRole != constants.RoleAdmin {
		return nil, utils.NewForbiddenError(constants.MsgNotCompanyOwner)
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Image != "" {
		company.Image = req.Image
	}
	if req.Details != "" {
		company.Details = req.Details
	}
	if req.Tags != nil {
		company.Tags = req.Tags
	}
	if req.Contact.Mobile != "" {
		company.Contact.Mobile = req.Contact.Mobile
	}
	if req.Contact.Address != "" {
		company.Contact.Address = req.Contact.Address
	}
	if req.Contact.Website != "" {
		company.Contact.Website = req.Contact.Website
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany soft-deletes a listing. The owner or an admin may delete it.
func (s *CompanyService) DeleteCompany(ctx context.Context, id, callerID int64, callerRole string) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !company.IsOwnedBy(callerID) && callerRole != constants.RoleAdmin {
		return utils.NewForbiddenError(constants.MsgNotCompanyOwner)
	}

	return s.companyRepo.UpdateStatus(ctx, id, constants.StatusDelete)
}

// SuspendCompany suspends a listing. Admin only; enforced at the route level
// and re-checked here.
func (s *CompanyService) SuspendCompany(ctx context.Context, id int64, callerRole string) error {
	if callerRole != constants.RoleAdmin {
		return utils.NewForbiddenError(constants.MsgAccessDenied)
	}

	return s.companyRepo.UpdateStatus(ctx, id, constants.StatusSuspend)
}

// SearchCompaniesByName retrieves active listings whose name contains the
// keyword
func (s *CompanyService) SearchCompaniesByName(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	return s.companyRepo.SearchByName(ctx, keyword, page)
}

// SearchCompaniesByTag retrieves active listings with a tag starting with the
// keyword
func (s *CompanyService) SearchCompaniesByTag(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	return s.companyRepo.SearchByTag(ctx, keyword, page)
}

// SuggestCompanyNames retrieves company name completions for a keyword prefix
func (s *CompanyService) SuggestCompanyNames(ctx context.Context, keyword string) ([]string, error) {
	return s.companyRepo.SuggestNames(ctx, keyword, constants.DefaultPageSize)
}

// SuggestTags retrieves tag completions for a keyword prefix
func (s *CompanyService) SuggestTags(ctx context.Context, keyword string) ([]string, error) {
	return s.companyRepo.SuggestTags(ctx, keyword, constants.DefaultPageSize)
}
