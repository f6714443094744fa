package service

import (
	"context"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// UserService handles account lookup and moderation operations
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUser retrieves an account by ID with sensitive fields stripped
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// ListActiveUsers retrieves a page of active accounts
func (s *UserService) ListActiveUsers(ctx context.Context, page *utils.PaginationParams) ([]*models.User, error) {
	return s.listByStatus(ctx, constants.StatusActive, page)
}

// ListSuspendedUsers retrieves a page of suspended accounts
func (s *UserService) ListSuspendedUsers(ctx context.Context, page *utils.PaginationParams) ([]*models.User, error) {
	return s.listByStatus(ctx, constants.StatusSuspend, page)
}

func (s *UserService) listByStatus(ctx context.Context, status string, page *utils.PaginationParams) ([]*models.User, error) {
	users, err := s.userRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitize())
	}

	return sanitized, nil
}

// SuspendUser marks an account as suspended
func (s *UserService) SuspendUser(ctx context.Context, id int64) error {
	return s.userRepo.UpdateStatus(ctx, id, constants.StatusSuspend)
}

// ActivateUser re-activates a suspended account
func (s *UserService) ActivateUser(ctx context.Context, id int64) error {
	return s.userRepo.UpdateStatus(ctx, id, constants.StatusActive)
}
