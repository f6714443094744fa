package service

import (
	"context"
	"fmt"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// In-memory mock implementations for testing

type MockUserRepository struct {
	users        map[int64]*models.User
	usersByEmail map[string]*models.User
	nextID       int64
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:        make(map[int64]*models.User),
		usersByEmail: make(map[string]*models.User),
		nextID:       1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.usersByEmail[user.Email]; ok {
		return utils.NewDuplicateError("User", "email", user.Email)
	}

	user.ID = m.nextID
	m.nextID++

	m.users[user.ID] = user
	m.usersByEmail[user.Email] = user

	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *MockUserRepository) SetResetChallenge(ctx context.Context, id int64, challenge *models.ResetChallenge) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.ResetChallenge = challenge
	return nil
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, id int64, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	user.ResetChallenge = nil
	return nil
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.Status = status
	return nil
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.Role = role
	return nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.usersByEmail[email]
	return ok, nil
}

func (m *MockUserRepository) ListByStatus(ctx context.Context, status string, page *utils.PaginationParams) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for _, user := range m.users {
		if user.Status == status {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

type MockCompanyRepository struct {
	companies map[int64]*models.Company
	nextID    int64
}

func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{
		companies: make(map[int64]*models.Company),
		nextID:    1,
	}
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	company.ID = m.nextID
	m.nextID++
	m.companies[company.ID] = company
	return nil
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company, ok := m.companies[id]
	if !ok || company.IsDeleted() {
		return nil, utils.NewNotFoundError("Company", id)
	}
	copied := *company
	return &copied, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	existing, ok := m.companies[company.ID]
	if !ok || existing.IsDeleted() {
		return utils.NewNotFoundError("Company", company.ID)
	}
	m.companies[company.ID] = company
	return nil
}

func (m *MockCompanyRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	company, ok := m.companies[id]
	if !ok || company.IsDeleted() {
		return utils.NewNotFoundError("Company", id)
	}
	company.Status = status
	return nil
}

func (m *MockCompanyRepository) List(ctx context.Context, page *utils.PaginationParams) ([]*models.Company, error) {
	companies := make([]*models.Company, 0)
	for _, company := range m.companies {
		if company.Status == constants.StatusActive {
			companies = append(companies, company)
		}
	}
	return companies, nil
}

func (m *MockCompanyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Company, error) {
	companies := make([]*models.Company, 0)
	for _, company := range m.companies {
		if company.OwnerID == ownerID && !company.IsDeleted() {
			companies = append(companies, company)
		}
	}
	return companies, nil
}

func (m *MockCompanyRepository) SearchByName(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	return m.List(ctx, page)
}

func (m *MockCompanyRepository) SearchByTag(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	return m.List(ctx, page)
}

func (m *MockCompanyRepository) SuggestNames(ctx context.Context, keyword string, limit int) ([]string, error) {
	names := make([]string, 0)
	for _, company := range m.companies {
		if company.Status == constants.StatusActive {
			names = append(names, company.Name)
		}
	}
	return names, nil
}

func (m *MockCompanyRepository) SuggestTags(ctx context.Context, keyword string, limit int) ([]string, error) {
	tags := make([]string, 0)
	for _, company := range m.companies {
		if company.Status == constants.StatusActive {
			tags = append(tags, company.Tags...)
		}
	}
	return tags, nil
}

type MockReviewRepository struct {
	reviews map[int64]*models.Review
	nextID  int64
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[int64]*models.Review),
		nextID:  1,
	}
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = m.nextID
	m.nextID++
	m.reviews[review.ID] = review
	return nil
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	review, ok := m.reviews[id]
	if !ok || review.IsDeleted() {
		return nil, utils.NewNotFoundError("Review", id)
	}
	copied := *review
	return &copied, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	existing, ok := m.reviews[review.ID]
	if !ok || existing.IsDeleted() {
		return utils.NewNotFoundError("Review", review.ID)
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *MockReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	review, ok := m.reviews[id]
	if !ok || review.IsDeleted() {
		return utils.NewNotFoundError("Review", id)
	}
	review.Status = status
	return nil
}

func (m *MockReviewRepository) ListByCompany(ctx context.Context, companyID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0)
	for _, review := range m.reviews {
		if review.CompanyID == companyID && review.Status == constants.StatusActive {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0)
	for _, review := range m.reviews {
		if review.UserID == userID && review.Status == constants.StatusActive {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *MockReviewRepository) SetResponse(ctx context.Context, id int64, details string) error {
	review, ok := m.reviews[id]
	if !ok || review.IsDeleted() {
		return utils.NewNotFoundError("Review", id)
	}
	review.Response = &models.ReviewResponse{Details: details}
	return nil
}

func (m *MockReviewRepository) ClearResponse(ctx context.Context, id int64) error {
	review, ok := m.reviews[id]
	if !ok || review.IsDeleted() {
		return utils.NewNotFoundError("Review", id)
	}
	review.Response = nil
	return nil
}

// MockEmailSender records sent reset emails instead of calling SendGrid
type MockEmailSender struct {
	SentTo     []string
	SentTokens []string
	FailNext   bool
}

func (m *MockEmailSender) SendPasswordResetEmail(toEmail, toName, token string) error {
	if m.FailNext {
		m.FailNext = false
		return fmt.Errorf("sendgrid unavailable")
	}
	m.SentTo = append(m.SentTo, toEmail)
	m.SentTokens = append(m.SentTokens, token)
	return nil
}
