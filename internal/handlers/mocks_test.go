package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// In-memory repositories backing the handler tests. They implement the same
// interfaces the SQL repositories do, with just enough behavior for the
// routes under test.

type stubUserRepo struct {
	users  map[int64]*models.User
	byMail map[string]*models.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:  make(map[int64]*models.User),
		byMail: make(map[string]*models.User),
		nextID: 1,
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.byMail[user.Email]; ok {
		return utils.NewDuplicateError("User", "email", user.Email)
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	r.byMail[user.Email] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.byMail[email]
	if !ok {
		return nil, utils.NewNotFoundError("User", email)
	}
	copied := *user
	return &copied, nil
}

func (r *stubUserRepo) ChangePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) SetResetChallenge(_ context.Context, id int64, challenge *models.ResetChallenge) error {
	user, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.ResetChallenge = challenge
	return nil
}

func (r *stubUserRepo) ResetPassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	user.ResetChallenge = nil
	return nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	user, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.Status = status
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role string) error {
	user, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.Role = role
	return nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byMail[email]
	return ok, nil
}

func (r *stubUserRepo) ListByStatus(_ context.Context, status string, _ *utils.PaginationParams) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		if user.Status == status {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

type stubCompanyRepo struct {
	companies map[int64]*models.Company
	nextID    int64
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{
		companies: make(map[int64]*models.Company),
		nextID:    1,
	}
}

func (r *stubCompanyRepo) Create(_ context.Context, company *models.Company) error {
	company.ID = r.nextID
	r.nextID++
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	r.companies[company.ID] = company
	return nil
}

func (r *stubCompanyRepo) GetByID(_ context.Context, id int64) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok || company.Status == constants.StatusDelete {
		return nil, utils.NewNotFoundError("Company", id)
	}
	copied := *company
	return &copied, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, company *models.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return utils.NewNotFoundError("Company", company.ID)
	}
	r.companies[company.ID] = company
	return nil
}

func (r *stubCompanyRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	company, ok := r.companies[id]
	if !ok {
		return utils.NewNotFoundError("Company", id)
	}
	company.Status = status
	return nil
}

func (r *stubCompanyRepo) List(_ context.Context, _ *utils.PaginationParams) ([]*models.Company, error) {
	var out []*models.Company
	for _, company := range r.companies {
		if company.Status == constants.StatusActive {
			copied := *company
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) ListByOwner(_ context.Context, ownerID int64) ([]*models.Company, error) {
	var out []*models.Company
	for _, company := range r.companies {
		if company.OwnerID == ownerID && company.Status == constants.StatusActive {
			copied := *company
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) SearchByName(_ context.Context, keyword string, _ *utils.PaginationParams) ([]*models.Company, error) {
	var out []*models.Company
	for _, company := range r.companies {
		if company.Status == constants.StatusActive &&
			strings.Contains(strings.ToLower(company.Name), strings.ToLower(keyword)) {
			copied := *company
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) SearchByTag(_ context.Context, keyword string, _ *utils.PaginationParams) ([]*models.Company, error) {
	var out []*models.Company
	for _, company := range r.companies {
		if company.Status != constants.StatusActive {
			continue
		}
		for _, tag := range company.Tags {
			if strings.HasPrefix(strings.ToLower(tag), strings.ToLower(keyword)) {
				copied := *company
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) SuggestNames(_ context.Context, keyword string, limit int) ([]string, error) {
	var out []string
	for _, company := range r.companies {
		if len(out) == limit {
			break
		}
		if company.Status == constants.StatusActive &&
			strings.HasPrefix(strings.ToLower(company.Name), strings.ToLower(keyword)) {
			out = append(out, company.Name)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) SuggestTags(_ context.Context, keyword string, limit int) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, company := range r.companies {
		for _, tag := range company.Tags {
			if len(out) == limit {
				return out, nil
			}
			if strings.HasPrefix(strings.ToLower(tag), strings.ToLower(keyword)) && !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

type stubReviewRepo struct {
	reviews map[int64]*models.Review
	nextID  int64
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{
		reviews: make(map[int64]*models.Review),
		nextID:  1,
	}
}

func (r *stubReviewRepo) Create(_ context.Context, review *models.Review) error {
	review.ID = r.nextID
	r.nextID++
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	r.reviews[review.ID] = review
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id int64) (*models.Review, error) {
	review, ok := r.reviews[id]
	if !ok || review.Status == constants.StatusDelete {
		return nil, utils.NewNotFoundError("Review", id)
	}
	copied := *review
	return &copied, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *models.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return utils.NewNotFoundError("Review", review.ID)
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *stubReviewRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	review, ok := r.reviews[id]
	if !ok {
		return utils.NewNotFoundError("Review", id)
	}
	review.Status = status
	return nil
}

func (r *stubReviewRepo) ListByCompany(_ context.Context, companyID int64, _ *utils.PaginationParams) ([]*models.Review, error) {
	var out []*models.Review
	for _, review := range r.reviews {
		if review.CompanyID == companyID && review.Status == constants.StatusActive {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByUser(_ context.Context, userID int64, _ *utils.PaginationParams) ([]*models.Review, error) {
	var out []*models.Review
	for _, review := range r.reviews {
		if review.UserID == userID && review.Status != constants.StatusDelete {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) SetResponse(_ context.Context, id int64, details string) error {
	review, ok := r.reviews[id]
	if !ok {
		return utils.NewNotFoundError("Review", id)
	}
	review.Response = &models.ReviewResponse{Details: details, CreatedAt: time.Now()}
	return nil
}

func (r *stubReviewRepo) ClearResponse(_ context.Context, id int64) error {
	review, ok := r.reviews[id]
	if !ok {
		return utils.NewNotFoundError("Review", id)
	}
	review.Response = nil
	return nil
}

// stubEmailSender records reset mails instead of sending them.
type stubEmailSender struct {
	sentTo     []string
	sentTokens []string
}

func (s *stubEmailSender) SendPasswordResetEmail(toEmail, _ string, token string) error {
	s.sentTo = append(s.sentTo, toEmail)
	s.sentTokens = append(s.sentTokens, token)
	return nil
}
