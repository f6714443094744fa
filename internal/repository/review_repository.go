package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/database"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// ReviewRepository defines methods for interacting with review data
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByCompany(ctx context.Context, companyID int64, page *utils.PaginationParams) ([]*models.Review, error)
	ListByUser(ctx context.Context, userID int64, page *utils.PaginationParams) ([]*models.Review, error)
	SetResponse(ctx context.Context, id int64, details string) error
	ClearResponse(ctx context.Context, id int64) error
}

// PostgresReviewRepository is a PostgreSQL implementation of ReviewRepository
type PostgresReviewRepository struct {
	db *database.Pool
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *database.Pool) ReviewRepository {
	return &PostgresReviewRepository{
		db: db,
	}
}

const reviewColumns = `review_id, user_id, company_id, star, title, details, status, response_details, response_created_at, created_at, updated_at`

// scanReview reads a review row, folding the nullable response columns into
// an embedded ReviewResponse when the owner has replied.
func scanReview(scan func(dest ...interface{}) error) (*models.Review, error) {
	review := &models.Review{}
	var responseDetails sql.NullString
	var responseCreatedAt sql.NullTime

	err := scan(
		&review.ID,
		&review.UserID,
		&review.CompanyID,
		&review.Star,
		&review.Title,
		&review.Details,
		&review.Status,
		&responseDetails,
		&responseCreatedAt,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if responseDetails.Valid && responseDetails.String != "" {
		review.Response = &models.ReviewResponse{
			Details:   responseDetails.String,
			CreatedAt: responseCreatedAt.Time,
		}
	}

	return review, nil
}

// scanReviewRows collects review rows from a multi-row result set
func scanReviewRows(rows *sql.Rows) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0)

	for rows.Next() {
		review, err := scanReview(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// Create adds a new review to the database
func (r *PostgresReviewRepository) Create(ctx context.Context, review *models.Review) error {
	startTime := time.Now()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	query := `
        INSERT INTO reviews (user_id, company_id, star, title, details, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING review_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		review.UserID,
		review.CompanyID,
		review.Star,
		review.Title,
		review.Details,
		review.Status,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{review.UserID, review.CompanyID, review.Star, review.Title, review.Details, review.Status, review.CreatedAt, review.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == constants.PGErrorForeignKeyConstraint {
				return utils.NewNotFoundError("Company", review.CompanyID)
			}
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	log.Info().
		Int64("review_id", review.ID).
		Int64("user_id", review.UserID).
		Int64("company_id", review.CompanyID).
		Int("star", review.Star).
		Msg("Review created")

	return nil
}

// GetByID retrieves a review by ID. Soft-deleted reviews are treated as
// absent.
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	startTime := time.Now()

	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE review_id = $1 AND status != $2
    `

	review, err := scanReview(r.db.QueryRowContext(ctx, query, id, constants.StatusDelete).Scan)

	utils.LogDBQuery(
		query,
		[]interface{}{id, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Review", id)
		}
		return nil, fmt.Errorf("failed to get review by ID: %w", err)
	}

	return review, nil
}

// Update modifies a review's rating and text
func (r *PostgresReviewRepository) Update(ctx context.Context, review *models.Review) error {
	startTime := time.Now()

	review.UpdatedAt = time.Now()

	query := `
        UPDATE reviews
        SET star = $1, title = $2, details = $3, updated_at = $4
        WHERE review_id = $5 AND status != $6
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		review.Star,
		review.Title,
		review.Details,
		review.UpdatedAt,
		review.ID,
		constants.StatusDelete,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{review.Star, review.Title, review.Details, review.UpdatedAt, review.ID, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Review", review.ID)
	}

	log.Info().
		Int64("review_id", review.ID).
		Msg("Review updated")

	return nil
}

// UpdateStatus changes a review's status. Deletion is a status write; rows
// are never physically removed.
func (r *PostgresReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	startTime := time.Now()

	query := `
        UPDATE reviews
        SET status = $1, updated_at = $2
        WHERE review_id = $3 AND status != $4
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, status, now, id, constants.StatusDelete)

	utils.LogDBQuery(
		query,
		[]interface{}{status, now, id, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Review", id)
	}

	log.Info().
		Int64("review_id", id).
		Str("status", status).
		Msg("Review status updated")

	return nil
}

// ListByCompany retrieves a page of active reviews for a company, newest
// first
func (r *PostgresReviewRepository) ListByCompany(ctx context.Context, companyID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	startTime := time.Now()

	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE company_id = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `

	rows, err := r.db.QueryContext(ctx, query, companyID, constants.StatusActive, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{companyID, constants.StatusActive, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by company: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows)
}

// ListByUser retrieves a page of active reviews written by a user, newest
// first
func (r *PostgresReviewRepository) ListByUser(ctx context.Context, userID int64, page *utils.PaginationParams) ([]*models.Review, error) {
	startTime := time.Now()

	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE user_id = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `

	rows, err := r.db.QueryContext(ctx, query, userID, constants.StatusActive, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{userID, constants.StatusActive, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows)
}

// SetResponse attaches or replaces the owner's reply on a review
func (r *PostgresReviewRepository) SetResponse(ctx context.Context, id int64, details string) error {
	startTime := time.Now()

	query := `
        UPDATE reviews
        SET response_details = $1, response_created_at = $2, updated_at = $2
        WHERE review_id = $3 AND status != $4
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, details, now, id, constants.StatusDelete)

	utils.LogDBQuery(
		query,
		[]interface{}{details, now, id, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to set review response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Review", id)
	}

	log.Info().
		Int64("review_id", id).
		Msg("Review response set")

	return nil
}

// ClearResponse removes the owner's reply from a review
func (r *PostgresReviewRepository) ClearResponse(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        UPDATE reviews
        SET response_details = NULL, response_created_at = NULL, updated_at = $1
        WHERE review_id = $2 AND status != $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, id, constants.StatusDelete)

	utils.LogDBQuery(
		query,
		[]interface{}{now, id, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to clear review response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Review", id)
	}

	log.Info().
		Int64("review_id", id).
		Msg("Review response cleared")

	return nil
}
