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

// CompanyRepository defines methods for interacting with company listings
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	List(ctx context.Context, page *utils.PaginationParams) ([]*models.Company, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Company, error)
	SearchByName(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error)
	SearchByTag(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error)
	SuggestNames(ctx context.Context, keyword string, limit int) ([]string, error)
	SuggestTags(ctx context.Context, keyword string, limit int) ([]string, error)
}

// PostgresCompanyRepository is a PostgreSQL implementation of CompanyRepository
type PostgresCompanyRepository struct {
	db *database.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *database.Pool) CompanyRepository {
	return &PostgresCompanyRepository{
		db: db,
	}
}

const companyColumns = `company_id, name, image, contact_mobile, contact_address, contact_website, details, tags, status, owner_id, created_at, updated_at`

// scanCompanyRows collects company rows from a multi-row result set
func scanCompanyRows(rows *sql.Rows) ([]*models.Company, error) {
	companies := make([]*models.Company, 0)

	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Image,
			&company.Contact.Mobile,
			&company.Contact.Address,
			&company.Contact.Website,
			&company.Details,
			pq.Array(&company.Tags),
			&company.Status,
			&company.OwnerID,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// Create adds a new company listing to the database
func (r *PostgresCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	startTime := time.Now()

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	query := `
        INSERT INTO companies (name, image, contact_mobile, contact_address, contact_website, details, tags, status, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING company_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		company.Name,
		company.Image,
		company.Contact.Mobile,
		company.Contact.Address,
		company.Contact.Website,
		company.Details,
		pq.Array(company.Tags),
		company.Status,
		company.OwnerID,
		company.CreatedAt,
		company.UpdatedAt,
	).Scan(&company.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{company.Name, company.Image, company.Contact.Mobile, company.Contact.Address, company.Contact.Website, company.Details, company.Tags, company.Status, company.OwnerID, company.CreatedAt, company.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == constants.PGErrorDuplicateConstraint {
				return utils.NewDuplicateError("Company", "name", company.Name)
			}
			if pqErr.Code == constants.PGErrorForeignKeyConstraint {
				return utils.NewNotFoundError("User", company.OwnerID)
			}
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	log.Info().
		Int64("company_id", company.ID).
		Str("name", company.Name).
		Int64("owner_id", company.OwnerID).
		Msg("Company created")

	return nil
}

// GetByID retrieves a company by ID. Soft-deleted listings are treated as
// absent.
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	startTime := time.Now()

	query := `
        SELECT ` + companyColumns + `
        FROM companies
        WHERE company_id = $1 AND status != $2
    `

	company := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, id, constants.StatusDelete).Scan(
		&company.ID,
		&company.Name,
		&company.Image,
		&company.Contact.Mobile,
		&company.Contact.Address,
		&company.Contact.Website,
		&company.Details,
		pq.Array(&company.Tags),
		&company.Status,
		&company.OwnerID,
		&company.CreatedAt,
		&company.UpdatedAt,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{id, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Company", id)
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return company, nil
}

// Update modifies a company listing's profile fields
func (r *PostgresCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	startTime := time.Now()

	company.UpdatedAt = time.Now()

	query := `
        UPDATE companies
        SET name = $1, image = $2, contact_mobile = $3, contact_address = $4, contact_website = $5, details = $6, tags = $7, updated_at = $8
        WHERE company_id = $9 AND status != $10
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		company.Name,
		company.Image,
		company.Contact.Mobile,
		company.Contact.Address,
		company.Contact.Website,
		company.Details,
		pq.Array(company.Tags),
		company.UpdatedAt,
		company.ID,
		constants.StatusDelete,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{company.Name, company.Image, company.Contact.Mobile, company.Contact.Address, company.Contact.Website, company.Details, company.Tags, company.UpdatedAt, company.ID, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Company", company.ID)
	}

	log.Info().
		Int64("company_id", company.ID).
		Msg("Company updated")

	return nil
}

// UpdateStatus changes a listing's status. Suspension and deletion are both
// status writes; rows are never physically removed.
func (r *PostgresCompanyRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	startTime := time.Now()

	query := `
        UPDATE companies
        SET status = $1, updated_at = $2
        WHERE company_id = $3 AND status != $4
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
		return fmt.Errorf("failed to update company status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Company", id)
	}

	log.Info().
		Int64("company_id", id).
		Str("status", status).
		Msg("Company status updated")

	return nil
}

// List retrieves a page of active company listings, newest first
func (r *PostgresCompanyRepository) List(ctx context.Context, page *utils.PaginationParams) ([]*models.Company, error) {
	startTime := time.Now()

	query := `
        SELECT ` + companyColumns + `
        FROM companies
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.db.QueryContext(ctx, query, constants.StatusActive, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{constants.StatusActive, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanyRows(rows)
}

// ListByOwner retrieves all non-deleted listings owned by a user
func (r *PostgresCompanyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Company, error) {
	startTime := time.Now()

	query := `
        SELECT ` + companyColumns + `
        FROM companies
        WHERE owner_id = $1 AND status != $2
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query, ownerID, constants.StatusDelete)

	utils.LogDBQuery(
		query,
		[]interface{}{ownerID, constants.StatusDelete},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list companies by owner: %w", err)
	}
	defer rows.Close()

	return scanCompanyRows(rows)
}

// SearchByName retrieves active listings whose name contains the keyword,
// case-insensitively
func (r *PostgresCompanyRepository) SearchByName(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	startTime := time.Now()

	query := `
        SELECT ` + companyColumns + `
        FROM companies
        WHERE status = $1 AND name ILIKE '%' || $2 || '%'
        ORDER BY name ASC
        LIMIT $3 OFFSET $4
    `

	rows, err := r.db.QueryContext(ctx, query, constants.StatusActive, keyword, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{constants.StatusActive, keyword, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to search companies by name: %w", err)
	}
	defer rows.Close()

	return scanCompanyRows(rows)
}

// SearchByTag retrieves active listings with a tag starting with the keyword
func (r *PostgresCompanyRepository) SearchByTag(ctx context.Context, keyword string, page *utils.PaginationParams) ([]*models.Company, error) {
	startTime := time.Now()

	query := `
        SELECT ` + companyColumns + `
        FROM companies
        WHERE status = $1 AND EXISTS (
            SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $2 || '%'
        )
        ORDER BY name ASC
        LIMIT $3 OFFSET $4
    `

	rows, err := r.db.QueryContext(ctx, query, constants.StatusActive, keyword, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{constants.StatusActive, keyword, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to search companies by tag: %w", err)
	}
	defer rows.Close()

	return scanCompanyRows(rows)
}

// SuggestNames retrieves distinct active company names starting with the
// keyword, for type-ahead completion
func (r *PostgresCompanyRepository) SuggestNames(ctx context.Context, keyword string, limit int) ([]string, error) {
	startTime := time.Now()

	query := `
        SELECT DISTINCT name
        FROM companies
        WHERE status = $1 AND name ILIKE $2 || '%'
        ORDER BY name ASC
        LIMIT $3
    `

	rows, err := r.db.QueryContext(ctx, query, constants.StatusActive, keyword, limit)

	utils.LogDBQuery(
		query,
		[]interface{}{constants.StatusActive, keyword, limit},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to suggest company names: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// SuggestTags retrieves distinct tags on active listings starting with the
// keyword
func (r *PostgresCompanyRepository) SuggestTags(ctx context.Context, keyword string, limit int) ([]string, error) {
	startTime := time.Now()

	query := `
        SELECT DISTINCT tag
        FROM companies, unnest(tags) AS tag
        WHERE status = $1 AND tag ILIKE $2 || '%'
        ORDER BY tag ASC
        LIMIT $3
    `

	rows, err := r.db.QueryContext(ctx, query, constants.StatusActive, keyword, limit)

	utils.LogDBQuery(
		query,
		[]interface{}{constants.StatusActive, keyword, limit},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to suggest tags: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// scanStrings collects a single-column string result set
func scanStrings(rows *sql.Rows) ([]string, error) {
	values := make([]string, 0)

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return values, nil
}
