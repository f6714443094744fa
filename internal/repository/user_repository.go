// Package repository implements PostgreSQL persistence for the platform's
// domain entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/reviewzone/ReviewZone_Backend/internal/constants"
	"github.com/reviewzone/ReviewZone_Backend/internal/database"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// UserRepository defines methods for interacting with account data
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, passwordHash string) error
	SetResetChallenge(ctx context.Context, id int64, challenge *models.ResetChallenge) error
	ResetPassword(ctx context.Context, id int64, passwordHash string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateRole(ctx context.Context, id int64, role string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByStatus(ctx context.Context, status string, page *utils.PaginationParams) ([]*models.User, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// userColumns is the select list shared by all account lookups.
const userColumns = `user_id, name, email, password_hash, status, role, reset_secret, reset_created_at, created_at, updated_at`

// scanUser scans a full account row, folding the nullable challenge columns
// into an embedded ResetChallenge when one is pending.
func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var resetSecret sql.NullString
	var resetCreatedAt sql.NullInt64

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Status,
		&user.Role,
		&resetSecret,
		&resetCreatedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resetSecret.Valid && resetSecret.String != "" {
		user.ResetChallenge = &models.ResetChallenge{
			Secret:    resetSecret.String,
			CreatedAt: resetCreatedAt.Int64,
		}
	}

	return user, nil
}

// Create adds a new account to the database
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
        INSERT INTO users (name, email, password_hash, status, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING user_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Status,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Name, user.Email, "[REDACTED]", user.Status, user.Role, user.CreatedAt, user.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == constants.PGErrorDuplicateConstraint && strings.Contains(pqErr.Constraint, "email") {
				return utils.NewDuplicateError("User", "email", user.Email)
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	return nil
}

// GetByID retrieves an account by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE user_id = $1
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))

	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves an account by email. The comparison is exact: emails
// are stored and matched as provided at registration.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))

	utils.LogDBQuery(
		query,
		[]interface{}{email},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ChangePassword updates an account's password hash
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE user_id = $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User password changed")

	return nil
}

// SetResetChallenge stores a new reset challenge on the account, replacing
// any pending one.
func (r *PostgresUserRepository) SetResetChallenge(ctx context.Context, id int64, challenge *models.ResetChallenge) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET reset_secret = $1, reset_created_at = $2, updated_at = $3
        WHERE user_id = $4
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, challenge.Secret, challenge.CreatedAt, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", challenge.CreatedAt, now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to set reset challenge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ResetPassword writes the new password hash and clears the pending reset
// challenge in one statement, so a redeemed token can never be replayed.
func (r *PostgresUserRepository) ResetPassword(ctx context.Context, id int64, passwordHash string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, reset_secret = NULL, reset_created_at = NULL, updated_at = $2
        WHERE user_id = $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User password reset")

	return nil
}

// UpdateStatus updates an account's status
func (r *PostgresUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET status = $1, updated_at = $2
        WHERE user_id = $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, status, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{status, now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Str("status", status).
		Msg("User status updated")

	return nil
}

// UpdateRole updates an account's role. Used when a user registers their
// first company and becomes a company owner.
func (r *PostgresUserRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET role = $1, updated_at = $2
        WHERE user_id = $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, role, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{role, now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ExistsByEmail checks if an account with the given email exists
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	startTime := time.Now()

	query := `
        SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)

	utils.LogDBQuery(
		query,
		[]interface{}{email},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}

// ListByStatus retrieves a page of accounts with the given status, newest
// first
func (r *PostgresUserRepository) ListByStatus(ctx context.Context, status string, page *utils.PaginationParams) ([]*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.db.QueryContext(ctx, query, status, page.PageSize, page.Offset())

	utils.LogDBQuery(
		query,
		[]interface{}{status, page.PageSize, page.Offset()},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list users by status: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		var resetSecret sql.NullString
		var resetCreatedAt sql.NullInt64

		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Status,
			&user.Role,
			&resetSecret,
			&resetCreatedAt,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		if resetSecret.Valid && resetSecret.String != "" {
			user.ResetChallenge = &models.ResetChallenge{
				Secret:    resetSecret.String,
				CreatedAt: resetCreatedAt.Int64,
			}
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
