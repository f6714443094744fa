package migrations

import (
	"context"
	"database/sql"
)

// GetMigrations returns all migrations in execution order. Referenced tables
// come before the tables that reference them.
func GetMigrations() []Migration {
	return []Migration{
		createUsersTable(),
		createCompaniesTable(),
		createReviewsTable(),
	}
}

// createUsersTable creates the users table. The reset_secret and
// reset_created_at columns hold the pending password reset challenge and are
// cleared when the reset completes.
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGSERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					role VARCHAR(20) NOT NULL DEFAULT 'user',
					reset_secret TEXT,
					reset_created_at BIGINT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT users_email_key UNIQUE (email)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createCompaniesTable creates the companies table. Tags are stored as a
// Postgres text array and searched via unnest.
func createCompaniesTable() Migration {
	return Migration{
		Name:        "create_companies_table",
		Description: "Creates the companies table",
		TableName:   "companies",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS companies (
					company_id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					image VARCHAR(255) NOT NULL DEFAULT '',
					contact_mobile VARCHAR(20) NOT NULL DEFAULT '',
					contact_address VARCHAR(255) NOT NULL DEFAULT '',
					contact_website VARCHAR(255) NOT NULL DEFAULT '',
					details TEXT NOT NULL DEFAULT '',
					tags TEXT[] NOT NULL DEFAULT '{}',
					status VARCHAR(20) NOT NULL DEFAULT 'active',
					owner_id BIGINT NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_owner FOREIGN KEY (owner_id) REFERENCES users(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_companies_owner ON companies(owner_id);
				CREATE INDEX IF NOT EXISTS idx_companies_name ON companies(name);
				CREATE INDEX IF NOT EXISTS idx_companies_tags ON companies USING GIN(tags)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createReviewsTable creates the reviews table. The owner response lives in
// the nullable response_details and response_created_at columns.
func createReviewsTable() Migration {
	return Migration{
		Name:        "create_reviews_table",
		Description: "Creates the reviews table",
		TableName:   "reviews",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS reviews (
					review_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					company_id BIGINT NOT NULL,
					star SMALLINT NOT NULL CHECK (star BETWEEN 1 AND 5),
					title VARCHAR(30) NOT NULL,
					details VARCHAR(1024) NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'active',
					response_details VARCHAR(1024),
					response_created_at TIMESTAMP,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_review_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE,
					CONSTRAINT fk_review_company FOREIGN KEY (company_id) REFERENCES companies(company_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_reviews_company ON reviews(company_id);
				CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
