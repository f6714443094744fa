package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewzone/ReviewZone_Backend/internal/database"
	"github.com/reviewzone/ReviewZone_Backend/internal/models"
	"github.com/reviewzone/ReviewZone_Backend/internal/repository"
	"github.com/reviewzone/ReviewZone_Backend/internal/utils"
)

// companyRows is the column set returned by company lookups
var companyRows = []string{
	"company_id", "name", "image", "contact_mobile", "contact_address", "contact_website",
	"details", "tags", "status", "owner_id", "created_at", "updated_at",
}

// setupCompanyRepositoryTest creates a new test database connection and mock
func setupCompanyRepositoryTest(t *testing.T) (*repository.PostgresCompanyRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbPool := &database.Pool{DB: db}
	repo := repository.NewCompanyRepository(dbPool).(*repository.PostgresCompanyRepository)

	return repo, mock, func() {
		db.Close()
	}
}

func TestCompanyRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	company := models.NewCompany("Acme AS", 7)
	company.Tags = []string{"plumbing", "repair"}

	rows := sqlmock.NewRows([]string{"company_id"}).AddRow(3)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs(company.Name, company.Image, company.Contact.Mobile, company.Contact.Address,
			company.Contact.Website, company.Details, pq.Array(company.Tags), company.Status,
			company.OwnerID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), company)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), company.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(companyRows).
		AddRow(3, "Acme AS", "acme.png", "12345678", "Oslo", "https://acme.example.com",
			"Plumbing services", pq.Array([]string{"plumbing"}), "active", int64(7), now, now)

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs(int64(3), "delete").
		WillReturnRows(rows)

	company, err := repo.GetByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "Acme AS", company.Name)
	assert.Equal(t, []string{"plumbing"}, company.Tags)
	assert.True(t, company.IsOwnedBy(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs(int64(99), "delete").
		WillReturnRows(sqlmock.NewRows(companyRows))

	company, err := repo.GetByID(context.Background(), 99)

	assert.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateStatus(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE companies").
		WithArgs("suspend", sqlmock.AnyArg(), int64(3), "delete").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 3, "suspend")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE companies").
		WithArgs("delete", sqlmock.AnyArg(), int64(99), "delete").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, "delete")

	assert.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_SearchByName(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(companyRows).
		AddRow(3, "Acme AS", "", "", "", "", "", pq.Array([]string{}), "active", int64(7), now, now)

	page := &utils.PaginationParams{PageNumber: 1, PageSize: 10}

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs("active", "acme", page.PageSize, page.Offset()).
		WillReturnRows(rows)

	companies, err := repo.SearchByName(context.Background(), "acme", page)

	assert.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme AS", companies[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_SuggestTags(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepositoryTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"tag"}).
		AddRow("plumbing").
		AddRow("plastering")

	mock.ExpectQuery("SELECT DISTINCT tag").
		WithArgs("active", "pl", 10).
		WillReturnRows(rows)

	tags, err := repo.SuggestTags(context.Background(), "pl", 10)

	assert.NoError(t, err)
	assert.Equal(t, []string{"plumbing", "plastering"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}
