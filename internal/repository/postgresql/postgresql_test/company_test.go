package postgresql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyColumns = []string{"id", "name", "size", "business_number", "address", "information", "user_id", "created_at", "updated_at"}

func TestCompanyRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	input := company.Company{
		Name:           "Acme",
		Size:           "10-50",
		BusinessNumber: 1234567890,
		Address:        strPtr("Seoul"),
		UserID:         1,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewCompanyRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies")).
			WithArgs("Acme", "10-50", int64(1234567890), input.Address, (*string)(nil), int64(1)).
			WillReturnRows(pgxmock.NewRows(companyColumns).
				AddRow(int64(5), "Acme", "10-50", int64(1234567890), input.Address, nil, int64(1), now, now))

		created, err := repo.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.Equal(t, "Seoul", *created.Address)
		assert.Nil(t, created.Information)
	})

	t.Run("DuplicateBusinessNumber", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewCompanyRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies")).
			WithArgs("Acme", "10-50", int64(1234567890), input.Address, (*string)(nil), int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "companies_business_number_key"})

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, company.ErrBusinessNumberExists)
	})
}

func TestCompanyRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewCompanyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewCompanyRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM companies ORDER BY id ASC")).
		WillReturnRows(pgxmock.NewRows(companyColumns).
			AddRow(int64(1), "Acme", "10-50", int64(100), nil, nil, int64(1), now, now).
			AddRow(int64(2), "Globex", "1-10", int64(200), nil, strPtr("hq"), int64(2), now, now))

	companies, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Globex", companies[1].Name)
	assert.Equal(t, "hq", *companies[1].Information)
}

func TestCompanyRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewCompanyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM companies ORDER BY id ASC")).
		WillReturnRows(pgxmock.NewRows(companyColumns))

	companies, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestCompanyRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewCompanyRepository(db)
	now := time.Now().UTC()

	updated := company.Company{ID: 5, Name: "Acme Corp", Size: "50-100", BusinessNumber: 777, UserID: 1}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE companies")).
		WithArgs("Acme Corp", "50-100", int64(777), (*string)(nil), (*string)(nil), int64(5)).
		WillReturnRows(pgxmock.NewRows(companyColumns).
			AddRow(int64(5), "Acme Corp", "50-100", int64(777), nil, nil, int64(1), now, now))

	result, err := repo.Update(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", result.Name)
	assert.Nil(t, result.Address)
}

func TestCompanyRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewCompanyRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM companies WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewCompanyRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM companies WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, 5), company.ErrCompanyNotFound)
	})
}
