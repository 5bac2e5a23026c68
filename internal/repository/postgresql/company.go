package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, name, size, business_number, address, information, user_id, created_at, updated_at`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, size, business_number, address, information, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.Size,
		newCompany.BusinessNumber,
		newCompany.Address,
		newCompany.Information,
		newCompany.UserID,
	))
	if err != nil {
		return company.Company{}, translateUniqueViolation(err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(q.QueryRow(ctx, query, id))
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return companies, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, updated company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies
		SET name = $1, size = $2, business_number = $3, address = $4, information = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + companyColumns

	result, err := scanCompany(q.QueryRow(ctx, query,
		updated.Name,
		updated.Size,
		updated.BusinessNumber,
		updated.Address,
		updated.Information,
		updated.ID,
	))
	if err != nil {
		return company.Company{}, translateUniqueViolation(err)
	}
	return result, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var found company.Company
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Size,
		&found.BusinessNumber,
		&found.Address,
		&found.Information,
		&found.UserID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return found, nil
}
