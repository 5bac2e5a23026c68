package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const requestVacationSelect = `
	SELECT rv.id, cm.company_id, rv.member_id, rv.vacation_start, rv.vacation_end, rv.status,
		rv.reviewed_by, rv.reviewed_at, rv.created_at, u.name
	FROM %s rv
	JOIN company_members cm ON cm.id = rv.member_id
	JOIN users u ON u.id = cm.user_id
`

type requestVacationRepositoryImpl struct {
	db *database.DB
}

func NewRequestVacationRepository(db *database.DB) statusofwork.RequestVacationRepository {
	return &requestVacationRepositoryImpl{db: db}
}

// Create implements statusofwork.RequestVacationRepository.
func (r *requestVacationRepositoryImpl) Create(ctx context.Context, v statusofwork.RequestVacation) (statusofwork.RequestVacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH rv AS (
			INSERT INTO request_vacations (member_id, vacation_start, vacation_end, status)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)` + requestVacationFrom("rv")

	return scanRequestVacation(q.QueryRow(ctx, query, v.MemberID, v.VacationStart, v.VacationEnd, v.Status))
}

// GetByID implements statusofwork.RequestVacationRepository.
func (r *requestVacationRepositoryImpl) GetByID(ctx context.Context, id int64) (statusofwork.RequestVacation, error) {
	q := GetQuerier(ctx, r.db)

	query := requestVacationFrom("request_vacations") + ` WHERE rv.id = $1`
	return scanRequestVacation(q.QueryRow(ctx, query, id))
}

// UpdateReview stores the decision only while the request is still pending.
func (r *requestVacationRepositoryImpl) UpdateReview(ctx context.Context, v statusofwork.RequestVacation) (statusofwork.RequestVacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH rv AS (
			UPDATE request_vacations
			SET status = $1, reviewed_by = $2, reviewed_at = $3
			WHERE id = $4 AND status = 'pending'
			RETURNING *
		)` + requestVacationFrom("rv")

	updated, err := scanRequestVacation(q.QueryRow(ctx, query, v.Status, v.ReviewedBy, v.ReviewedAt, v.ID))
	if errors.Is(err, statusofwork.ErrVacationNotFound) {
		return statusofwork.RequestVacation{}, statusofwork.ErrVacationAlreadyReviewed
	}
	return updated, err
}

// ListByCompany implements statusofwork.RequestVacationRepository.
func (r *requestVacationRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]statusofwork.RequestVacation, error) {
	query := requestVacationFrom("request_vacations") + ` WHERE cm.company_id = $1 ORDER BY rv.id ASC`
	return r.list(ctx, query, companyID)
}

// ListByUser implements statusofwork.RequestVacationRepository.
func (r *requestVacationRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]statusofwork.RequestVacation, error) {
	query := requestVacationFrom("request_vacations") + ` WHERE cm.user_id = $1 ORDER BY rv.id ASC`
	return r.list(ctx, query, userID)
}

func (r *requestVacationRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]statusofwork.RequestVacation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]statusofwork.RequestVacation, 0)
	for rows.Next() {
		v, err := scanRequestVacation(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func requestVacationFrom(relation string) string {
	return fmt.Sprintf(requestVacationSelect, relation)
}

func scanRequestVacation(row pgx.Row) (statusofwork.RequestVacation, error) {
	var v statusofwork.RequestVacation
	err := row.Scan(
		&v.ID,
		&v.CompanyID,
		&v.MemberID,
		&v.VacationStart,
		&v.VacationEnd,
		&v.Status,
		&v.ReviewedBy,
		&v.ReviewedAt,
		&v.CreatedAt,
		&v.MemberName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statusofwork.RequestVacation{}, statusofwork.ErrVacationNotFound
		}
		return statusofwork.RequestVacation{}, err
	}
	return v, nil
}
