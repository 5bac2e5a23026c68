package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const statusOfWorkSelect = `
	SELECT sw.id, cm.company_id, sw.member_id, sw.start_time, sw.finish_time, sw.note,
		sw.created_at, sw.updated_at, u.name, c.name
	FROM %s sw
	JOIN company_members cm ON cm.id = sw.member_id
	JOIN users u ON u.id = cm.user_id
	JOIN companies c ON c.id = cm.company_id
`

type statusOfWorkRepositoryImpl struct {
	db *database.DB
}

func NewStatusOfWorkRepository(db *database.DB) statusofwork.StatusOfWorkRepository {
	return &statusOfWorkRepositoryImpl{db: db}
}

// Create implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) Create(ctx context.Context, s statusofwork.StatusOfWork) (statusofwork.StatusOfWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH sw AS (
			INSERT INTO status_of_works (member_id, start_time, finish_time, note)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)` + statusOfWorkFrom("sw")

	return scanStatusOfWork(q.QueryRow(ctx, query, s.MemberID, s.StartTime, s.FinishTime, s.Note))
}

// GetByID implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) GetByID(ctx context.Context, id int64) (statusofwork.StatusOfWork, error) {
	q := GetQuerier(ctx, r.db)

	query := statusOfWorkFrom("status_of_works") + ` WHERE sw.id = $1`
	return scanStatusOfWork(q.QueryRow(ctx, query, id))
}

// Update implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) Update(ctx context.Context, s statusofwork.StatusOfWork) (statusofwork.StatusOfWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH sw AS (
			UPDATE status_of_works
			SET start_time = $1, finish_time = $2, note = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING *
		)` + statusOfWorkFrom("sw")

	return scanStatusOfWork(q.QueryRow(ctx, query, s.StartTime, s.FinishTime, s.Note, s.ID))
}

// Delete implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM status_of_works WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return statusofwork.ErrStatusOfWorkNotFound
	}
	return nil
}

// ListByUserBetween implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]statusofwork.StatusOfWork, error) {
	query := statusOfWorkFrom("status_of_works") + `
		WHERE cm.user_id = $1 AND sw.start_time >= $2 AND sw.start_time < $3
		ORDER BY sw.start_time ASC, sw.id ASC`
	return r.list(ctx, query, userID, from, to)
}

// ListByCompanyBetween implements statusofwork.StatusOfWorkRepository.
func (r *statusOfWorkRepositoryImpl) ListByCompanyBetween(ctx context.Context, companyID int64, from, to time.Time) ([]statusofwork.StatusOfWork, error) {
	query := statusOfWorkFrom("status_of_works") + `
		WHERE cm.company_id = $1 AND sw.start_time >= $2 AND sw.start_time < $3
		ORDER BY sw.start_time ASC, sw.id ASC`
	return r.list(ctx, query, companyID, from, to)
}

func (r *statusOfWorkRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]statusofwork.StatusOfWork, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]statusofwork.StatusOfWork, 0)
	for rows.Next() {
		s, err := scanStatusOfWork(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func statusOfWorkFrom(relation string) string {
	return fmt.Sprintf(statusOfWorkSelect, relation)
}

func scanStatusOfWork(row pgx.Row) (statusofwork.StatusOfWork, error) {
	var s statusofwork.StatusOfWork
	err := row.Scan(
		&s.ID,
		&s.CompanyID,
		&s.MemberID,
		&s.StartTime,
		&s.FinishTime,
		&s.Note,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.MemberName,
		&s.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statusofwork.StatusOfWork{}, statusofwork.ErrStatusOfWorkNotFound
		}
		return statusofwork.StatusOfWork{}, err
	}
	s.StartTime = s.StartTime.UTC()
	s.FinishTime = s.FinishTime.UTC()
	return s, nil
}
