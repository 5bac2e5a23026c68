package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// memberSelect reads from a relation aliased cm so it can wrap both the table
// and a data-modifying CTE.
const memberSelect = `
	SELECT cm.id, cm.company_id, cm.user_id, cm.role, cm.grade, cm.team, cm.status,
		cm.created_at, cm.updated_at, u.name, c.name
	FROM %s cm
	JOIN users u ON u.id = cm.user_id
	JOIN companies c ON c.id = cm.company_id
`

type memberRepositoryImpl struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// Create implements member.MemberRepository.
func (r *memberRepositoryImpl) Create(ctx context.Context, m member.CompanyMember) (member.CompanyMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH cm AS (
			INSERT INTO company_members (company_id, user_id, role, grade, team, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)` + memberFrom("cm")

	created, err := scanMember(q.QueryRow(ctx, query,
		m.CompanyID,
		m.UserID,
		m.Role,
		m.Grade,
		m.Team,
		m.Status,
	))
	if err != nil {
		return member.CompanyMember{}, translateUniqueViolation(err)
	}
	return created, nil
}

// GetByID implements member.MemberRepository.
func (r *memberRepositoryImpl) GetByID(ctx context.Context, id int64) (member.CompanyMember, error) {
	q := GetQuerier(ctx, r.db)

	query := memberFrom("company_members") + ` WHERE cm.id = $1`
	return scanMember(q.QueryRow(ctx, query, id))
}

// GetByCompanyAndUser implements member.MemberRepository.
func (r *memberRepositoryImpl) GetByCompanyAndUser(ctx context.Context, companyID, userID int64) (member.CompanyMember, error) {
	q := GetQuerier(ctx, r.db)

	query := memberFrom("company_members") + ` WHERE cm.company_id = $1 AND cm.user_id = $2`
	return scanMember(q.QueryRow(ctx, query, companyID, userID))
}

// ListByCompany implements member.MemberRepository.
func (r *memberRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]member.CompanyMember, error) {
	query := memberFrom("company_members") + ` WHERE cm.company_id = $1 ORDER BY cm.id ASC`
	return r.list(ctx, query, companyID)
}

// ListByUser implements member.MemberRepository.
func (r *memberRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]member.CompanyMember, error) {
	query := memberFrom("company_members") + ` WHERE cm.user_id = $1 ORDER BY cm.id ASC`
	return r.list(ctx, query, userID)
}

// Update implements member.MemberRepository.
func (r *memberRepositoryImpl) Update(ctx context.Context, m member.CompanyMember) (member.CompanyMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH cm AS (
			UPDATE company_members
			SET role = $1, grade = $2, team = $3, status = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING *
		)` + memberFrom("cm")

	return scanMember(q.QueryRow(ctx, query, m.Role, m.Grade, m.Team, m.Status, m.ID))
}

// Delete implements member.MemberRepository.
func (r *memberRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM company_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]member.CompanyMember, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]member.CompanyMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func memberFrom(relation string) string {
	return fmt.Sprintf(memberSelect, relation)
}

func scanMember(row pgx.Row) (member.CompanyMember, error) {
	var m member.CompanyMember
	err := row.Scan(
		&m.ID,
		&m.CompanyID,
		&m.UserID,
		&m.Role,
		&m.Grade,
		&m.Team,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.MemberName,
		&m.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.CompanyMember{}, member.ErrMemberNotFound
		}
		return member.CompanyMember{}, err
	}
	return m, nil
}
