package postgresql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumns = []string{"id", "company_id", "user_id", "role", "grade", "team", "status", "created_at", "updated_at", "member_name", "company_name"}

func TestMemberRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	input := member.CompanyMember{
		CompanyID: 1,
		UserID:    2,
		Role:      member.RoleWorker,
		Grade:     "junior",
		Team:      "backend",
		Status:    member.StatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewMemberRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO company_members")).
			WithArgs(int64(1), int64(2), member.RoleWorker, "junior", "backend", member.StatusPending).
			WillReturnRows(pgxmock.NewRows(memberColumns).
				AddRow(int64(10), int64(1), int64(2), member.RoleWorker, "junior", "backend", member.StatusPending, now, now, "Kim", "Acme"))

		created, err := repo.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		assert.Equal(t, "Kim", created.MemberName)
		assert.Equal(t, "Acme", created.CompanyName)
		assert.False(t, created.IsActive())
	})

	t.Run("AlreadyMember", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewMemberRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO company_members")).
			WithArgs(int64(1), int64(2), member.RoleWorker, "junior", "backend", member.StatusPending).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "company_members_company_id_user_id_key"})

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, member.ErrMemberAlreadyExists)
	})
}

func TestMemberRepository_GetByCompanyAndUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewMemberRepository(db)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE cm.company_id = $1 AND cm.user_id = $2")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(pgxmock.NewRows(memberColumns).
				AddRow(int64(10), int64(1), int64(2), member.RoleManager, "", "", member.StatusApproved, now, now, "Kim", "Acme"))

		m, err := repo.GetByCompanyAndUser(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, m.IsManager())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgresql.NewMemberRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE cm.company_id = $1 AND cm.user_id = $2")).
			WithArgs(int64(1), int64(3)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByCompanyAndUser(ctx, 1, 3)
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
	})
}

func TestMemberRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewMemberRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE cm.user_id = $1 ORDER BY cm.id ASC")).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(memberColumns).
			AddRow(int64(10), int64(1), int64(2), member.RoleWorker, "", "", member.StatusApproved, now, now, "Kim", "Acme").
			AddRow(int64(11), int64(4), int64(2), member.RoleOwner, "", "", member.StatusApproved, now, now, "Kim", "Initech"))

	members, err := repo.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Initech", members[1].CompanyName)
}

func TestMemberRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewMemberRepository(db)
	now := time.Now().UTC()

	m := member.CompanyMember{ID: 10, Role: member.RoleManager, Grade: "senior", Team: "ops", Status: member.StatusApproved}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE company_members")).
		WithArgs(member.RoleManager, "senior", "ops", member.StatusApproved, int64(10)).
		WillReturnRows(pgxmock.NewRows(memberColumns).
			AddRow(int64(10), int64(1), int64(2), member.RoleManager, "senior", "ops", member.StatusApproved, now, now, "Kim", "Acme"))

	updated, err := repo.Update(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, member.RoleManager, updated.Role)
	assert.Equal(t, "ops", updated.Team)
}

func TestMemberRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewMemberRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM company_members WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 10), member.ErrMemberNotFound)
}
