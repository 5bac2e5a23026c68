package postgresql_test

import (
	"testing"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a database backed by a pgxmock pool and verifies every
// expectation was met when the test finishes.
func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return database.NewFromPool(mock), mock
}

func strPtr(s string) *string { return &s }
