package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")

	var ran []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "first")
		return boom
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestSessionJobs_PurgeRefreshTokens(t *testing.T) {
	repo := new(mocks.RefreshTokenRepository)
	now := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

	jobs := NewSessionJobs(repo, 7*24*time.Hour)
	jobs.now = func() time.Time { return now }

	repo.On("PurgeRefreshTokens", mock.Anything, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Return(int64(4), nil).Once()
	require.NoError(t, jobs.PurgeRefreshTokens(context.Background()))

	repo.On("PurgeRefreshTokens", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()
	assert.Error(t, jobs.PurgeRefreshTokens(context.Background()))

	repo.AssertExpectations(t)
}

type stubPurger struct {
	idle   time.Duration
	purged int
}

func (s *stubPurger) Purge(idle time.Duration) int {
	s.idle = idle
	return s.purged
}

func TestLimiterJobs_PurgeIdle(t *testing.T) {
	ip := &stubPurger{purged: 3}
	user := &stubPurger{}

	s := NewScheduler()
	NewLimiterJobs(10*time.Minute, ip, user).RegisterJobs(s)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 10*time.Minute, ip.idle)
	assert.Equal(t, 10*time.Minute, user.idle)
}
