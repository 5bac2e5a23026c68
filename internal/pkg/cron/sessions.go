package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
)

// SessionJobs keeps the refresh_tokens table from growing without bound.
type SessionJobs struct {
	refreshTokens auth.RefreshTokenRepository
	retention     time.Duration
	now           func() time.Time
}

// NewSessionJobs purges tokens that expired or were revoked more than retention ago.
func NewSessionJobs(refreshTokens auth.RefreshTokenRepository, retention time.Duration) *SessionJobs {
	return &SessionJobs{refreshTokens: refreshTokens, retention: retention, now: time.Now}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_refresh_tokens", interval, j.PurgeRefreshTokens)
}

func (j *SessionJobs) PurgeRefreshTokens(ctx context.Context) error {
	purged, err := j.refreshTokens.PurgeRefreshTokens(ctx, j.now().Add(-j.retention))
	if err != nil {
		return err
	}
	if purged > 0 {
		slog.Info("Purged refresh tokens", "count", purged)
	}
	return nil
}
