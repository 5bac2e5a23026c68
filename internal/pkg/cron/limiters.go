package cron

import (
	"context"
	"log/slog"
	"time"
)

// IdlePurger is a keyed limiter that can drop keys it has not seen for a while.
type IdlePurger interface {
	Purge(idle time.Duration) int
}

type LimiterJobs struct {
	idle     time.Duration
	limiters []IdlePurger
}

func NewLimiterJobs(idle time.Duration, limiters ...IdlePurger) *LimiterJobs {
	return &LimiterJobs{idle: idle, limiters: limiters}
}

// RegisterJobs purges on the idle interval, so a bucket lives at most twice idle.
func (j *LimiterJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_rate_limiters", j.idle, j.PurgeIdle)
}

func (j *LimiterJobs) PurgeIdle(ctx context.Context) error {
	purged := 0
	for _, l := range j.limiters {
		purged += l.Purge(j.idle)
	}
	if purged > 0 {
		slog.Debug("Purged idle rate limiters", "count", purged)
	}
	return nil
}
