package jobs

import (
	"context"
	"log/slog"
	"time"

	"calproxy/internal/services"
)

type RefreshJob struct {
	eventService *services.EventService
	interval     time.Duration
}

func NewRefreshJob(
	eventService *services.EventService,
	intervalSeconds int,
) RefreshJob {
	return RefreshJob{
		eventService: eventService,
		interval:     time.Duration(intervalSeconds) * time.Second,
	}
}

func (j RefreshJob) ID() string {
	return "refresh-events"
}

func (j RefreshJob) RunEvery() time.Duration {
	return j.interval
}

// Run performs one refresh cycle. A failed cycle keeps the previous
// cache content and doesn't stop subsequent cycles.
func (j RefreshJob) Run(ctx context.Context, _ *slog.Logger) error {
	return j.eventService.Refresh(ctx)
}
