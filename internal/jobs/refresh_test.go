package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"google.golang.org/api/calendar/v3"

	"calproxy/internal/config"
	"calproxy/internal/jobs"
	"calproxy/internal/mocks"
	"calproxy/internal/services"
)

func TestRefreshJob(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	client := mocks.NewMockCalendarClient([]*calendar.Event{
		{
			Summary: "first",
			Start:   &calendar.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
			End:     &calendar.EventDateTime{DateTime: "2026-09-01T11:00:00Z"},
		},
	})

	cfg := config.New(logging.NewNopLogger())
	cfg.CalendarID = "primary"
	cfg.RefreshInterval = 30

	s := services.New(logging.NewNopLogger(), cfg, client)

	job := jobs.NewRefreshJob(s.Events, cfg.RefreshInterval)
	assert.Equal(t, "refresh-events", job.ID())
	assert.Equal(t, 30*time.Second, job.RunEvery())

	err := job.Run(context.Background(), logging.NewNopLogger())
	assert.Nil(t, err)

	// cache is now populated, a failing provider no longer matters
	client.SetFailing(true)
	data := s.Events.GetEvents(context.Background())
	assert.NotEqual(t, "[]", string(data))
}

func TestRefreshJobFailedCycle(t *testing.T) {
	client := mocks.NewMockCalendarClient(nil)
	client.SetFailing(true)

	cfg := config.New(logging.NewNopLogger())
	cfg.CalendarID = "primary"

	s := services.New(logging.NewNopLogger(), cfg, client)
	job := jobs.NewRefreshJob(s.Events, cfg.RefreshInterval)

	err := job.Run(context.Background(), logging.NewNopLogger())
	assert.ErrorIs(t, err, mocks.ErrProviderUnavailable)
}
