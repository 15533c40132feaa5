package gcal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type client struct {
	logger  *slog.Logger
	service *calendar.Service
}

// New creates a Google Calendar client authenticated with an API key.
// Key-only access is enough for reading public calendars, no OAuth flow.
func New(ctx context.Context, logger *slog.Logger, apiKey string) (Client, error) {
	service, err := calendar.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return client{
		logger:  logger,
		service: service,
	}, nil
}

// GetUpcomingEvents fetches at most maxResults events starting from now,
// ordered by start time. Recurring events are expanded into single
// occurrences by the provider.
func (client client) GetUpcomingEvents(
	ctx context.Context,
	calendarID string,
	maxResults int64,
) ([]*calendar.Event, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	events, err := client.service.Events.List(calendarID).
		SingleEvents(true).
		TimeMin(now).
		MaxResults(maxResults).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	client.logger.Debug(fmt.Sprintf("fetched %d events", len(events.Items)))
	return events.Items, nil
}
