package gcal

import (
	"context"

	"google.golang.org/api/calendar/v3"
)

type Client interface {
	GetUpcomingEvents(
		ctx context.Context,
		calendarID string,
		maxResults int64,
	) ([]*calendar.Event, error)
}
