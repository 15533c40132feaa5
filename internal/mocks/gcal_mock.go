package mocks

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/api/calendar/v3"

	"calproxy/pkg/gcal"
)

var ErrProviderUnavailable = errors.New("calendar provider unavailable")

// MockCalendarClient serves canned events and can be flipped into a
// failing state to exercise fetch-failure paths.
type MockCalendarClient struct {
	mu     sync.Mutex
	events []*calendar.Event
	fail   bool

	LastCalendarID string
	LastMaxResults int64
}

func NewMockCalendarClient(events []*calendar.Event) *MockCalendarClient {
	return &MockCalendarClient{
		events: events,
	}
}

func (client *MockCalendarClient) GetUpcomingEvents(
	_ context.Context,
	calendarID string,
	maxResults int64,
) ([]*calendar.Event, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	client.LastCalendarID = calendarID
	client.LastMaxResults = maxResults

	if client.fail {
		return nil, ErrProviderUnavailable
	}

	if int64(len(client.events)) > maxResults {
		return client.events[:maxResults], nil
	}

	return client.events, nil
}

func (client *MockCalendarClient) SetEvents(events []*calendar.Event) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.events = events
}

func (client *MockCalendarClient) SetFailing(fail bool) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.fail = fail
}

var _ gcal.Client = (*MockCalendarClient)(nil)
