package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calproxy/internal/dtos"
	"calproxy/pkg/gcal"
)

// EventService owns the single cache slot for upcoming events. The slot
// starts unpopulated, which is distinct from holding zero events, and is
// overwritten wholesale on every successful refresh.
type EventService struct {
	logger     *slog.Logger
	client     gcal.Client
	calendarID string
	maxResults int64

	mu        sync.RWMutex
	populated bool
	cache     []byte
}

var emptyEventList = []byte("[]")

// Refresh runs one fetch-transform-store cycle. An empty provider result
// is stored as an empty list; a fetch error leaves the previous cache
// content untouched and is left to the caller to log.
func (service *EventService) Refresh(ctx context.Context) error {
	items, err := service.client.GetUpcomingEvents(
		ctx,
		service.calendarID,
		service.maxResults,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh events: %w", err)
	}

	events := make([]dtos.EventDto, 0, len(items))
	for _, item := range items {
		event := dtos.NewEventDto(item)
		service.logger.Debug(event.String())

		events = append(events, event)
	}

	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to serialize events: %w", err)
	}

	service.mu.Lock()
	service.cache = data
	service.populated = true
	service.mu.Unlock()

	service.logger.Info("refreshed event cache", "count", len(events))
	service.logger.Debug(fmt.Sprintf("cache contents: %s", data))

	return nil
}

// GetEvents returns the serialized cache content. A populated cache is
// returned immediately without touching the provider. On an unpopulated
// cache it blocks on a synchronous refresh first; when that refresh
// fails an empty list is returned and the slot stays unpopulated so the
// next read tries again.
func (service *EventService) GetEvents(ctx context.Context) []byte {
	service.mu.RLock()
	populated, cache := service.populated, service.cache
	service.mu.RUnlock()

	if populated {
		return cache
	}

	if err := service.Refresh(ctx); err != nil {
		service.logger.Error("failed to populate event cache", logging.ErrAttr(err))
		return emptyEventList
	}

	service.mu.RLock()
	defer service.mu.RUnlock()
	return service.cache
}

// UpdateJobState is the job queue's state callback for the refresh job.
// The queue passes a nil time before the first completed run.
func (service *EventService) UpdateJobState(
	id string,
	isRunning bool,
	lastRunTime *time.Time,
) {
	if isRunning || lastRunTime == nil {
		return
	}

	service.logger.Debug(
		fmt.Sprintf("job %s ran at %s", id, lastRunTime.Format(time.RFC3339)),
	)
}
