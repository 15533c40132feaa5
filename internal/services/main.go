package services

import (
	"log/slog"

	"calproxy/internal/config"
	"calproxy/pkg/gcal"
)

type Services struct {
	Events *EventService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	client gcal.Client,
) *Services {
	return &Services{
		Events: &EventService{
			logger:     logger,
			client:     client,
			calendarID: cfg.CalendarID,
			maxResults: int64(cfg.MaxEvents),
		},
	}
}
