package dtos

import (
	"fmt"
	"strings"

	"google.golang.org/api/calendar/v3"
)

// EventDto is the flattened representation of a calendar event
// served on /events. Optional fields stay absent in the JSON output
// when the provider didn't set them.
type EventDto struct {
	Start       string  `json:"start,omitempty"`
	End         string  `json:"end,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	HangoutLink *string `json:"hangoutLink,omitempty"`
	HTMLLink    *string `json:"htmlLink,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// NewEventDto flattens a raw Google Calendar event. Timed events carry
// a date-time, all-day events only a date; the date-time wins when both
// are present. Values are passed through untouched, no parsing.
func NewEventDto(item *calendar.Event) EventDto {
	return EventDto{
		Start:       eventTime(item.Start),
		End:         eventTime(item.End),
		Summary:     optional(item.Summary),
		HangoutLink: optional(item.HangoutLink),
		HTMLLink:    optional(item.HtmlLink),
		Location:    optional(item.Location),
		Description: optional(item.Description),
	}
}

func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}

	if t.DateTime != "" {
		return t.DateTime
	}

	return t.Date
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

// String renders a multi-line summary of the event for debug logging.
func (dto EventDto) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "start: %s\n", dto.Start)
	fmt.Fprintf(&sb, "end: %s\n", dto.End)

	optionals := []struct {
		name  string
		value *string
	}{
		{"summary", dto.Summary},
		{"hangoutLink", dto.HangoutLink},
		{"htmlLink", dto.HTMLLink},
		{"location", dto.Location},
		{"description", dto.Description},
	}

	for _, field := range optionals {
		if field.value == nil {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", field.name, *field.value)
	}

	return sb.String()
}
