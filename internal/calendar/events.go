// ABOUTME: Event listing, creation and deletion against the primary Google calendar.
// ABOUTME: Flattens Google's event shape into the compact form served by the API and UI.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/harperreed/lifedash/internal/models"
)

const primaryCalendar = "primary"

// ErrInvalidEvent marks event input that cannot be sent to Google.
var ErrInvalidEvent = errors.New("invalid event")

// Event is an upcoming calendar entry.
type Event struct {
	ID          string  `json:"id"`
	Summary     string  `json:"summary"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// AllDay reports whether the event spans whole days.
func (e Event) AllDay() bool {
	return len(e.Start) == len("2006-01-02")
}

// EventList is the result of ListEvents.
type EventList struct {
	Count  int     `json:"count"`
	Events []Event `json:"events"`
}

// EventInput describes an event to create. StartTime and EndTime accept RFC3339,
// a local date-time without offset (interpreted in the calendar time zone) or a date.
type EventInput struct {
	Summary     string  `json:"summary" validate:"required"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     *string `json:"end_time,omitempty"`
	AllDay      bool    `json:"all_day"`
}

// EventTime mirrors Google's start/end object.
type EventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// CreatedEvent is returned after a successful insert.
type CreatedEvent struct {
	OK      bool      `json:"ok"`
	EventID string    `json:"event_id"`
	Link    string    `json:"link"`
	Summary string    `json:"summary"`
	Start   EventTime `json:"start"`
}

// ParseEventTime parses s, using loc for inputs that carry no offset.
func ParseEventTime(s string, loc *time.Location) (time.Time, error) {
	t, err := models.ParseTime(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	return t, nil
}

// ListEvents returns events on the primary calendar from now until now+days.
func (c *Client) ListEvents(ctx context.Context, days int) (*EventList, error) {
	if days <= 0 {
		days = DefaultDays
	}

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	now := c.now().UTC()
	res, err := svc.Events.List(primaryCalendar).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, days).Format(time.RFC3339)).
		MaxResults(MaxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	list := &EventList{Events: make([]Event, 0, len(res.Items))}
	for _, item := range res.Items {
		list.Events = append(list.Events, toEvent(item))
	}
	list.Count = len(list.Events)
	return list, nil
}

func toEvent(item *gcal.Event) Event {
	e := Event{
		ID:      item.Id,
		Summary: item.Summary,
		Start:   when(item.Start),
		End:     when(item.End),
	}
	if e.Summary == "" {
		e.Summary = "(No title)"
	}
	if item.Description != "" {
		e.Description = &item.Description
	}
	if item.Location != "" {
		e.Location = &item.Location
	}
	return e
}

func when(t *gcal.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

// BuildEvent converts input into Google's event body. Timed events without an
// end last one hour; all-day events without an end cover the start date.
func BuildEvent(in EventInput, loc *time.Location) (*gcal.Event, error) {
	if strings.TrimSpace(in.Summary) == "" {
		return nil, fmt.Errorf("%w: summary is required", ErrInvalidEvent)
	}

	start, err := ParseEventTime(in.StartTime, loc)
	if err != nil {
		return nil, err
	}
	end := start
	if in.EndTime != nil && strings.TrimSpace(*in.EndTime) != "" {
		if end, err = ParseEventTime(*in.EndTime, loc); err != nil {
			return nil, err
		}
	} else if !in.AllDay {
		end = start.Add(time.Hour)
	}

	ev := &gcal.Event{Summary: in.Summary}
	if in.Description != nil {
		ev.Description = *in.Description
	}

	if in.AllDay {
		ev.Start = &gcal.EventDateTime{Date: start.Format("2006-01-02")}
		ev.End = &gcal.EventDateTime{Date: end.Format("2006-01-02")}
		return ev, nil
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_time is before start_time", ErrInvalidEvent)
	}
	zone := loc.String()
	ev.Start = &gcal.EventDateTime{DateTime: start.In(loc).Format(time.RFC3339), TimeZone: zone}
	ev.End = &gcal.EventDateTime{DateTime: end.In(loc).Format(time.RFC3339), TimeZone: zone}
	return ev, nil
}

// CreateEvent inserts an event on the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*CreatedEvent, error) {
	body, err := BuildEvent(in, c.loc)
	if err != nil {
		return nil, err
	}

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	created, err := svc.Events.Insert(primaryCalendar, body).Context(ctx).Do()
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	out := &CreatedEvent{
		OK:      true,
		EventID: created.Id,
		Link:    created.HtmlLink,
		Summary: created.Summary,
	}
	if created.Start != nil {
		out.Start = EventTime{Date: created.Start.Date, DateTime: created.Start.DateTime, TimeZone: created.Start.TimeZone}
	}
	return out, nil
}

// DeleteEvent removes an event from the primary calendar.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	svc, err := c.service(ctx)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(primaryCalendar, id).Context(ctx).Do(); err != nil {
		return &UpstreamError{Err: err}
	}
	return nil
}
