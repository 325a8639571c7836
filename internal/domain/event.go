package domain

import (
	"strings"
	"time"
)

type Program string

const (
	ProgramAdultEd   Program = "AdultEd"
	ProgramNoAdultEd Program = "No-AdultEd"
)

func ParseProgram(s string) (Program, error) {
	switch p := Program(strings.TrimSpace(s)); p {
	case ProgramAdultEd, ProgramNoAdultEd:
		return p, nil
	default:
		return "", Invalid("Program must be either %s or %s", ProgramAdultEd, ProgramNoAdultEd)
	}
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	MaxSeats    int       `json:"max_seats"`
	Program     Program   `json:"program"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventAvailability is an event with its ticket counters computed at read time.
type EventAvailability struct {
	Event        Event `json:"event"`
	TicketsTaken int   `json:"tickets_taken"`
}

// AvailableTickets may be negative when an admin lowered MaxSeats below the tickets already taken.
func (e EventAvailability) AvailableTickets() int {
	return e.Event.MaxSeats - e.TicketsTaken
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	MaxSeats    int
	Program     Program
}

// UpdateEventInput holds a partial update; nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	MaxSeats    *int
	Program     *Program
}

func (in UpdateEventInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Date == nil &&
		in.Location == nil && in.MaxSeats == nil && in.Program == nil
}

// Apply copies the set fields onto e.
func (in UpdateEventInput) Apply(e *Event) {
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.MaxSeats != nil {
		e.MaxSeats = *in.MaxSeats
	}
	if in.Program != nil {
		e.Program = *in.Program
	}
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventDate accepts RFC3339 timestamps as well as the values produced by
// datetime-local and date form inputs, which are interpreted as UTC.
func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, Invalid("Invalid date %q", s)
}
