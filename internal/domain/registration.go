package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Registrant struct {
	FirstName string
	LastName  string
	Email     string
	School    string
	Position  string
}

type Registration struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	School         string    `json:"school"`
	Position       string    `json:"position"`
	EventID        string    `json:"event_id"`
	TicketQuantity int       `json:"ticket_quantity"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegistrationDetails struct {
	Registration Registration `json:"registration"`
	Event        Event        `json:"event"`
}

type RegisterInput struct {
	Registrant     Registrant
	EventID        string
	TicketQuantity int
}

type BulkItem struct {
	EventID        string
	TicketQuantity int
}

type BulkRegisterInput struct {
	Registrant Registrant
	Items      []BulkItem
}

type ReserveAction string

const (
	ActionCreated ReserveAction = "created"
	ActionUpdated ReserveAction = "updated"
)

// Reservation is the outcome of an admitted reserve call.
type Reservation struct {
	Registration Registration
	EventTitle   string
	Action       ReserveAction
}

type BulkItemResult struct {
	EventID        string        `json:"event_id"`
	EventTitle     string        `json:"event_title"`
	TicketQuantity int           `json:"ticket_quantity"`
	RegistrationID string        `json:"registration_id"`
	Action         ReserveAction `json:"action"`
}

type BulkResult struct {
	Results []BulkItemResult `json:"results"`
	Errors  []string         `json:"errors"`
}

func (r *BulkResult) Succeeded() bool {
	return len(r.Results) > 0
}

// CanonicalID parses any spelling uuid.Parse accepts (braces, urn:uuid:,
// upper case) and returns the lower-case hyphenated form stored in the
// uuid columns.
func CanonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasEmailDomain reports whether email ends with the given "@domain" suffix,
// ignoring case.
func HasEmailDomain(email, domain string) bool {
	return strings.HasSuffix(NormalizeEmail(email), strings.ToLower(domain))
}

// ReserveRejection is a reserve call refused for a known event. It keeps the
// event title so batch callers can report which event failed.
type ReserveRejection struct {
	EventTitle string
	Err        error
}

func (e *ReserveRejection) Error() string {
	return e.EventTitle + ": " + e.Err.Error()
}

func (e *ReserveRejection) Unwrap() error { return e.Err }
