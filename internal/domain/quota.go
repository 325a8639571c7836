package domain

import "fmt"

type Quota string

const (
	QuotaPerRequest Quota = "per_request"
	QuotaCapacity   Quota = "capacity"
	QuotaPerUser    Quota = "per_user"
	QuotaPerSchool  Quota = "per_school"
)

// QuotaError is a rejection by one of the ticket ceilings. Message is meant
// to be shown to the registrant as is.
type QuotaError struct {
	Quota   Quota
	Limit   int
	Held    int
	Message string
}

func (e *QuotaError) Error() string { return e.Message }

func (e *QuotaError) Unwrap() error { return ErrQuotaExceeded }

type QuotaLimits struct {
	PerRequest int
	PerUser    int
	PerSchool  int
}

var DefaultQuotaLimits = QuotaLimits{PerRequest: 10, PerUser: 10, PerSchool: 10}

func (l QuotaLimits) Validate() error {
	if l.PerRequest <= 0 || l.PerUser <= 0 || l.PerSchool <= 0 {
		return Invalid("Quota limits must be positive")
	}
	return nil
}

// CheckRequested rejects quantities that no event state could admit.
func (l QuotaLimits) CheckRequested(n int) error {
	if n < 1 {
		return ErrInvalidTicketQuantity
	}
	if n > l.PerRequest {
		return &QuotaError{
			Quota:   QuotaPerRequest,
			Limit:   l.PerRequest,
			Message: fmt.Sprintf("You can request a maximum of %d tickets per registration", l.PerRequest),
		}
	}
	return nil
}

type DuplicatePolicy int

const (
	// DuplicateReject refuses a second registration for the same email and event.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateTopUp adds the requested tickets to the existing registration.
	DuplicateTopUp
)

// QuotaSnapshot holds the counters of one event as seen inside the reserve
// transaction.
type QuotaSnapshot struct {
	MaxSeats      int
	TicketsTaken  int
	UserTickets   int
	SchoolTickets int
	Existing      *Registration
}

func (s QuotaSnapshot) AvailableTickets() int {
	return s.MaxSeats - s.TicketsTaken
}

type ReserveRequest struct {
	Registration Registration
	Requested    int
	Policy       DuplicatePolicy
	Limits       QuotaLimits
}

// Admit decides whether the request fits the snapshot. Checks run in a fixed
// order and the first failing one is returned.
func (r ReserveRequest) Admit(s QuotaSnapshot) error {
	if err := r.Limits.CheckRequested(r.Requested); err != nil {
		return err
	}

	available := s.AvailableTickets()
	if r.Requested > available {
		shown := max(available, 0)
		return &QuotaError{
			Quota:   QuotaCapacity,
			Limit:   s.MaxSeats,
			Held:    s.TicketsTaken,
			Message: fmt.Sprintf("Only %d tickets available for this event", shown),
		}
	}

	if s.Existing != nil && r.Policy == DuplicateReject {
		return ErrAlreadyRegistered
	}

	if s.UserTickets+r.Requested > r.Limits.PerUser {
		return &QuotaError{
			Quota: QuotaPerUser,
			Limit: r.Limits.PerUser,
			Held:  s.UserTickets,
			Message: fmt.Sprintf("Maximum %d tickets total per event. You already have %s.",
				r.Limits.PerUser, pluralTickets(s.UserTickets)),
		}
	}

	if r.schoolTotalAfter(s) > r.Limits.PerSchool {
		return &QuotaError{
			Quota: QuotaPerSchool,
			Limit: r.Limits.PerSchool,
			Held:  s.SchoolTickets,
			Message: fmt.Sprintf("Your school has already registered for %s for this event. Maximum %d tickets per school per event.",
				pluralTickets(s.SchoolTickets), r.Limits.PerSchool),
		}
	}

	return nil
}

// schoolTotalAfter replaces the registrant's old contribution with their new
// total when topping up an existing row.
func (r ReserveRequest) schoolTotalAfter(s QuotaSnapshot) int {
	if s.Existing == nil {
		return s.SchoolTickets + r.Requested
	}
	return s.SchoolTickets - s.Existing.TicketQuantity + (s.UserTickets + r.Requested)
}

// Plan returns the write an admitted request performs and the resulting
// ticket quantity of the registrant's row.
func (r ReserveRequest) Plan(s QuotaSnapshot) (ReserveAction, int) {
	if s.Existing != nil {
		return ActionUpdated, s.Existing.TicketQuantity + r.Requested
	}
	return ActionCreated, r.Requested
}

func pluralTickets(n int) string {
	if n == 1 {
		return "1 ticket"
	}
	return fmt.Sprintf("%d tickets", n)
}
