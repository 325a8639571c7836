package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

type RegistrantRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	School    string `json:"school" binding:"required"`
	Position  string `json:"position" binding:"required"`
}

func (r RegistrantRequest) ToDomain() domain.Registrant {
	return domain.Registrant{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		School:    r.School,
		Position:  r.Position,
	}
}

// TicketQuantity accepts both 3 and "3" from the forms.
type TicketQuantity string

// Int reads the leading integer the way the forms always have: "3", 3.0 and
// "3.5" all mean 3. Values with no leading digits return 0, which the quota
// checks reject as an invalid quantity.
func (q TicketQuantity) Int() int {
	s := strings.TrimSpace(string(q))

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func (q *TicketQuantity) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*q = TicketQuantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*q = TicketQuantity(n)
	return nil
}

type RegisterRequest struct {
	RegistrantRequest
	EventID        string         `json:"eventId" binding:"required"`
	TicketQuantity TicketQuantity `json:"ticketQuantity" binding:"required"`
}

func (r RegisterRequest) ToDomain() domain.RegisterInput {
	return domain.RegisterInput{
		Registrant:     r.RegistrantRequest.ToDomain(),
		EventID:        r.EventID,
		TicketQuantity: r.TicketQuantity.Int(),
	}
}

type BulkItemRequest struct {
	EventID        string         `json:"eventId"`
	TicketQuantity TicketQuantity `json:"ticketQuantity"`
}

type BulkRegisterRequest struct {
	RegistrantRequest
	Registrations []BulkItemRequest `json:"registrations" binding:"required,min=1"`
}

func (r BulkRegisterRequest) ToDomain() domain.BulkRegisterInput {
	items := make([]domain.BulkItem, 0, len(r.Registrations))
	for _, it := range r.Registrations {
		items = append(items, domain.BulkItem{
			EventID:        it.EventID,
			TicketQuantity: it.TicketQuantity.Int(),
		})
	}
	return domain.BulkRegisterInput{
		Registrant: r.RegistrantRequest.ToDomain(),
		Items:      items,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	MaxSeats    int    `json:"maxSeats" binding:"required,gt=0"`
	Program     string `json:"program"`
}

func (r CreateEventRequest) ToDomain() (domain.CreateEventInput, error) {
	date, err := domain.ParseEventDate(r.Date)
	if err != nil {
		return domain.CreateEventInput{}, err
	}
	return domain.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Location:    r.Location,
		MaxSeats:    r.MaxSeats,
		Program:     domain.Program(r.Program),
	}, nil
}

// UpdateEventRequest is a partial update; absent fields stay unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	MaxSeats    *int    `json:"maxSeats"`
	Program     *string `json:"program"`
}

func (r UpdateEventRequest) ToDomain() (domain.UpdateEventInput, error) {
	in := domain.UpdateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		MaxSeats:    r.MaxSeats,
	}
	if r.Date != nil {
		date, err := domain.ParseEventDate(*r.Date)
		if err != nil {
			return in, err
		}
		in.Date = &date
	}
	if r.Program != nil {
		p := domain.Program(*r.Program)
		in.Program = &p
	}
	return in, nil
}
