package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	MaxSeats    int    `json:"maxSeats"`
	Program     string `json:"program"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type AvailableEventResponse struct {
	EventResponse
	TicketsTaken     int `json:"ticketsTaken"`
	AvailableTickets int `json:"availableTickets"`
}

type RegistrationResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	School         string `json:"school"`
	Position       string `json:"position"`
	TicketQuantity int    `json:"ticketQuantity"`
	EventID        string `json:"eventId"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type RegisterResponse struct {
	RegistrationResponse
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

type RegistrationDetailsResponse struct {
	RegistrationResponse
	Event EventResponse `json:"event"`
}

type BulkItemResponse struct {
	EventID        string `json:"eventId"`
	EventTitle     string `json:"eventTitle"`
	TicketQuantity int    `json:"ticketQuantity"`
	RegistrationID string `json:"registrationId"`
	Action         string `json:"action"`
}

type BulkRegisterResponse struct {
	Success     bool               `json:"success"`
	Results     []BulkItemResponse `json:"results"`
	Errors      []string           `json:"errors,omitempty"`
	RedirectURL string             `json:"redirectUrl"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        formatTime(e.Date),
		Location:    e.Location,
		MaxSeats:    e.MaxSeats,
		Program:     string(e.Program),
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func ToAvailableEventResponse(a *domain.EventAvailability) AvailableEventResponse {
	available := a.AvailableTickets()
	if available < 0 {
		available = 0
	}
	return AvailableEventResponse{
		EventResponse:    ToEventResponse(&a.Event),
		TicketsTaken:     a.TicketsTaken,
		AvailableTickets: available,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		School:         r.School,
		Position:       r.Position,
		TicketQuantity: r.TicketQuantity,
		EventID:        r.EventID,
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

func ToRegisterResponse(r *domain.Registration) RegisterResponse {
	return RegisterResponse{
		RegistrationResponse: ToRegistrationResponse(r),
		Success:              true,
		RedirectURL:          SuccessURL(r.ID),
	}
}

func ToRegistrationDetailsResponse(d *domain.RegistrationDetails) RegistrationDetailsResponse {
	event := ToEventResponse(&d.Event)
	event.CreatedAt, event.UpdatedAt = "", ""
	return RegistrationDetailsResponse{
		RegistrationResponse: ToRegistrationResponse(&d.Registration),
		Event:                event,
	}
}

func ToBulkRegisterResponse(res *domain.BulkResult) BulkRegisterResponse {
	items := make([]BulkItemResponse, 0, len(res.Results))
	for _, r := range res.Results {
		items = append(items, BulkItemResponse{
			EventID:        r.EventID,
			EventTitle:     r.EventTitle,
			TicketQuantity: r.TicketQuantity,
			RegistrationID: r.RegistrationID,
			Action:         string(r.Action),
		})
	}

	redirect := fmt.Sprintf("/registration-success?bulk=true&count=%d", len(items))
	if len(items) > 0 {
		redirect = fmt.Sprintf("/registration-success?id=%s&bulk=true&count=%d", items[0].RegistrationID, len(items))
	}

	return BulkRegisterResponse{
		Success:     true,
		Results:     items,
		Errors:      res.Errors,
		RedirectURL: redirect,
	}
}

// SuccessURL is the confirmation page path for a registration.
func SuccessURL(id string) string {
	return "/registration-success?id=" + id
}
