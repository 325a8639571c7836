package ports

import (
	"context"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

type RegistrationRepo interface {
	// Reserve admits req against the event's current counters and writes the
	// result in one atomic step.
	Reserve(ctx context.Context, req domain.ReserveRequest) (*domain.Reservation, error)
	GetDetails(ctx context.Context, id string) (*domain.RegistrationDetails, error)
	ListDetails(ctx context.Context) ([]*domain.RegistrationDetails, error)
	Delete(ctx context.Context, id string) error
}
