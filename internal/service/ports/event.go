package ports

import (
	"context"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListAvailability(ctx context.Context, program *domain.Program) ([]*domain.EventAvailability, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}
