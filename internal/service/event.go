package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo   ports.EventRepo
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

func (s *EventService) Create(ctx context.Context, session domain.AdminSession, input domain.CreateEventInput) (*domain.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)

	switch {
	case input.Title == "":
		return nil, domain.Invalid("Title is required")
	case input.Description == "":
		return nil, domain.Invalid("Description is required")
	case input.Location == "":
		return nil, domain.Invalid("Location is required")
	case input.Date.IsZero():
		return nil, domain.Invalid("Date is required")
	case input.MaxSeats <= 0:
		return nil, domain.Invalid("Max seats must be positive")
	}

	if input.Program == "" {
		input.Program = domain.ProgramNoAdultEd
	}
	program, err := domain.ParseProgram(string(input.Program))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC(),
		Location:    input.Location,
		MaxSeats:    input.MaxSeats,
		Program:     program,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
		logger.Int("max_seats", event.MaxSeats),
		logger.String("admin", session.Email),
	)

	return event, nil
}

// Update applies a partial update. MaxSeats may be lowered below the tickets
// already taken; later reservations then see no availability.
func (s *EventService) Update(ctx context.Context, session domain.AdminSession, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	id, err := checkID(id, domain.ErrEventNotFound)
	if err != nil {
		return nil, err
	}
	if err := validateUpdate(&input); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	input.Apply(event)
	event.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("admin", session.Email),
	)

	return event, nil
}

func validateUpdate(in *domain.UpdateEventInput) error {
	trimmed := func(field string, p **string) error {
		if *p == nil {
			return nil
		}
		v := strings.TrimSpace(**p)
		if v == "" {
			return domain.Invalid("%s must not be empty", field)
		}
		*p = &v
		return nil
	}

	if err := trimmed("Title", &in.Title); err != nil {
		return err
	}
	if err := trimmed("Description", &in.Description); err != nil {
		return err
	}
	if err := trimmed("Location", &in.Location); err != nil {
		return err
	}
	if in.MaxSeats != nil && *in.MaxSeats <= 0 {
		return domain.Invalid("Max seats must be positive")
	}
	if in.Program != nil {
		p, err := domain.ParseProgram(string(*in.Program))
		if err != nil {
			return err
		}
		in.Program = &p
	}
	if in.Date != nil {
		d := in.Date.UTC()
		in.Date = &d
	}
	return nil
}

func (s *EventService) Delete(ctx context.Context, session domain.AdminSession, id string) error {
	id, err := checkID(id, domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("admin", session.Email),
	)

	return nil
}

func (s *EventService) Get(ctx context.Context, _ domain.AdminSession, id string) (*domain.Event, error) {
	id, err := checkID(id, domain.ErrEventNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, _ domain.AdminSession) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ListAvailable is the public listing used by the registration forms.
func (s *EventService) ListAvailable(ctx context.Context, program *domain.Program) ([]*domain.EventAvailability, error) {
	if program != nil {
		p, err := domain.ParseProgram(string(*program))
		if err != nil {
			return nil, err
		}
		program = &p
	}

	return s.repo.ListAvailability(ctx, program)
}

// checkID maps a malformed id to notFound and returns the canonical form, so
// only ids the uuid columns accept reach the repository.
func checkID(id string, notFound error) (string, error) {
	canonical, ok := domain.CanonicalID(id)
	if !ok {
		return "", notFound
	}
	return canonical, nil
}
