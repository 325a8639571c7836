package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationOptions struct {
	EmailDomain string
	Limits      domain.QuotaLimits
}

type RegistrationService struct {
	repo   ports.RegistrationRepo
	opts   RegistrationOptions
	logger logger.Logger
}

func NewRegistrationService(repo ports.RegistrationRepo, opts RegistrationOptions, logger logger.Logger) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

// Register handles the single-event form. A registrant who already holds a
// registration for the event is rejected; topping up goes through RegisterBulk.
func (s *RegistrationService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error) {
	registrant, err := s.validateRegistrant(input.Registrant)
	if err != nil {
		return nil, err
	}

	eventID, ok := domain.CanonicalID(input.EventID)
	if !ok {
		return nil, domain.Invalid("Invalid event ID")
	}

	if err = s.opts.Limits.CheckRequested(input.TicketQuantity); err != nil {
		return nil, err
	}

	res, err := s.reserve(ctx, registrant, eventID, input.TicketQuantity, domain.DuplicateReject)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	return &res.Registration, nil
}

// RegisterBulk runs every item through the same checks as Register, except
// that an existing registration is topped up. Items are independent: a
// rejected item does not undo the ones already written.
func (s *RegistrationService) RegisterBulk(ctx context.Context, input domain.BulkRegisterInput) (*domain.BulkResult, error) {
	registrant, err := s.validateRegistrant(input.Registrant)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, domain.Invalid("At least one event must be selected")
	}

	result := &domain.BulkResult{
		Results: make([]domain.BulkItemResult, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		res, err := s.registerItem(ctx, registrant, item)
		if err != nil {
			result.Errors = append(result.Errors, s.itemError(item, err))
			continue
		}

		result.Results = append(result.Results, domain.BulkItemResult{
			EventID:        res.Registration.EventID,
			EventTitle:     res.EventTitle,
			TicketQuantity: res.Registration.TicketQuantity,
			RegistrationID: res.Registration.ID,
			Action:         res.Action,
		})
	}

	s.logger.Info("bulk registration processed",
		logger.String("email", registrant.Email),
		logger.Int("items", len(input.Items)),
		logger.Int("succeeded", len(result.Results)),
		logger.Int("failed", len(result.Errors)),
	)

	return result, nil
}

func (s *RegistrationService) registerItem(ctx context.Context, registrant domain.Registrant, item domain.BulkItem) (*domain.Reservation, error) {
	eventID, ok := domain.CanonicalID(item.EventID)
	if !ok {
		return nil, domain.Invalid("Invalid event ID")
	}
	if err := s.opts.Limits.CheckRequested(item.TicketQuantity); err != nil {
		return nil, err
	}

	return s.reserve(ctx, registrant, eventID, item.TicketQuantity, domain.DuplicateTopUp)
}

func (s *RegistrationService) itemError(item domain.BulkItem, err error) string {
	var rejection *domain.ReserveRejection
	var quotaErr *domain.QuotaError

	switch {
	case errors.As(err, &rejection):
		return rejection.Error()
	case errors.Is(err, domain.ErrValidation):
		return fmt.Sprintf("Invalid event ID: %s", item.EventID)
	case errors.Is(err, domain.ErrInvalidTicketQuantity):
		return fmt.Sprintf("Invalid ticket quantity for event %s", item.EventID)
	case errors.As(err, &quotaErr):
		return fmt.Sprintf("Event %s: %s", item.EventID, quotaErr.Message)
	case errors.Is(err, domain.ErrEventNotFound):
		return fmt.Sprintf("Event not found: %s", item.EventID)
	default:
		s.logger.Error("bulk registration item failed",
			logger.String("event_id", item.EventID),
			logger.String("error", err.Error()),
		)
		return fmt.Sprintf("Error registering for event %s", item.EventID)
	}
}

func (s *RegistrationService) reserve(
	ctx context.Context,
	registrant domain.Registrant,
	eventID string,
	requested int,
	policy domain.DuplicatePolicy,
) (*domain.Reservation, error) {
	now := time.Now().UTC()
	req := domain.ReserveRequest{
		Registration: domain.Registration{
			ID:             uuid.New().String(),
			FirstName:      registrant.FirstName,
			LastName:       registrant.LastName,
			Email:          registrant.Email,
			School:         registrant.School,
			Position:       registrant.Position,
			EventID:        eventID,
			TicketQuantity: requested,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		Requested: requested,
		Policy:    policy,
		Limits:    s.opts.Limits,
	}

	res, err := s.repo.Reserve(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registration "+string(res.Action),
		logger.String("registration_id", res.Registration.ID),
		logger.String("event_id", eventID),
		logger.String("email", registrant.Email),
		logger.Int("requested", requested),
		logger.Int("ticket_quantity", res.Registration.TicketQuantity),
	)

	return res, nil
}

func (s *RegistrationService) validateRegistrant(r domain.Registrant) (domain.Registrant, error) {
	r = domain.Registrant{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     domain.NormalizeEmail(r.Email),
		School:    strings.TrimSpace(r.School),
		Position:  strings.TrimSpace(r.Position),
	}

	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.School == "" || r.Position == "" {
		return r, domain.Invalid("All fields are required")
	}
	if !domain.HasEmailDomain(r.Email, s.opts.EmailDomain) {
		return r, &domain.EmailDomainError{Domain: s.opts.EmailDomain}
	}

	return r, nil
}

// GetDetails backs the public confirmation page.
func (s *RegistrationService) GetDetails(ctx context.Context, id string) (*domain.RegistrationDetails, error) {
	id, err := checkID(id, domain.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetDetails(ctx, id)
}

func (s *RegistrationService) List(ctx context.Context, _ domain.AdminSession) ([]*domain.RegistrationDetails, error) {
	return s.repo.ListDetails(ctx)
}

func (s *RegistrationService) Delete(ctx context.Context, session domain.AdminSession, id string) error {
	id, err := checkID(id, domain.ErrRegistrationNotFound)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	s.logger.Info("registration deleted",
		logger.String("registration_id", id),
		logger.String("admin", session.Email),
	)

	return nil
}
