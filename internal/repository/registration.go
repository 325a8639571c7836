package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const registrationColumns = `id, first_name, last_name, email, school, position, event_id, ticket_quantity, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func registrationDest(reg *domain.Registration) []any {
	return []any{
		&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.School,
		&reg.Position, &reg.EventID, &reg.TicketQuantity, &reg.CreatedAt, &reg.UpdatedAt,
	}
}

// Reserve checks and applies a ticket request in one transaction. The event
// row is locked first, so concurrent reservations for the same event run one
// after another and every check sees the writes of the previous one.
func (r *RegistrationRepository) Reserve(ctx context.Context, req domain.ReserveRequest) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reg := req.Registration

	var title string
	snap := domain.QuotaSnapshot{}
	eventQuery := `SELECT title, max_seats FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, eventQuery, reg.EventID).Scan(&title, &snap.MaxSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	countersQuery := `
		SELECT
			COALESCE(SUM(ticket_quantity), 0),
			COALESCE(SUM(ticket_quantity) FILTER (WHERE email = $2), 0),
			COALESCE(SUM(ticket_quantity) FILTER (WHERE school = $3), 0)
		FROM registrations
		WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countersQuery, reg.EventID, reg.Email, reg.School).
		Scan(&snap.TicketsTaken, &snap.UserTickets, &snap.SchoolTickets); err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	existingQuery := `SELECT ` + registrationColumns + `
					  FROM registrations
					  WHERE event_id = $1 AND email = $2`
	var existing domain.Registration
	err = tx.QueryRowContext(ctx, existingQuery, reg.EventID, reg.Email).Scan(registrationDest(&existing)...)
	switch {
	case err == nil:
		snap.Existing = &existing
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, fmt.Errorf("get existing registration: %w", err)
	}

	if err = req.Admit(snap); err != nil {
		return nil, &domain.ReserveRejection{EventTitle: title, Err: err}
	}

	action, quantity := req.Plan(snap)
	var saved domain.Registration

	switch action {
	case domain.ActionUpdated:
		query := `UPDATE registrations
				  SET ticket_quantity = $2, updated_at = $3
				  WHERE id = $1
				  RETURNING ` + registrationColumns
		err = tx.QueryRowContext(ctx, query, existing.ID, quantity, reg.UpdatedAt).Scan(registrationDest(&saved)...)
		if err != nil {
			return nil, fmt.Errorf("update registration: %w", err)
		}

	default:
		query := `INSERT INTO registrations (` + registrationColumns + `)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				  RETURNING ` + registrationColumns
		err = tx.QueryRowContext(
			ctx, query,
			reg.ID, reg.FirstName, reg.LastName, reg.Email, reg.School,
			reg.Position, reg.EventID, quantity, reg.CreatedAt, reg.UpdatedAt,
		).Scan(registrationDest(&saved)...)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, &domain.ReserveRejection{EventTitle: title, Err: domain.ErrAlreadyRegistered}
			}
			return nil, fmt.Errorf("insert registration: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.Reservation{
		Registration: saved,
		EventTitle:   title,
		Action:       action,
	}, nil
}

const detailsQuery = `
	SELECT
		r.id, r.first_name, r.last_name, r.email, r.school, r.position,
		r.event_id, r.ticket_quantity, r.created_at, r.updated_at,
		e.id, e.title, e.description, e.event_date, e.location,
		e.max_seats, e.program, e.created_at, e.updated_at
	FROM registrations r
	JOIN events e ON e.id = r.event_id`

func scanDetails(row scanner) (*domain.RegistrationDetails, error) {
	var d domain.RegistrationDetails
	var program string
	dest := append(registrationDest(&d.Registration),
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Date, &d.Event.Location,
		&d.Event.MaxSeats, &program, &d.Event.CreatedAt, &d.Event.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	d.Event.Program = domain.Program(program)
	return &d, nil
}

func (r *RegistrationRepository) GetDetails(ctx context.Context, id string) (*domain.RegistrationDetails, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, detailsQuery+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	d, err := scanDetails(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return d, nil
}

func (r *RegistrationRepository) ListDetails(ctx context.Context) ([]*domain.RegistrationDetails, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, detailsQuery+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationDetails
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM registrations WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	return expectOne(res, domain.ErrRegistrationNotFound)
}
