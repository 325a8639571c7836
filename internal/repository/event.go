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

const eventColumns = `id, title, description, event_date, location, max_seats, program, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanEvent(row scanner, e *domain.Event, extra ...any) error {
	var program string
	dest := append([]any{
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.MaxSeats, &program, &e.CreatedAt, &e.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	e.Program = domain.Program(program)
	return nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Location,
		e.MaxSeats, string(e.Program), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// ListAvailability returns events with the sum of their tickets, optionally
// restricted to one program.
func (r *EventRepository) ListAvailability(ctx context.Context, program *domain.Program) ([]*domain.EventAvailability, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.event_date, e.location,
			e.max_seats, e.program, e.created_at, e.updated_at,
			COALESCE(SUM(r.ticket_quantity), 0) AS tickets_taken
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE $1::text IS NULL OR e.program = $1
		GROUP BY e.id
		ORDER BY e.event_date ASC`

	var filter any
	if program != nil {
		filter = string(*program)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventAvailability
	for rows.Next() {
		var a domain.EventAvailability
		if err = scanEvent(rows, &a.Event, &a.TicketsTaken); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title=$2, description=$3, event_date=$4, location=$5,
			      max_seats=$6, program=$7, updated_at=$8
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Location,
		e.MaxSeats, string(e.Program), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

// Delete removes the event together with its registrations.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
