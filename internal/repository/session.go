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

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.AdminSession) error {
	query := `INSERT INTO admin_sessions (token, admin_email, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.Token, s.Email, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*domain.AdminSession, error) {
	query := `SELECT token, admin_email, created_at, expires_at
			  FROM admin_sessions
			  WHERE token=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.AdminSession
	if err = row.Scan(&s.Token, &s.Email, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM admin_sessions WHERE token=$1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return expectOne(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM admin_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}
