package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, password_hash, created_at, updated_at
			  FROM admins
			  WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

// Upsert inserts the admin or, when the email exists, replaces its password.
func (r *AdminRepository) Upsert(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (id, email, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (email) DO UPDATE
			  SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE admins SET password_hash=$2, updated_at=$3 WHERE email=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, email, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return expectOne(res, domain.ErrAdminNotFound)
}
