package ports

import (
	"context"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

type AdminRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Upsert(ctx context.Context, a *domain.Admin) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.AdminSession) error
	Get(ctx context.Context, token string) (*domain.AdminSession, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
