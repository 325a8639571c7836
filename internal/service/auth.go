package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthOptions struct {
	EmailDomain string
	SessionTTL  time.Duration
	BcryptCost  int
}

type AuthService struct {
	admins   ports.AdminRepo
	sessions ports.SessionRepo
	notifier ports.AdminNotifier
	opts     AuthOptions
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthService(
	admins ports.AdminRepo,
	sessions ports.SessionRepo,
	notifier ports.AdminNotifier,
	opts AuthOptions,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Invalid("Email and password are required")
	}
	if !domain.HasEmailDomain(email, s.opts.EmailDomain) {
		return nil, &domain.EmailDomainError{Domain: s.opts.EmailDomain}
	}

	admin, err := s.verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	session := &domain.AdminSession{
		Token:     uuid.New().String(),
		Email:     admin.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("admin logged in", logger.String("admin", admin.Email))

	go s.notifier.NotifyAdminLogin(context.WithoutCancel(ctx), admin.Email)

	return session, nil
}

// Authenticate resolves a session token to the admin behind it. The admin
// must still exist; deleting an admin revokes their sessions.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.AdminSession, error) {
	token, ok := domain.CanonicalID(token)
	if !ok {
		return domain.AdminSession{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.AdminSession{}, domain.ErrUnauthorized
		}
		return domain.AdminSession{}, fmt.Errorf("get session: %w", err)
	}
	if session.Expired(s.now()) {
		return domain.AdminSession{}, domain.ErrUnauthorized
	}

	if _, err = s.admins.GetByEmail(ctx, session.Email); err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return domain.AdminSession{}, domain.ErrUnauthorized
		}
		return domain.AdminSession{}, fmt.Errorf("get admin: %w", err)
	}

	return *session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	token, ok := domain.CanonicalID(token)
	if !ok {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, session domain.AdminSession, current, next string) error {
	if current == "" || next == "" {
		return domain.Invalid("Current password and new password are required")
	}
	if len(next) < minPasswordLength {
		return domain.Invalid("New password must be at least %d characters long", minPasswordLength)
	}

	if _, err := s.verify(ctx, session.Email, current); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.ErrAdminNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err = s.admins.UpdatePassword(ctx, session.Email, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("admin password changed", logger.String("admin", session.Email))

	go s.notifier.NotifyPasswordChanged(context.WithoutCancel(ctx), session.Email)

	return nil
}

// EnsureAdmin creates the admin or resets its password. Used for seeding.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	email = domain.NormalizeEmail(email)
	if !domain.HasEmailDomain(email, s.opts.EmailDomain) {
		return nil, &domain.EmailDomainError{Domain: s.opts.EmailDomain}
	}
	if len(password) < minPasswordLength {
		return nil, domain.Invalid("Password must be at least %d characters long", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.admins.Upsert(ctx, admin); err != nil {
		return nil, fmt.Errorf("upsert admin: %w", err)
	}

	return admin, nil
}

func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}

// verify returns ErrInvalidCredentials for an unknown admin and
// ErrWrongPassword for a bad password.
func (s *AuthService) verify(ctx context.Context, email, password string) (*domain.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	return admin, nil
}
