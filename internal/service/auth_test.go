package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminEmail = "admin@schools.nyc.gov"

type authDeps struct {
	admins   *mocks.MockAdminRepo
	sessions *mocks.MockSessionRepo
	notifier *mocks.MockAdminNotifier
}

func newAuthService(t *testing.T) (*AuthService, authDeps) {
	t.Helper()
	deps := authDeps{
		admins:   mocks.NewMockAdminRepo(t),
		sessions: mocks.NewMockSessionRepo(t),
		notifier: mocks.NewMockAdminNotifier(t),
	}
	svc := NewAuthService(deps.admins, deps.sessions, deps.notifier, AuthOptions{
		EmailDomain: "@schools.nyc.gov",
		SessionTTL:  time.Hour,
		BcryptCost:  bcrypt.MinCost,
	}, newTestLogger(t))
	return svc, deps
}

func testAdmin(t *testing.T, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Admin{ID: "admin-1", Email: adminEmail, PasswordHash: string(hash)}
}

// notified returns a channel closed once the async notifier call happened.
func notified(call interface{ Run(func(args mock.Arguments)) *mock.Call }) <-chan struct{} {
	done := make(chan struct{})
	call.Run(func(mock.Arguments) { close(done) })
	return done
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, deps := newAuthService(t)

	deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(testAdmin(t, "secret1"), nil)
	deps.sessions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *domain.AdminSession) bool {
		return s.Email == adminEmail && s.ExpiresAt.Sub(s.CreatedAt) == time.Hour
	})).Return(nil)
	done := notified(deps.notifier.EXPECT().NotifyAdminLogin(mock.Anything, adminEmail).Return().Call)

	session, err := svc.Login(context.Background(), " Admin@Schools.NYC.gov", "secret1")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, adminEmail, session.Email)
	waitNotified(t, done)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(deps authDeps)
		wantErr  error
	}{
		{
			name:    "missing password",
			email:   adminEmail,
			wantErr: domain.ErrValidation,
		},
		{
			name:     "foreign domain",
			email:    "admin@gmail.com",
			password: "secret1",
			wantErr:  domain.ErrInvalidEmailDomain,
		},
		{
			name:     "unknown admin",
			email:    adminEmail,
			password: "secret1",
			setup: func(deps authDeps) {
				deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(nil, domain.ErrAdminNotFound)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    adminEmail,
			password: "guess",
			setup: func(deps authDeps) {
				deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(&domain.Admin{
					Email:        adminEmail,
					PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
				}, nil)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAuthService(t)
			if tt.setup != nil {
				tt.setup(deps)
			}

			_, err := svc.Login(context.Background(), tt.email, tt.password)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	const token = "a3bb189e-8bf9-3888-9912-ace4e6543002"
	now := time.Now().UTC()

	t.Run("valid session", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.sessions.EXPECT().Get(mock.Anything, token).Return(&domain.AdminSession{
			Token: token, Email: adminEmail, ExpiresAt: now.Add(time.Minute),
		}, nil)
		deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(&domain.Admin{Email: adminEmail}, nil)

		session, err := svc.Authenticate(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, adminEmail, session.Email)
	})

	t.Run("non-canonical token", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.sessions.EXPECT().Get(mock.Anything, token).Return(&domain.AdminSession{
			Token: token, Email: adminEmail, ExpiresAt: now.Add(time.Minute),
		}, nil)
		deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(&domain.Admin{Email: adminEmail}, nil)

		_, err := svc.Authenticate(context.Background(), "urn:uuid:"+strings.ToUpper(token))

		require.NoError(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.Authenticate(context.Background(), "forged")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.sessions.EXPECT().Get(mock.Anything, token).Return(nil, domain.ErrSessionNotFound)

		_, err := svc.Authenticate(context.Background(), token)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("expired session", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.sessions.EXPECT().Get(mock.Anything, token).Return(&domain.AdminSession{
			Token: token, Email: adminEmail, ExpiresAt: now.Add(-time.Minute),
		}, nil)

		_, err := svc.Authenticate(context.Background(), token)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("admin removed", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.sessions.EXPECT().Get(mock.Anything, token).Return(&domain.AdminSession{
			Token: token, Email: adminEmail, ExpiresAt: now.Add(time.Minute),
		}, nil)
		deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(nil, domain.ErrAdminNotFound)

		_, err := svc.Authenticate(context.Background(), token)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	const token = "a3bb189e-8bf9-3888-9912-ace4e6543002"
	svc, deps := newAuthService(t)

	deps.sessions.EXPECT().Delete(mock.Anything, token).Return(domain.ErrSessionNotFound)

	require.NoError(t, svc.Logout(context.Background(), token))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, deps := newAuthService(t)

	deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(testAdmin(t, "secret1"), nil)
	deps.admins.EXPECT().UpdatePassword(mock.Anything, adminEmail, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret22")) == nil
	})).Return(nil)
	done := notified(deps.notifier.EXPECT().NotifyPasswordChanged(mock.Anything, adminEmail).Return().Call)

	err := svc.ChangePassword(context.Background(), testSession, "secret1", "secret22")

	require.NoError(t, err)
	waitNotified(t, done)
}

func TestAuthService_ChangePassword_Failures(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		svc, _ := newAuthService(t)

		err := svc.ChangePassword(context.Background(), testSession, "secret1", "abc")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(testAdmin(t, "secret1"), nil)

		err := svc.ChangePassword(context.Background(), testSession, "nope", "secret22")

		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})

	t.Run("admin missing", func(t *testing.T) {
		svc, deps := newAuthService(t)
		deps.admins.EXPECT().GetByEmail(mock.Anything, adminEmail).Return(nil, domain.ErrAdminNotFound)

		err := svc.ChangePassword(context.Background(), testSession, "secret1", "secret22")

		assert.ErrorIs(t, err, domain.ErrAdminNotFound)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, deps := newAuthService(t)

	deps.admins.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.Email == adminEmail && bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret1")) == nil
	})).Return(nil)

	admin, err := svc.EnsureAdmin(context.Background(), "ADMIN@schools.nyc.gov", "secret1")

	require.NoError(t, err)
	assert.Equal(t, adminEmail, admin.Email)

	_, err = svc.EnsureAdmin(context.Background(), "admin@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidEmailDomain)
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	svc, deps := newAuthService(t)

	deps.sessions.EXPECT().DeleteExpired(mock.Anything).Return(int64(3), nil).Once()
	deps.sessions.EXPECT().DeleteExpired(mock.Anything).Return(int64(0), errors.New("db down")).Once()

	n, err := svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.PurgeExpiredSessions(context.Background())
	require.Error(t, err)
}
