package domain

import "time"

type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminSession identifies the authenticated admin behind a request. Every
// admin-gated operation receives it explicitly.
type AdminSession struct {
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
