package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrSessionNotFound      = errors.New("session not found")
)

var (
	ErrQuotaExceeded         = errors.New("ticket quota exceeded")
	ErrAlreadyRegistered     = errors.New("You have already registered for this event")
	ErrInvalidTicketQuantity = errors.New("invalid ticket quantity")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidEmailDomain = errors.New("invalid email domain")
)

// EmailDomainError rejects an email outside the allowed domain.
type EmailDomainError struct {
	Domain string
}

func (e *EmailDomainError) Error() string {
	return "Invalid email domain. Must be " + e.Domain
}

func (e *EmailDomainError) Unwrap() error { return ErrInvalidEmailDomain }

// ValidationError is a rejected input. Message is shown to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
