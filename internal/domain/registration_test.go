package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalID(t *testing.T) {
	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: id, want: id, ok: true},
		{in: "urn:uuid:" + id, want: id, ok: true},
		{in: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", want: id, ok: true},
		{in: "{" + id + "}", want: id, ok: true},
		{in: "6ba7b8109dad11d180b400c04fd430c8", want: id, ok: true},
		{in: " " + id + " ", want: id, ok: true},
		{in: "42", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create event: %w", Invalid("Program must be either %s or %s", ProgramAdultEd, ProgramNoAdultEd))

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Program must be either AdultEd or No-AdultEd", verr.Message)
}
