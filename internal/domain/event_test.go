package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	p, err := ParseProgram("AdultEd")
	require.NoError(t, err)
	assert.Equal(t, ProgramAdultEd, p)

	p, err = ParseProgram(" No-AdultEd ")
	require.NoError(t, err)
	assert.Equal(t, ProgramNoAdultEd, p)

	_, err = ParseProgram("Kids")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseEventDate(t *testing.T) {
	want := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)

	for _, in := range []string{"2025-06-11T14:00:00Z", "2025-06-11T10:00:00-04:00", "2025-06-11T14:00"} {
		got, err := ParseEventDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	got, err := ParseEventDate("2025-06-11")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseEventDate("next tuesday")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateEventInput_Apply(t *testing.T) {
	e := Event{Title: "Old", Location: "Broadway", MaxSeats: 30, Program: ProgramNoAdultEd}
	title := "MJ The Musical"
	seats := 12

	in := UpdateEventInput{Title: &title, MaxSeats: &seats}
	require.False(t, in.IsEmpty())
	in.Apply(&e)

	assert.Equal(t, "MJ The Musical", e.Title)
	assert.Equal(t, 12, e.MaxSeats)
	assert.Equal(t, "Broadway", e.Location)
	assert.Equal(t, ProgramNoAdultEd, e.Program)
	assert.True(t, UpdateEventInput{}.IsEmpty())
}

func TestEventAvailability_AvailableTickets(t *testing.T) {
	a := EventAvailability{Event: Event{MaxSeats: 5}, TicketsTaken: 3}
	assert.Equal(t, 2, a.AvailableTickets())

	a.Event.MaxSeats = 2
	assert.Equal(t, -1, a.AvailableTickets())
}

func TestHasEmailDomain(t *testing.T) {
	assert.True(t, HasEmailDomain("JDoe@Schools.NYC.gov ", "@schools.nyc.gov"))
	assert.False(t, HasEmailDomain("jdoe@gmail.com", "@schools.nyc.gov"))
	assert.False(t, HasEmailDomain("jdoe@schools.nyc.gov.evil.com", "@schools.nyc.gov"))
}
