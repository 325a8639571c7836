package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRegistrations(t *testing.T) {
	regs := []*domain.RegistrationDetails{
		{
			Registration: domain.Registration{
				ID:             "r1",
				FirstName:      "Ana",
				LastName:       "Lopez",
				Email:          "ana@schools.nyc.gov",
				School:         "PS 123, Bronx",
				Position:       "Teacher",
				TicketQuantity: 3,
				CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
			},
			Event: domain.Event{
				Title:    "STEM Night",
				Date:     time.Date(2026, 11, 5, 18, 30, 0, 0, time.UTC),
				Location: "Tweed Courthouse",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegistrations(&buf, regs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{
		"STEM Night", "2026-11-05 18:30", "Tweed Courthouse",
		"Ana", "Lopez", "ana@schools.nyc.gov", "PS 123, Bronx", "Teacher",
		"3", "2026-10-01T09:00:00Z",
	}, records[1])
}

func TestWriteRegistrations_NeutralizesFormulas(t *testing.T) {
	regs := []*domain.RegistrationDetails{
		{
			Registration: domain.Registration{
				FirstName:      "=HYPERLINK(\"http://evil.example\",\"x\")",
				LastName:       "+1+1",
				Email:          "@sum@schools.nyc.gov",
				School:         "-2",
				Position:       "Teacher - Grade 3",
				TicketQuantity: 1,
			},
			Event: domain.Event{Title: "STEM Night", Location: "\tTab"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegistrations(&buf, regs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "STEM Night", row[0])
	assert.Equal(t, "'\tTab", row[2])
	assert.Equal(t, `'=HYPERLINK("http://evil.example","x")`, row[3])
	assert.Equal(t, "'+1+1", row[4])
	assert.Equal(t, "'@sum@schools.nyc.gov", row[5])
	assert.Equal(t, "'-2", row[6])
	assert.Equal(t, "Teacher - Grade 3", row[7])
}

func TestWriteRegistrations_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegistrations(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "registrations-2026-10-18.csv", FileName(time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)))
}
