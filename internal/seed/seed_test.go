package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/seed/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const eventsYAML = `
events:
  - title: Literacy Workshop
    description: Strategies for early readers
    date: "2025-11-20T09:30"
    location: Tweed Courthouse
    max_seats: 40
    program: AdultEd
  - title: STEM Fair
    description: Borough-wide showcase
    date: "2025-12-02"
    location: Brooklyn Tech
    max_seats: 120
`

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestLoadEvents(t *testing.T) {
	inputs, err := LoadEvents(strings.NewReader(eventsYAML))

	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Literacy Workshop", inputs[0].Title)
	assert.Equal(t, time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC), inputs[0].Date)
	assert.Equal(t, 40, inputs[0].MaxSeats)
	assert.Equal(t, domain.ProgramAdultEd, inputs[0].Program)
	assert.Equal(t, domain.Program(""), inputs[1].Program)
	assert.Equal(t, 120, inputs[1].MaxSeats)
}

func TestLoadEvents_Empty(t *testing.T) {
	inputs, err := LoadEvents(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestLoadEvents_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad date", doc: "events:\n  - title: A\n    date: \"next tuesday\"\n"},
		{name: "unknown field", doc: "events:\n  - title: A\n    seats: 3\n"},
		{name: "not yaml", doc: "events: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEvents(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestSeeder_Admins(t *testing.T) {
	admins := mocks.NewMockAdminEnsurer(t)
	s := NewSeeder(admins, mocks.NewMockEventCreator(t), newTestLogger(t))

	admins.EXPECT().EnsureAdmin(mock.Anything, "a@schools.nyc.gov", "secret1").
		Return(&domain.Admin{Email: "a@schools.nyc.gov"}, nil)
	admins.EXPECT().EnsureAdmin(mock.Anything, "b@gmail.com", "secret1").
		Return(nil, &domain.EmailDomainError{Domain: "@schools.nyc.gov"})

	err := s.Admins(context.Background(), []string{"a@schools.nyc.gov", "b@gmail.com", "c@schools.nyc.gov"}, "secret1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEmailDomain)
	assert.Contains(t, err.Error(), "b@gmail.com")
}

func TestSeeder_Events(t *testing.T) {
	events := mocks.NewMockEventCreator(t)
	s := NewSeeder(mocks.NewMockAdminEnsurer(t), events, newTestLogger(t))

	inputs := []domain.CreateEventInput{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}
	owner := mock.MatchedBy(func(session domain.AdminSession) bool {
		return session.Email == "admin@schools.nyc.gov"
	})
	events.EXPECT().Create(mock.Anything, owner, inputs[0]).Return(&domain.Event{ID: "e1", Title: "One"}, nil)
	events.EXPECT().Create(mock.Anything, owner, inputs[1]).Return(nil, errors.New("db down"))

	created, err := s.Events(context.Background(), " Admin@Schools.nyc.gov", inputs)

	require.Error(t, err)
	assert.Equal(t, 1, created)
	assert.Contains(t, err.Error(), `"Two"`)
}
