package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/yaml.v3"
)

type AdminEnsurer interface {
	EnsureAdmin(ctx context.Context, email, password string) (*domain.Admin, error)
}

type EventCreator interface {
	Create(ctx context.Context, session domain.AdminSession, input domain.CreateEventInput) (*domain.Event, error)
}

// EventFile is the YAML layout of an events seed file.
type EventFile struct {
	Events []EventEntry `yaml:"events"`
}

type EventEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Location    string `yaml:"location"`
	MaxSeats    int    `yaml:"max_seats"`
	Program     string `yaml:"program"`
}

// LoadEvents decodes an events file. Dates accept the same layouts as the admin API.
func LoadEvents(r io.Reader) ([]domain.CreateEventInput, error) {
	var file EventFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode events: %w", err)
	}

	inputs := make([]domain.CreateEventInput, 0, len(file.Events))
	for i, e := range file.Events {
		date, err := domain.ParseEventDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, e.Title, err)
		}
		inputs = append(inputs, domain.CreateEventInput{
			Title:       e.Title,
			Description: e.Description,
			Date:        date,
			Location:    e.Location,
			MaxSeats:    e.MaxSeats,
			Program:     domain.Program(e.Program),
		})
	}
	return inputs, nil
}

type Seeder struct {
	admins AdminEnsurer
	events EventCreator
	logger logger.Logger
}

func NewSeeder(admins AdminEnsurer, events EventCreator, logger logger.Logger) *Seeder {
	return &Seeder{
		admins: admins,
		events: events,
		logger: logger,
	}
}

// Admins creates every admin or resets its password. It stops at the first failure.
func (s *Seeder) Admins(ctx context.Context, emails []string, password string) error {
	for _, email := range emails {
		admin, err := s.admins.EnsureAdmin(ctx, email, password)
		if err != nil {
			return fmt.Errorf("seed admin %s: %w", email, err)
		}
		s.logger.Info("admin seeded", logger.String("admin", admin.Email))
	}
	return nil
}

// Events creates the events on behalf of the first seeded admin.
func (s *Seeder) Events(ctx context.Context, owner string, inputs []domain.CreateEventInput) (int, error) {
	session := domain.AdminSession{Email: domain.NormalizeEmail(owner)}

	created := 0
	for _, in := range inputs {
		event, err := s.events.Create(ctx, session, in)
		if err != nil {
			return created, fmt.Errorf("seed event %q: %w", in.Title, err)
		}
		created++
		s.logger.Info("event seeded",
			logger.String("event_id", event.ID),
			logger.String("title", event.Title),
		)
	}
	return created, nil
}
