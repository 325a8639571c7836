package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/stpnv0/EventRegistration/internal/app"
	"github.com/stpnv0/EventRegistration/internal/config"
	"github.com/stpnv0/EventRegistration/internal/notification"
	"github.com/stpnv0/EventRegistration/internal/repository"
	"github.com/stpnv0/EventRegistration/internal/seed"
	"github.com/stpnv0/EventRegistration/internal/service"
	"github.com/wb-go/wbf/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		admins     []string
		password   string
		eventsPath string
		migrations string
	)

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringArrayVar(&admins, "admin", nil, "admin email to create or reset (repeatable)")
	flagSet.StringVar(&password, "admin-password", os.Getenv("ADMIN_PASSWORD"), "password for the seeded admins")
	flagSet.StringVar(&eventsPath, "events", "", "YAML file with events to create")
	flagSet.StringVar(&migrations, "migrations", "migrations", "goose migrations directory")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if len(admins) == 0 {
		return fmt.Errorf("at least one --admin is required")
	}
	if password == "" {
		return fmt.Errorf("--admin-password or ADMIN_PASSWORD is required")
	}

	cfg := config.MustLoad()

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventRegistration-seed",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if err = app.Migrate(cfg.Postgres.DSN(), migrations); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := app.Connect(cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Master.Close()

	// Seeding never alerts the admin chat.
	notifier, err := notification.NewTelegramNotifier("", 0, log)
	if err != nil {
		return err
	}

	authService := service.NewAuthService(
		repository.NewAdminRepo(db),
		repository.NewSessionRepo(db),
		notifier,
		service.AuthOptions{
			EmailDomain: cfg.Auth.EmailDomain,
			SessionTTL:  cfg.Auth.SessionTTL,
			BcryptCost:  cfg.Auth.BcryptCost,
		},
		log,
	)
	eventService := service.NewEventService(repository.NewEventRepo(db), log)
	seeder := seed.NewSeeder(authService, eventService, log)

	ctx := context.Background()
	if err = seeder.Admins(ctx, admins, password); err != nil {
		return err
	}

	if eventsPath == "" {
		return nil
	}

	f, err := os.Open(eventsPath)
	if err != nil {
		return fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	inputs, err := seed.LoadEvents(f)
	if err != nil {
		return err
	}

	created, err := seeder.Events(ctx, admins[0], inputs)
	if err != nil {
		return err
	}
	log.Info("seed complete", logger.Int("events", created), logger.Int("admins", len(admins)))

	return nil
}
