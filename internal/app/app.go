package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventRegistration/internal/config"
	"github.com/stpnv0/EventRegistration/internal/handler"
	"github.com/stpnv0/EventRegistration/internal/middleware"
	"github.com/stpnv0/EventRegistration/internal/notification"
	"github.com/stpnv0/EventRegistration/internal/repository"
	"github.com/stpnv0/EventRegistration/internal/router"
	"github.com/stpnv0/EventRegistration/internal/scheduler"
	"github.com/stpnv0/EventRegistration/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "EventRegistration"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := Connect(a.cfg.Postgres)
	if err != nil {
		return err
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// Connect opens the pooled connection and checks it is reachable.
func Connect(cfg config.PostgresConfig) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func (a *App) initServices() error {
	limits := a.cfg.Registration.Limits()
	if err := limits.Validate(); err != nil {
		return fmt.Errorf("registration limits: %w", err)
	}

	eventRepo := repository.NewEventRepo(a.db)
	registrationRepo := repository.NewRegistrationRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	eventService := service.NewEventService(eventRepo, a.log)
	registrationService := service.NewRegistrationService(
		registrationRepo,
		service.RegistrationOptions{
			EmailDomain: a.cfg.Registration.EmailDomain,
			Limits:      limits,
		},
		a.log,
	)
	authService := service.NewAuthService(
		adminRepo,
		sessionRepo,
		n,
		service.AuthOptions{
			EmailDomain: a.cfg.Auth.EmailDomain,
			SessionTTL:  a.cfg.Auth.SessionTTL,
			BcryptCost:  a.cfg.Auth.BcryptCost,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		authService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, registrationService, authService, handler.Options{
		CookieName:   a.cfg.Auth.CookieName,
		CookieSecure: a.cfg.Auth.CookieSecure,
		PublicURL:    a.cfg.Registration.PublicURL,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequireAdmin(authService, a.cfg.Auth.CookieName),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	if err := Migrate(a.cfg.Postgres.DSN(), migrationsDir); err != nil {
		return err
	}

	a.log.Info("migrations applied successfully")
	return nil
}

// Migrate applies the goose migrations in dir to the database at dsn.
func Migrate(dsn, dir string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
