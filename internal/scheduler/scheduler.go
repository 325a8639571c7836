package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// Scheduler drops expired admin sessions on start and then every interval.
type Scheduler struct {
	purger   sessionPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	purger sessionPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session purge scheduled",
		logger.Duration("interval", s.interval),
	)

	if ctx.Err() == nil {
		s.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session purge stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Info("expired sessions purged",
			logger.Int64("count", n),
		)
	}
}
