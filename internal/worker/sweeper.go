package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/tobi-adeyemi/extractflow/internal/cleanup"
)

// Sweeper drives the expiration engine on its own timer, independent of the
// poller.
type Sweeper struct {
	engine   *cleanup.Engine
	logger   *slog.Logger
	interval time.Duration
}

func NewSweeper(engine *cleanup.Engine, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{engine: engine, logger: logger, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("sweeper started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper shutting down")
			return
		case <-ticker.C:
			if _, err := s.engine.Sweep(ctx); err != nil {
				s.logger.Error("cleanup sweep failed", "err", err)
			}
		}
	}
}
