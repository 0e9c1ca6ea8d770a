package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/jobs"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
	"github.com/tobi-adeyemi/extractflow/internal/sessions"
)

// staleClaimAfter is how long a post-processing claim may sit unfinished
// before another poller takes it over.
const staleClaimAfter = 10 * time.Minute

// Poller is the single background loop that drives every active job: it
// submits QUEUED jobs, polls POLLING jobs, and re-derives every active
// session so post-processing fires with no client attached — including
// sessions whose final aggregation was missed by a crash or a transient
// error. Multiple instances may run concurrently; conditional updates make
// the overlap safe.
type Poller struct {
	jobsRepo     repository.JobRepository
	sessionsRepo repository.SessionRepository
	tracker      *jobs.Tracker
	manager      *sessions.Service
	logger       *slog.Logger

	interval  time.Duration
	batchSize int
}

func NewPoller(
	jobsRepo repository.JobRepository,
	sessionsRepo repository.SessionRepository,
	tracker *jobs.Tracker,
	manager *sessions.Service,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Poller{
		jobsRepo:     jobsRepo,
		sessionsRepo: sessionsRepo,
		tracker:      tracker,
		manager:      manager,
		logger:       logger,
		interval:     interval,
		batchSize:    batchSize,
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("poller started", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller shutting down")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	now := time.Now()
	batch, err := p.jobsRepo.ListPollable(ctx, now, p.batchSize)
	if err != nil {
		p.logger.Error("listing pollable jobs failed", "err", err)
		return
	}

	sessionState := map[uuid.UUID]constants.SessionStatus{}

	for i := range batch {
		j := batch[i]
		// A cancelled or otherwise settled session stops its jobs on the
		// next cycle; the job-level conditional update closes the race
		// with a concurrent completion.
		if j.SessionID != nil {
			status, ok := sessionState[*j.SessionID]
			if !ok {
				s, err := p.sessionsRepo.Get(ctx, *j.SessionID)
				if err != nil {
					p.logger.Error("session lookup failed", "session_id", *j.SessionID, "err", err)
					continue
				}
				status = s.Status
				sessionState[*j.SessionID] = status
			}
			if status.IsTerminal() {
				continue
			}
		}

		switch j.Status {
		case constants.JobStatusQueued:
			if err := p.tracker.Submit(ctx, &j); err != nil {
				p.logger.Error("job submit failed", "job_id", j.ID, "err", err)
			}
		case constants.JobStatusPolling:
			if err := p.tracker.PollOnce(ctx, &j); err != nil {
				p.logger.Error("job poll failed", "job_id", j.ID, "err", err)
			}
		}
	}

	// Runs even on an empty batch: a session whose jobs all settled before
	// a restart has nothing pollable left but still needs its rollup.
	if err := p.manager.RecoverStalled(ctx, staleClaimAfter, p.batchSize); err != nil {
		p.logger.Error("stalled session recovery failed", "err", err)
	}
}
