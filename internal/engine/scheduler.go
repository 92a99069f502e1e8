package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/ecycle/internal/metrics"
)

// backfillTimeout bounds one certificate backfill run.
const backfillTimeout = 5 * time.Minute

// Scheduler runs the certificate backfill on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	backfillEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that calls IssueDueCertificates every
// interval.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runBackfill)
	if err != nil {
		return nil, err
	}
	s.backfillEntryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next backfill time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	entry := s.cron.Entry(s.backfillEntryID)
	if entry.Next.IsZero() {
		return
	}
	metrics.SchedulerNextBackfillTimestamp.Set(float64(entry.Next.Unix()))
}

func (s *Scheduler) runBackfill() {
	ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
	defer cancel()
	defer s.SyncNextRunTimestamps()

	s.log.Info("scheduled certificate backfill starting")
	n, err := s.engine.IssueDueCertificates(ctx)
	if err != nil {
		s.log.Error("scheduled certificate backfill failed", "error", err, "issued", n)
	}
}
