// Package scheduler runs the periodic advertisement expiry job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// AdExpirer is the slice of the advertisement use case the job needs.
type AdExpirer interface {
	ExpireEndedAds(ctx context.Context) (int64, error)
}

// Scheduler wraps robfig/cron and owns the expiry job.
type Scheduler struct {
	cron    *cron.Cron
	expirer AdExpirer
	log     *slog.Logger
	spec    string
	timeout time.Duration
	startup sync.WaitGroup
}

// New creates a Scheduler firing on spec, e.g. "@every 15m" or "0 * * * *".
func New(expirer AdExpirer, spec string, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		expirer: expirer,
		log:     log,
		spec:    spec,
		timeout: time.Minute,
	}
}

// Start registers the job and starts the scheduler. One run happens
// immediately so ads that ended while the service was down are expired.
// That run goes through the same wrapped job as scheduled ticks, so a tick
// firing while it is still in progress is skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	id, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) })
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	job := s.cron.Entry(id).WrappedJob

	s.cron.Start()
	s.log.Info("Scheduler started", "spec", s.spec)

	s.startup.Add(1)
	go func() {
		defer s.startup.Done()
		job.Run()
	}()
	return nil
}

// Stop waits for running jobs, the start-up run included, to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.startup.Wait()
	s.log.Info("Scheduler stopped")
}

// RunOnce expires ads whose end date has passed.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.expirer.ExpireEndedAds(ctx)
	if err != nil {
		s.log.Error("Ad expiry failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("Expired advertisements", "count", n)
	}
}
