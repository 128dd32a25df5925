// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Reconciler repairs derived state and reports how many records changed
type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// Scheduler wraps a gocron scheduler
type Scheduler struct {
	sched  gocron.Scheduler
	logger *zap.Logger
}

// New creates a stopped scheduler
func New(logger *zap.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{sched: sched, logger: logger}, nil
}

// AddReconcileJob runs r every interval. Overlapping runs are skipped.
func (s *Scheduler) AddReconcileJob(name string, r Reconciler, interval, timeout time.Duration) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			repaired, err := r.Reconcile(ctx)
			if err != nil {
				s.logger.Error("Scheduled job failed", zap.String("job", name), zap.Error(err))
				return
			}
			s.logger.Debug("Scheduled job finished", zap.String("job", name), zap.Int("repaired", repaired))
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", name, err)
	}
	return nil
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Shutdown stops the scheduler and waits for running jobs
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}
