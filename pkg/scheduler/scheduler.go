// Package scheduler runs periodic maintenance, currently expired session
// cleanup.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Database interface for maintenance operations
type Database interface {
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// Scheduler purges expired sessions on an interval
type Scheduler struct {
	db       Database
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a maintenance scheduler. A zero interval defaults
// to one hour.
func NewScheduler(database Database, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = time.Hour
	}
	return &Scheduler{db: database, interval: interval}
}

// Start begins the maintenance loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.sessionCleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with session cleanup interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// sessionCleanupWorker periodically removes expired sessions
func (s *Scheduler) sessionCleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.cleanupSessions(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupSessions(ctx)
		}
	}
}

func (s *Scheduler) cleanupSessions(ctx context.Context) {
	deleted, err := s.db.DeleteExpiredSessions(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to delete expired sessions: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] deleted %d expired sessions", deleted)
	}
}
