package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
)

// staleOpenShiftAge is how long a shift may stay open before housekeeping
// flags it as likely forgotten.
const staleOpenShiftAge = 24 * time.Hour

// HousekeepingService periodically prunes closed shifts past their
// retention window and reports shifts left open for suspiciously long.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Retention is how long closed shifts are kept. Zero or negative
	// disables pruning; the ledger then grows unbounded.
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     store,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup prunes expired shift records and warns about stale open shifts.
// Each step is independent; a failure in one won't stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping cleanup")

	if s.Retention > 0 {
		cutoff := time.Now().UTC().Add(-s.Retention)
		deleted, err := s.Store.Shifts().DeleteShiftsClosedBefore(ctx, cutoff)
		if err != nil {
			s.Logger.Error("failed to prune closed shifts", "error", err)
		} else if deleted > 0 {
			s.Logger.Info("pruned closed shifts",
				"deleted", deleted,
				"cutoff", cutoff,
			)
		}
	}

	open, err := s.Store.Shifts().ListOpenShifts(ctx)
	if err != nil {
		s.Logger.Error("failed to list open shifts", "error", err)
		return
	}
	for _, shift := range open {
		age := time.Since(shift.ClockInAt)
		if age >= staleOpenShiftAge {
			s.Logger.Warn("shift open for an unusually long time",
				"shift_id", shift.ID,
				"user_id", shift.UserID,
				"clocked_in_at", shift.ClockInAt,
				"age", age,
			)
		}
	}
}
