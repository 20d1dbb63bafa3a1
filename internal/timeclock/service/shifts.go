package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
)

// defaultShiftLimit caps per-user shift listings when the caller does not
// ask for a specific page size.
const defaultShiftLimit = 50

// ShiftService exposes read access to the shift ledger.
type ShiftService struct {
	Store store.Store
}

// GetShiftByID fetches a single shift.
func (s *ShiftService) GetShiftByID(ctx context.Context, shiftID string) (domain.Shift, error) {
	return s.Store.Shifts().GetShiftByID(ctx, shiftID)
}

// ListShifts returns shifts for the admin view. When from and to are both
// set, only shifts overlapping [from, to] are returned; openOnly restricts
// the result to shifts still running.
func (s *ShiftService) ListShifts(ctx context.Context, from, to *time.Time, openOnly bool) ([]domain.Shift, error) {
	if openOnly {
		return s.Store.Shifts().ListOpenShifts(ctx)
	}
	if from != nil && to != nil {
		return s.Store.Shifts().ListShiftsOverlapping(ctx, from.UTC(), to.UTC())
	}
	return s.Store.Shifts().ListShifts(ctx)
}

// ListShiftsForUser returns the user's own shift history, newest first.
func (s *ShiftService) ListShiftsForUser(ctx context.Context, userID string, limit int) ([]domain.Shift, error) {
	if limit <= 0 {
		limit = defaultShiftLimit
	}
	return s.Store.Shifts().ListShiftsByUser(ctx, userID, limit)
}
