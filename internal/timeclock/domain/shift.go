package domain

import "time"

// ManualLocation is recorded as the clock-out location when a user closes a
// shift without a position fix. Clock-out is deliberately more permissive
// than clock-in so a user without GPS cannot be stranded in an open shift.
const ManualLocation = "manual"

// Shift is a single clock-in/clock-out record. A shift with a nil ClockOutAt
// is open; a user may hold at most one open shift at a time, enforced by the
// store. Once closed a shift is never mutated again.
type Shift struct {
	ID               string
	UserID           string
	ClockInAt        time.Time
	ClockInLocation  string // "lat,lng" as submitted by the caller
	ClockOutAt       *time.Time
	ClockOutLocation *string // "lat,lng" or ManualLocation
	NoteIn           string
	NoteOut          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Open reports whether the shift has no recorded clock-out.
func (s Shift) Open() bool { return s.ClockOutAt == nil }

// Interval returns the shift's effective interval for overlap arithmetic.
// Open shifts are treated as ongoing until now.
func (s Shift) Interval(now time.Time) (start, end time.Time) {
	if s.ClockOutAt != nil {
		return s.ClockInAt, *s.ClockOutAt
	}
	return s.ClockInAt, now
}
