package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound means the authenticated identity has no timeclock
	// user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoLocationConfigured means no geofence exists, so no clock
	// operation can be evaluated.
	ErrNoLocationConfigured = errors.New("no location configured")

	// ErrAlreadyClockedIn means the user already holds an open shift.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrNoActiveShift means a clock-out was attempted with no open shift.
	ErrNoActiveShift = errors.New("no active clock-in found")

	// ErrInvalidInput covers admin payloads that fail domain validation.
	ErrInvalidInput = errors.New("invalid input")
)

// PerimeterError reports a clock attempt outside the geofence. It carries
// the computed distance and the allowed radius so the caller can see how
// far off they are.
type PerimeterError struct {
	DistanceKm float64
	AllowedKm  float64
}

func (e *PerimeterError) Error() string {
	return fmt.Sprintf("outside perimeter (%.2f km). allowed radius %.2f km", e.DistanceKm, e.AllowedKm)
}
