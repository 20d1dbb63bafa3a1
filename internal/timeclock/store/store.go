package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and it is the layer that makes the one-open-shift
// invariant durable: drivers must reject a second open shift for the same
// user with ErrAlreadyExists regardless of application ordering.
type Store interface {
	Users() Users
	Shifts() Shifts
	Locations() Locations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., the
	// clock-in check-then-insert). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail resolves external identities (token subjects carry the
	// user id, but some IdPs only assert an email).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Duplicate emails return ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser removes a user; their shift records are retained.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Shifts interface {
	// GetShiftByID returns a shift by id.
	GetShiftByID(ctx context.Context, id string) (domain.Shift, error)

	// GetOpenShift returns the user's open shift, most recent clock-in
	// first. ErrNotFound when the user has no open shift.
	GetOpenShift(ctx context.Context, userID string) (domain.Shift, error)

	// CreateShift inserts a new open shift. A second open shift for the
	// same user violates the partial unique index and returns
	// ErrAlreadyExists.
	CreateShift(ctx context.Context, s domain.Shift) error

	// CloseShift sets clock_out_at, clock_out_location and note_out on an
	// open shift. Closing an already-closed shift returns ErrNotFound so
	// closed records stay immutable.
	CloseShift(ctx context.Context, shiftID string, at time.Time, location, noteOut string) error

	// ListShiftsOverlapping returns every shift whose interval intersects
	// [from, to]; open shifts are included when they started before `to`.
	ListShiftsOverlapping(ctx context.Context, from, to time.Time) ([]domain.Shift, error)

	// ListOpenShifts returns all open shifts ordered by clock-in time
	// descending.
	ListOpenShifts(ctx context.Context) ([]domain.Shift, error)

	// ListShiftsByUser returns the user's shifts newest first, up to limit.
	ListShiftsByUser(ctx context.Context, userID string, limit int) ([]domain.Shift, error)

	// ListShifts returns all shifts newest first.
	ListShifts(ctx context.Context) ([]domain.Shift, error)

	// DeleteShiftsClosedBefore removes closed shifts whose clock-out is
	// older than cutoff (retention housekeeping). Open shifts are never
	// touched. Returns the number of rows removed.
	DeleteShiftsClosedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Locations interface {
	// GetLocationByID fetches a geofence by id.
	GetLocationByID(ctx context.Context, id string) (domain.Location, error)

	// Canonical returns the single geofence clock operations consult: the
	// earliest-created location. ErrNotFound when none is configured.
	Canonical(ctx context.Context) (domain.Location, error)

	// CreateLocation inserts a new geofence (id is ULID).
	CreateLocation(ctx context.Context, l domain.Location) error

	// ListLocations returns all geofences ordered by creation date (oldest
	// first, so the canonical one leads).
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// DeleteLocation removes a geofence.
	DeleteLocation(ctx context.Context, locationID string) error

	// IsEmpty returns true if there are no locations.
	IsEmpty(ctx context.Context) (bool, error)
}
