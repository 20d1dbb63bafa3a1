package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/geo"
	"github.com/aussiebroadwan/timeclock/pkg/idx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

// Identity is the caller as asserted by the identity provider. UserID is
// the token subject; Email is the fallback for IdPs that only assert an
// address.
type Identity struct {
	UserID string
	Email  string
}

// ClockService mediates every clock-in/clock-out request into a consistent,
// geofenced ledger of shifts. Checks run in a fixed order and the first
// failure wins; nothing is written until every check passes.
type ClockService struct {
	Store store.Store

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *ClockService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolveUser maps the external identity onto a timeclock user: by token
// subject first, then by email.
func (s *ClockService) resolveUser(ctx context.Context, ident Identity) (domain.User, error) {
	if ident.UserID != "" {
		user, err := s.Store.Users().GetUserByID(ctx, ident.UserID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
	}

	if ident.Email != "" {
		user, err := s.Store.Users().GetUserByEmail(ctx, ident.Email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
	}

	return domain.User{}, ErrUserNotFound
}

// ClockIn opens a shift for the caller at (lat, lng). Checks, in order:
// known user, configured geofence, inside perimeter (boundary inclusive),
// no open shift. The open-shift check and the insert run in one
// transaction, and the store's partial unique index backs the invariant if
// two clock-ins race anyway.
func (s *ClockService) ClockIn(
	ctx context.Context,
	ident Identity,
	lat, lng float64,
	note string,
) (domain.Shift, domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.resolveUser(ctx, ident)
	if err != nil {
		return domain.Shift{}, domain.User{}, err
	}

	location, err := s.Store.Locations().Canonical(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shift{}, domain.User{}, ErrNoLocationConfigured
		}
		return domain.Shift{}, domain.User{}, err
	}

	distance := geo.DistanceKm(lat, lng, location.Latitude, location.Longitude)
	if distance > location.RadiusKm {
		log.Warn("clock-in outside perimeter",
			slog.String("user_id", user.ID),
			slog.Float64("distance_km", distance),
			slog.Float64("allowed_km", location.RadiusKm),
		)
		return domain.Shift{}, domain.User{}, &PerimeterError{
			DistanceKm: distance,
			AllowedKm:  location.RadiusKm,
		}
	}

	shift := domain.Shift{
		ID:              idx.New().String(),
		UserID:          user.ID,
		ClockInAt:       s.now().UTC(),
		ClockInLocation: formatCoords(lat, lng),
		NoteIn:          note,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Shifts().GetOpenShift(ctx, user.ID)
		if err == nil {
			return ErrAlreadyClockedIn
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Shifts().CreateShift(ctx, shift)
	})
	if err != nil {
		// The unique index catches the race the transaction's read missed.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Shift{}, domain.User{}, ErrAlreadyClockedIn
		}
		return domain.Shift{}, domain.User{}, err
	}

	log.Info("shift opened",
		slog.String("shift_id", shift.ID),
		slog.String("user_id", user.ID),
		slog.Float64("distance_km", distance),
	)

	return shift, user, nil
}

// ClockOut closes the caller's most recent open shift. Coordinates are
// optional: when present the perimeter check applies exactly as on
// clock-in; when absent the clock-out location is recorded as "manual" so a
// user without a position fix is never stranded in an open shift.
func (s *ClockService) ClockOut(
	ctx context.Context,
	ident Identity,
	lat, lng *float64,
	note string,
) (domain.Shift, domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.resolveUser(ctx, ident)
	if err != nil {
		return domain.Shift{}, domain.User{}, err
	}

	open, err := s.Store.Shifts().GetOpenShift(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shift{}, domain.User{}, ErrNoActiveShift
		}
		return domain.Shift{}, domain.User{}, err
	}

	location, err := s.Store.Locations().Canonical(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shift{}, domain.User{}, ErrNoLocationConfigured
		}
		return domain.Shift{}, domain.User{}, err
	}

	outLocation := domain.ManualLocation
	if lat != nil && lng != nil {
		distance := geo.DistanceKm(*lat, *lng, location.Latitude, location.Longitude)
		if distance > location.RadiusKm {
			log.Warn("clock-out outside perimeter",
				slog.String("user_id", user.ID),
				slog.Float64("distance_km", distance),
				slog.Float64("allowed_km", location.RadiusKm),
			)
			return domain.Shift{}, domain.User{}, &PerimeterError{
				DistanceKm: distance,
				AllowedKm:  location.RadiusKm,
			}
		}
		outLocation = formatCoords(*lat, *lng)
	}

	if err := s.Store.Shifts().CloseShift(ctx, open.ID, s.now().UTC(), outLocation, note); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Someone closed it between our read and the update.
			return domain.Shift{}, domain.User{}, ErrNoActiveShift
		}
		return domain.Shift{}, domain.User{}, err
	}

	closed, err := s.Store.Shifts().GetShiftByID(ctx, open.ID)
	if err != nil {
		return domain.Shift{}, domain.User{}, err
	}

	log.Info("shift closed",
		slog.String("shift_id", closed.ID),
		slog.String("user_id", user.ID),
		slog.String("clock_out_location", outLocation),
	)

	return closed, user, nil
}

// Status returns the caller's open shift, if any.
func (s *ClockService) Status(ctx context.Context, ident Identity) (domain.Shift, domain.User, bool, error) {
	user, err := s.resolveUser(ctx, ident)
	if err != nil {
		return domain.Shift{}, domain.User{}, false, err
	}

	open, err := s.Store.Shifts().GetOpenShift(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shift{}, user, false, nil
		}
		return domain.Shift{}, domain.User{}, false, err
	}

	return open, user, true, nil
}

// formatCoords renders submitted coordinates in the "lat,lng" form stored
// on shift records.
func formatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
