package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
)

// writeServiceError translates service-layer failures into the wire error
// envelope. Unknown errors become generic 500s so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var perr *service.PerimeterError
	switch {
	case errors.As(err, &perr):
		clocksdk.NewOutsidePerimeterError(perr.DistanceKm, perr.AllowedKm).Write(w)
	case errors.Is(err, service.ErrUserNotFound):
		clocksdk.ErrUserNotFound.Write(w)
	case errors.Is(err, service.ErrNoLocationConfigured):
		clocksdk.ErrNoLocationConfigured.Write(w)
	case errors.Is(err, service.ErrAlreadyClockedIn):
		clocksdk.ErrAlreadyClockedIn.Write(w)
	case errors.Is(err, service.ErrNoActiveShift):
		clocksdk.ErrNoActiveShift.Write(w)
	case errors.Is(err, service.ErrInvalidInput):
		clocksdk.NewValidationError(err.Error()).Write(w)
	case errors.Is(err, store.ErrNotFound):
		clocksdk.ErrNotFound.Write(w)
	case errors.Is(err, store.ErrAlreadyExists):
		clocksdk.ErrAlreadyExists.Write(w)
	default:
		clocksdk.ErrServerError.Write(w)
	}
}

func shiftView(s domain.Shift, user *domain.User) clocksdk.Shift {
	view := clocksdk.Shift{
		ID:               s.ID,
		UserID:           s.UserID,
		ClockInAt:        s.ClockInAt,
		ClockInLocation:  s.ClockInLocation,
		ClockOutAt:       s.ClockOutAt,
		ClockOutLocation: s.ClockOutLocation,
		NoteIn:           s.NoteIn,
		NoteOut:          s.NoteOut,
	}
	if user != nil {
		u := userView(*user)
		view.User = &u
	}
	return view
}

func userView(u domain.User) clocksdk.User {
	return clocksdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func locationView(l domain.Location) clocksdk.Location {
	return clocksdk.Location{
		ID:        l.ID,
		Name:      l.Name,
		Lat:       l.Latitude,
		Lng:       l.Longitude,
		RadiusKm:  l.RadiusKm,
		CreatedAt: l.CreatedAt,
	}
}
