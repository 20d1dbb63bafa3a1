package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

type ShiftsHandler struct {
	ShiftService *service.ShiftService
	ClockService *service.ClockService
	UserService  *service.UserService
}

// HandleList returns shifts for the admin audit view.
//
//	@Summary		List shifts
//	@Description	Returns shifts newest first, joined with their users. Requires 'admin:read'.
//	@Description	Optional filters: from/to (RFC3339, both required together) and open=true.
//	@Tags			Shifts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string	false	"Window start (RFC3339)"
//	@Param			to		query		string	false	"Window end (RFC3339)"
//	@Param			open	query		bool	false	"Only shifts still open"
//	@Success		200		{array}		clocksdk.Shift
//	@Failure		400		{object}	clocksdk.APIError	"Malformed filters"
//	@Failure		401		{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403		{object}	clocksdk.APIError	"Missing 'admin:read' scope"
//	@Router			/v1/shifts [get].
func (h *ShiftsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			clocksdk.NewValidationError("from must be RFC3339").Write(w)
			return
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			clocksdk.NewValidationError("to must be RFC3339").Write(w)
			return
		}
		to = &t
	}
	if (from == nil) != (to == nil) {
		clocksdk.NewValidationError("from and to must be provided together").Write(w)
		return
	}

	openOnly, _ := strconv.ParseBool(r.URL.Query().Get("open"))

	shifts, err := h.ShiftService.ListShifts(ctx, from, to, openOnly)
	if err != nil {
		log.Error("failed to list shifts", "err", err)
		writeServiceError(w, err)
		return
	}

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		writeServiceError(w, err)
		return
	}
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	views := make([]clocksdk.Shift, 0, len(shifts))
	for _, s := range shifts {
		var user *domain.User
		if u, ok := byID[s.UserID]; ok {
			user = &u
		}
		views = append(views, shiftView(s, user))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleListMine returns the caller's own recent shifts.
//
//	@Summary		List my shifts
//	@Description	Returns the authenticated caller's shifts, newest first.
//	@Tags			Shifts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum records to return (default 50)"
//	@Success		200		{array}		clocksdk.Shift
//	@Failure		401		{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		404		{object}	clocksdk.APIError	"Caller is not a registered user"
//	@Router			/v1/shifts/me [get].
func (h *ShiftsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Resolve through the same identity fallback clock operations use.
	_, user, _, err := h.ClockService.Status(ctx, callerIdentity(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	shifts, err := h.ShiftService.ListShiftsForUser(ctx, user.ID, limit)
	if err != nil {
		log.Error("failed to list user shifts", "user_id", user.ID, "err", err)
		writeServiceError(w, err)
		return
	}

	views := make([]clocksdk.Shift, 0, len(shifts))
	for _, s := range shifts {
		views = append(views, shiftView(s, nil))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, views)
}
