package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

type ClockHandler struct {
	ClockService *service.ClockService
}

func callerIdentity(r *http.Request) service.Identity {
	return service.Identity{
		UserID: httpx.UserIDFromCtx(r.Context()),
		Email:  httpx.EmailFromCtx(r.Context()),
	}
}

// HandleClockIn opens a shift for the caller.
//
//	@Summary		Clock in
//	@Description	Opens a shift at the submitted coordinates. Fails when the position
//	@Description	is outside the configured perimeter or a shift is already open.
//	@Tags			Clock
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clocksdk.ClockInRequest	true	"Coordinates and optional note"
//	@Success		201		{object}	clocksdk.Shift			"The opened shift"
//	@Failure		400		{object}	clocksdk.APIError		"Missing or malformed coordinates"
//	@Failure		401		{object}	clocksdk.APIError		"Invalid or missing access token"
//	@Failure		403		{object}	clocksdk.APIError		"Outside the configured perimeter"
//	@Failure		404		{object}	clocksdk.APIError		"Caller is not a registered user"
//	@Failure		409		{object}	clocksdk.APIError		"Shift already open, or no location configured"
//	@Router			/v1/clock/in [post].
func (h *ClockHandler) HandleClockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clocksdk.ClockInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}
	if req.Lat == nil || req.Lng == nil {
		clocksdk.NewValidationError("lat and lng are required").Write(w)
		return
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
		clocksdk.NewValidationError("lat must be within [-90, 90] and lng within [-180, 180]").Write(w)
		return
	}

	shift, _, err := h.ClockService.ClockIn(ctx, callerIdentity(r), *req.Lat, *req.Lng, req.Note)
	if err != nil {
		log.Debug("clock-in rejected", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, shiftView(shift, nil))
}

// HandleClockOut closes the caller's open shift.
//
//	@Summary		Clock out
//	@Description	Closes the open shift. Coordinates are optional; when omitted the
//	@Description	clock-out is recorded as manual with no perimeter check.
//	@Tags			Clock
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clocksdk.ClockOutRequest	true	"Optional coordinates and note"
//	@Success		200		{object}	clocksdk.Shift				"The closed shift"
//	@Failure		401		{object}	clocksdk.APIError			"Invalid or missing access token"
//	@Failure		403		{object}	clocksdk.APIError			"Outside the configured perimeter"
//	@Failure		404		{object}	clocksdk.APIError			"Caller is not a registered user"
//	@Failure		409		{object}	clocksdk.APIError			"No open shift"
//	@Router			/v1/clock/out [post].
func (h *ClockHandler) HandleClockOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clocksdk.ClockOutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}
	// Both or neither: a lone coordinate is meaningless.
	if (req.Lat == nil) != (req.Lng == nil) {
		clocksdk.NewValidationError("lat and lng must be provided together").Write(w)
		return
	}

	shift, _, err := h.ClockService.ClockOut(ctx, callerIdentity(r), req.Lat, req.Lng, req.Note)
	if err != nil {
		log.Debug("clock-out rejected", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, shiftView(shift, nil))
}

// HandleStatus reports whether the caller holds an open shift.
//
//	@Summary		Clock status
//	@Description	Returns the caller's open shift, if any.
//	@Tags			Clock
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clocksdk.ClockStatusResponse
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		404	{object}	clocksdk.APIError	"Caller is not a registered user"
//	@Router			/v1/clock/status [get].
func (h *ClockHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shift, _, clockedIn, err := h.ClockService.Status(ctx, callerIdentity(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := clocksdk.ClockStatusResponse{ClockedIn: clockedIn}
	if clockedIn {
		view := shiftView(shift, nil)
		response.Shift = &view
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
