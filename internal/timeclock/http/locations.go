package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

type LocationsHandler struct {
	LocationService *service.LocationService
}

// HandleCreate registers a new geofence.
//
//	@Summary		Create location
//	@Description	Registers a geofence. The earliest-created location is the one clock
//	@Description	operations validate against. Requires 'admin:write'.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clocksdk.CreateLocationRequest	true	"Name, coordinates and radius in km"
//	@Success		201		{object}	clocksdk.Location
//	@Failure		400		{object}	clocksdk.APIError	"Missing or invalid fields"
//	@Failure		401		{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403		{object}	clocksdk.APIError	"Missing 'admin:write' scope"
//	@Router			/v1/locations [post].
func (h *LocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clocksdk.CreateLocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}
	if req.Lat == nil || req.Lng == nil || req.RadiusKm == nil {
		clocksdk.NewValidationError("lat, lng and radius_km are required").Write(w)
		return
	}

	location, err := h.LocationService.CreateLocation(ctx, req.Name, *req.Lat, *req.Lng, *req.RadiusKm)
	if err != nil {
		log.Debug("create location rejected", "name", req.Name, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("location created",
		"location_id", location.ID,
		"name", location.Name,
		"radius_km", location.RadiusKm,
	)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, locationView(location))
}

// HandleList returns every geofence.
//
//	@Summary		List locations
//	@Description	Returns geofences oldest first; the first entry is the active one.
//	@Description	Requires 'admin:read'.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		clocksdk.Location
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:read' scope"
//	@Router			/v1/locations [get].
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	locations, err := h.LocationService.ListLocations(ctx)
	if err != nil {
		log.Error("failed to list locations", "err", err)
		writeServiceError(w, err)
		return
	}

	views := make([]clocksdk.Location, 0, len(locations))
	for _, l := range locations {
		views = append(views, locationView(l))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleDelete removes a geofence.
//
//	@Summary		Delete location
//	@Description	Removes a geofence. Deleting the active one promotes the next oldest.
//	@Description	Requires 'admin:write'.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Location ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:write' scope"
//	@Failure		404	{object}	clocksdk.APIError	"No such location"
//	@Router			/v1/locations/{id} [delete].
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	locationID := r.PathValue("id")
	if locationID == "" {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}

	if _, err := h.LocationService.Store.Locations().GetLocationByID(ctx, locationID); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.LocationService.DeleteLocation(ctx, locationID); err != nil {
		log.Error("failed to delete location", "location_id", locationID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("location deleted", "location_id", locationID)
	w.WriteHeader(http.StatusNoContent)
}
