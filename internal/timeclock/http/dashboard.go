package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

type DashboardHandler struct {
	StatsService *service.StatsService
}

// HandleStats returns the trailing 7-day aggregates.
//
//	@Summary		Dashboard statistics
//	@Description	Average hours per day, average headcount per day, per-day distinct
//	@Description	headcounts, per-user totals and currently clocked-in staff over the
//	@Description	trailing 7 calendar days. Requires 'admin:read'.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clocksdk.DashboardStats
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:read' scope"
//	@Router			/v1/dashboard/stats [get].
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	dash, err := h.StatsService.ComputeDashboard(ctx)
	if err != nil {
		log.Error("failed to compute dashboard", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dashboardView(dash))
}

// HandleActive returns everyone currently clocked in.
//
//	@Summary		Currently clocked-in staff
//	@Description	Lists users with an open shift, newest clock-in first. Requires 'admin:read'.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		clocksdk.ActiveStaff
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:read' scope"
//	@Router			/v1/dashboard/active [get].
func (h *DashboardHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	active, err := h.StatsService.ActiveStaff(ctx)
	if err != nil {
		log.Error("failed to list active staff", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, activeStaffViews(active))
}

func dashboardView(d service.Dashboard) clocksdk.DashboardStats {
	stats := clocksdk.DashboardStats{
		AvgHoursPerDay:             d.AvgHoursPerDay,
		AvgPeoplePerDay:            d.AvgPeoplePerDay,
		PeoplePerDayByDate:         make([]clocksdk.DayCount, 0, len(d.PeoplePerDayByDate)),
		TotalHoursLast7DaysPerUser: make([]clocksdk.UserHours, 0, len(d.TotalHoursPerUser)),
		CurrentlyClockedIn:         activeStaffViews(d.CurrentlyClockedIn),
	}
	for _, day := range d.PeoplePerDayByDate {
		stats.PeoplePerDayByDate = append(stats.PeoplePerDayByDate, clocksdk.DayCount{
			Date:  day.Date,
			Count: day.Count,
		})
	}
	for _, uh := range d.TotalHoursPerUser {
		stats.TotalHoursLast7DaysPerUser = append(stats.TotalHoursLast7DaysPerUser, clocksdk.UserHours{
			UserID: uh.UserID,
			Email:  uh.User.Email,
			Name:   uh.User.Name,
			Hours:  uh.Hours,
		})
	}
	return stats
}

func activeStaffViews(active []service.ActiveShift) []clocksdk.ActiveStaff {
	views := make([]clocksdk.ActiveStaff, 0, len(active))
	for _, a := range active {
		views = append(views, clocksdk.ActiveStaff{
			UserID: a.UserID,
			Email:  a.User.Email,
			Name:   a.User.Name,
			Since:  a.Since,
		})
	}
	return views
}
