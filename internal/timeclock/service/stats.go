package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
)

// windowDays is the fixed length of the trailing dashboard window.
const windowDays = 7

// DayCount is one calendar day of the window with its distinct headcount.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// UserHours is a user's total overlap hours across the window. User may be
// zero-valued when the shift's owner has since been deleted.
type UserHours struct {
	UserID string
	User   domain.User
	Hours  float64
}

// ActiveShift is a currently clocked-in user and their clock-in time.
type ActiveShift struct {
	UserID string
	User   domain.User
	Since  time.Time
}

// Dashboard holds the trailing-window aggregates.
type Dashboard struct {
	AvgHoursPerDay     float64
	AvgPeoplePerDay    float64
	PeoplePerDayByDate []DayCount
	TotalHoursPerUser  []UserHours
	CurrentlyClockedIn []ActiveShift
}

// StatsService derives dashboard metrics from the shift ledger without
// mutating it. The read snapshot need not be transactionally consistent
// with concurrent writes; stats are a derived view.
type StatsService struct {
	Store store.Store

	// TZ sets the calendar used for day bucketing; nil means UTC.
	TZ *time.Location

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *StatsService) tz() *time.Location {
	if s.TZ != nil {
		return s.TZ
	}
	return time.UTC
}

// ComputeDashboard scans every shift overlapping the trailing 7-day window
// and produces the aggregate metrics. Open shifts count as ongoing until
// now. Empty input yields zero-valued metrics, not an error.
func (s *StatsService) ComputeDashboard(ctx context.Context) (Dashboard, error) {
	now := s.now().In(s.tz())
	periodStart := startOfDay(now.AddDate(0, 0, -(windowDays - 1)))
	periodEnd := endOfDay(now)

	shifts, err := s.Store.Shifts().ListShiftsOverlapping(ctx, periodStart, periodEnd)
	if err != nil {
		return Dashboard{}, err
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	agg := aggregateWindow(shifts, periodStart, now)

	dashboard := Dashboard{
		AvgHoursPerDay:     round2(agg.totalHours / windowDays),
		PeoplePerDayByDate: make([]DayCount, windowDays),
	}

	var headcountSum int
	for i := 0; i < windowDays; i++ {
		count := len(agg.daily[i])
		headcountSum += count
		dashboard.PeoplePerDayByDate[i] = DayCount{
			Date:  periodStart.AddDate(0, 0, i).Format(time.DateOnly),
			Count: count,
		}
	}
	dashboard.AvgPeoplePerDay = round2(float64(headcountSum) / windowDays)

	for userID, hours := range agg.perUser {
		dashboard.TotalHoursPerUser = append(dashboard.TotalHoursPerUser, UserHours{
			UserID: userID,
			User:   users[userID],
			Hours:  round2(hours),
		})
	}
	sort.Slice(dashboard.TotalHoursPerUser, func(i, j int) bool {
		a, b := dashboard.TotalHoursPerUser[i], dashboard.TotalHoursPerUser[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.UserID < b.UserID
	})

	active, err := s.activeShifts(ctx, users)
	if err != nil {
		return Dashboard{}, err
	}
	dashboard.CurrentlyClockedIn = active

	return dashboard, nil
}

// ActiveStaff returns everyone with an open shift right now, newest
// clock-in first.
func (s *StatsService) ActiveStaff(ctx context.Context) ([]ActiveShift, error) {
	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}
	return s.activeShifts(ctx, users)
}

func (s *StatsService) activeShifts(ctx context.Context, users map[string]domain.User) ([]ActiveShift, error) {
	open, err := s.Store.Shifts().ListOpenShifts(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]ActiveShift, 0, len(open))
	for _, shift := range open {
		active = append(active, ActiveShift{
			UserID: shift.UserID,
			User:   users[shift.UserID],
			Since:  shift.ClockInAt,
		})
	}
	return active, nil
}

func (s *StatsService) userIndex(ctx context.Context) (map[string]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]domain.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index, nil
}

// windowAggregate is the raw material of the dashboard metrics.
type windowAggregate struct {
	totalHours float64
	perUser    map[string]float64
	daily      [windowDays]map[string]struct{}
}

// aggregateWindow attributes each shift's overlap with the window to the
// aggregate totals and to every day it touches. The overlap of interval
// [s, e] with [a, b] is max(0, min(e,b) - max(s,a)); a shift contributes to
// a day only when its overlap with that day is strictly positive, which
// attributes partial-day and multi-day shifts proportionally.
func aggregateWindow(shifts []domain.Shift, periodStart, now time.Time) windowAggregate {
	agg := windowAggregate{perUser: make(map[string]float64)}
	for i := range agg.daily {
		agg.daily[i] = make(map[string]struct{})
	}

	periodEnd := endOfDay(periodStart.AddDate(0, 0, windowDays-1))

	for _, shift := range shifts {
		start, end := shift.Interval(now)

		windowOverlap := overlap(start, end, periodStart, periodEnd)
		if windowOverlap <= 0 {
			continue
		}

		hours := windowOverlap.Hours()
		agg.totalHours += hours
		agg.perUser[shift.UserID] += hours

		for i := 0; i < windowDays; i++ {
			dayStart := periodStart.AddDate(0, 0, i)
			dayEnd := endOfDay(dayStart)
			if overlap(start, end, dayStart, dayEnd) > 0 {
				agg.daily[i][shift.UserID] = struct{}{}
			}
		}
	}

	return agg
}

// overlap returns the length of the intersection of [s, e] and [a, b], or
// zero when they don't intersect.
func overlap(s, e, a, b time.Time) time.Duration {
	lo := s
	if a.After(lo) {
		lo = a
	}
	hi := e
	if b.Before(hi) {
		hi = b
	}
	if !hi.After(lo) {
		return 0
	}
	return hi.Sub(lo)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 of t's day, matching the inclusive day
// windows the metrics are defined over.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
