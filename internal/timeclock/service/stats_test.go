package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/idx"
	"github.com/stretchr/testify/require"
)

// statsNow is the frozen reference instant for aggregation tests. The
// 7-day window it implies runs 2025-06-09 through 2025-06-15.
var statsNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func at(d, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func closedShift(userID string, in, out time.Time) domain.Shift {
	loc := "0,0"
	return domain.Shift{
		ID:               idx.New().String(),
		UserID:           userID,
		ClockInAt:        in,
		ClockInLocation:  "0,0",
		ClockOutAt:       &out,
		ClockOutLocation: &loc,
	}
}

func openShift(userID string, in time.Time) domain.Shift {
	return domain.Shift{
		ID:              idx.New().String(),
		UserID:          userID,
		ClockInAt:       in,
		ClockInLocation: "0,0",
	}
}

func TestAggregateWindow(t *testing.T) {
	t.Parallel()

	periodStart := day(9)

	t.Run("full calendar day counts as 24 hours", func(t *testing.T) {
		shifts := []domain.Shift{closedShift("u1", day(10), day(11))}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.InDelta(t, 24.0, agg.totalHours, 0.001)
		require.InDelta(t, 24.0, agg.perUser["u1"], 0.001)
	})

	t.Run("open shift runs until now", func(t *testing.T) {
		shifts := []domain.Shift{openShift("u1", at(15, 9))}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.InDelta(t, 3.0, agg.totalHours, 0.001)
	})

	t.Run("shift straddling the window start is clipped", func(t *testing.T) {
		shifts := []domain.Shift{closedShift("u1", at(7, 12), at(9, 6))}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.InDelta(t, 6.0, agg.totalHours, 0.001)
		// Only the first window day saw this user.
		require.Contains(t, agg.daily[0], "u1")
		require.NotContains(t, agg.daily[1], "u1")
	})

	t.Run("shift entirely before the window contributes nothing", func(t *testing.T) {
		shifts := []domain.Shift{closedShift("u1", at(1, 9), at(1, 17))}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.Zero(t, agg.totalHours)
		require.Empty(t, agg.perUser)
	})

	t.Run("multi-day shift appears in every day it touches", func(t *testing.T) {
		shifts := []domain.Shift{closedShift("u1", at(10, 22), at(12, 2))}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.NotContains(t, agg.daily[0], "u1") // Jun 9
		require.Contains(t, agg.daily[1], "u1")    // Jun 10
		require.Contains(t, agg.daily[2], "u1")    // Jun 11
		require.Contains(t, agg.daily[3], "u1")    // Jun 12
		require.InDelta(t, 28.0, agg.totalHours, 0.001)
	})

	t.Run("distinct headcount per day", func(t *testing.T) {
		shifts := []domain.Shift{
			closedShift("u1", at(12, 9), at(12, 17)),
			closedShift("u1", at(12, 18), at(12, 20)), // second shift, same person
			closedShift("u2", at(12, 9), at(12, 17)),
			closedShift("u3", at(12, 9), at(12, 17)),
			closedShift("u1", at(13, 9), at(13, 17)),
			closedShift("u2", at(13, 9), at(13, 17)),
		}

		agg := aggregateWindow(shifts, periodStart, statsNow)
		require.Len(t, agg.daily[3], 3) // Jun 12
		require.Len(t, agg.daily[4], 2) // Jun 13
	})

	t.Run("empty ledger yields zeroes", func(t *testing.T) {
		agg := aggregateWindow(nil, periodStart, statsNow)
		require.Zero(t, agg.totalHours)
		require.Empty(t, agg.perUser)
		for i := range agg.daily {
			require.Empty(t, agg.daily[i])
		}
	})
}

func TestOverlap(t *testing.T) {
	t.Parallel()

	a, b := day(10), day(11)

	require.Equal(t, 24*time.Hour, overlap(day(10), day(11), a, b))
	require.Equal(t, 12*time.Hour, overlap(at(10, 12), day(12), a, b))
	require.Equal(t, time.Duration(0), overlap(day(12), day(13), a, b))
	require.Equal(t, time.Duration(0), overlap(day(11), day(10), a, b))
}

func TestComputeDashboard(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, st store.Store, shifts ...domain.Shift) {
		t.Helper()
		for _, s := range shifts {
			require.NoError(t, st.Shifts().CreateShift(ctx, s))
		}
	}

	t.Run("aggregates hours, headcount and active staff", func(t *testing.T) {
		st := newTestStore(t)
		alice := seedUser(t, st, "alice@example.com", "Alice")
		bob := seedUser(t, st, "bob@example.com", "Bob")

		seed(t, st,
			closedShift(alice.ID, at(12, 9), at(12, 17)), // 8h
			closedShift(bob.ID, at(12, 9), at(12, 13)),   // 4h
			openShift(alice.ID, at(15, 10)),              // 2h so far
		)

		svc := &StatsService{Store: st, Now: func() time.Time { return statsNow }}
		dash, err := svc.ComputeDashboard(ctx)
		require.NoError(t, err)

		require.InDelta(t, 2.0, dash.AvgHoursPerDay, 0.001) // 14h / 7
		require.InDelta(t, 0.43, dash.AvgPeoplePerDay, 0.001)

		require.Len(t, dash.PeoplePerDayByDate, 7)
		require.Equal(t, "2025-06-09", dash.PeoplePerDayByDate[0].Date)
		require.Equal(t, 0, dash.PeoplePerDayByDate[0].Count)
		require.Equal(t, "2025-06-12", dash.PeoplePerDayByDate[3].Date)
		require.Equal(t, 2, dash.PeoplePerDayByDate[3].Count)
		require.Equal(t, "2025-06-15", dash.PeoplePerDayByDate[6].Date)
		require.Equal(t, 1, dash.PeoplePerDayByDate[6].Count)

		// Sorted by hours descending with user details joined in.
		require.Len(t, dash.TotalHoursPerUser, 2)
		require.Equal(t, alice.ID, dash.TotalHoursPerUser[0].UserID)
		require.InDelta(t, 10.0, dash.TotalHoursPerUser[0].Hours, 0.001)
		require.Equal(t, "Alice", dash.TotalHoursPerUser[0].User.Name)
		require.Equal(t, bob.ID, dash.TotalHoursPerUser[1].UserID)
		require.InDelta(t, 4.0, dash.TotalHoursPerUser[1].Hours, 0.001)

		require.Len(t, dash.CurrentlyClockedIn, 1)
		require.Equal(t, alice.ID, dash.CurrentlyClockedIn[0].UserID)
		require.Equal(t, at(15, 10), dash.CurrentlyClockedIn[0].Since.UTC())
	})

	t.Run("is idempotent for a frozen clock", func(t *testing.T) {
		st := newTestStore(t)
		alice := seedUser(t, st, "alice@example.com", "Alice")
		seed(t, st,
			closedShift(alice.ID, at(11, 9), at(11, 17)),
			openShift(alice.ID, at(15, 8)),
		)

		svc := &StatsService{Store: st, Now: func() time.Time { return statsNow }}
		first, err := svc.ComputeDashboard(ctx)
		require.NoError(t, err)
		second, err := svc.ComputeDashboard(ctx)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("empty ledger produces a zeroed dashboard", func(t *testing.T) {
		st := newTestStore(t)

		svc := &StatsService{Store: st, Now: func() time.Time { return statsNow }}
		dash, err := svc.ComputeDashboard(ctx)
		require.NoError(t, err)

		require.Zero(t, dash.AvgHoursPerDay)
		require.Zero(t, dash.AvgPeoplePerDay)
		require.Len(t, dash.PeoplePerDayByDate, 7)
		for _, d := range dash.PeoplePerDayByDate {
			require.Zero(t, d.Count)
		}
		require.Empty(t, dash.TotalHoursPerUser)
		require.Empty(t, dash.CurrentlyClockedIn)
	})

	t.Run("buckets days in the configured timezone", func(t *testing.T) {
		st := newTestStore(t)
		alice := seedUser(t, st, "alice@example.com", "Alice")

		sydney, err := time.LoadLocation("Australia/Sydney")
		require.NoError(t, err)

		// 23:00 UTC on Jun 14 is already Jun 15 in Sydney.
		seed(t, st, closedShift(alice.ID,
			time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC),
		))

		svc := &StatsService{Store: st, TZ: sydney, Now: func() time.Time { return statsNow }}
		dash, err := svc.ComputeDashboard(ctx)
		require.NoError(t, err)

		last := dash.PeoplePerDayByDate[6]
		require.Equal(t, "2025-06-15", last.Date)
		require.Equal(t, 1, last.Count)
	})
}

func TestActiveStaff(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedUser(t, st, "alice@example.com", "Alice")
	bob := seedUser(t, st, "bob@example.com", "Bob")
	seedLocation(t, st, "Depot", 0, 0, 1.0)

	clock := &ClockService{Store: st}
	_, _, err := clock.ClockIn(ctx, Identity{UserID: alice.ID}, 0, 0, "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, _, err = clock.ClockIn(ctx, Identity{UserID: bob.ID}, 0, 0, "")
	require.NoError(t, err)

	svc := &StatsService{Store: st}
	active, err := svc.ActiveStaff(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)

	// Newest clock-in first.
	require.Equal(t, bob.ID, active[0].UserID)
	require.Equal(t, "Bob", active[0].User.Name)
	require.Equal(t, alice.ID, active[1].UserID)
}
