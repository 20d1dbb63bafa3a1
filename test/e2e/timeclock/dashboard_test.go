package timeclock_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/stretchr/testify/require"
)

// TestDashboardStats seeds a small roster with open shifts and checks the
// aggregates reflect them.
func TestDashboardStats(t *testing.T) {
	baseURL, cleanup := setupTimeclockContainer(t)
	defer cleanup()

	admin := seedAdmin(t, baseURL)
	seedLocation(t, admin)

	alice := seedStaff(t, admin, baseURL, "alice@example.com", "Alice")
	bob := seedStaff(t, admin, baseURL, "bob@example.com", "Bob")

	_, err := alice.ClockIn(t.Context(), clocksdk.ClockInRequest{
		Lat: ptr(siteLat), Lng: ptr(siteLng),
	})
	require.NoError(t, err)
	_, err = bob.ClockIn(t.Context(), clocksdk.ClockInRequest{
		Lat: ptr(siteLat), Lng: ptr(siteLng),
	})
	require.NoError(t, err)

	// Bob finishes; Alice stays on shift.
	_, err = bob.ClockOut(t.Context(), clocksdk.ClockOutRequest{})
	require.NoError(t, err)

	stats, err := admin.DashboardStats(t.Context())
	require.NoError(t, err)

	require.Len(t, stats.PeoplePerDayByDate, 7)
	today := time.Now().UTC().Format(time.DateOnly)
	require.Equal(t, today, stats.PeoplePerDayByDate[6].Date)
	require.Equal(t, 2, stats.PeoplePerDayByDate[6].Count)

	require.Len(t, stats.TotalHoursLast7DaysPerUser, 2)
	for _, uh := range stats.TotalHoursLast7DaysPerUser {
		require.NotEmpty(t, uh.UserID)
		require.NotEmpty(t, uh.Email)
		require.GreaterOrEqual(t, uh.Hours, 0.0)
	}

	require.Len(t, stats.CurrentlyClockedIn, 1)
	require.Equal(t, "alice@example.com", stats.CurrentlyClockedIn[0].Email)
}

// TestActiveStaffEndpoint verifies the dedicated clocked-in listing.
func TestActiveStaffEndpoint(t *testing.T) {
	baseURL, cleanup := setupTimeclockContainer(t)
	defer cleanup()

	admin := seedAdmin(t, baseURL)
	seedLocation(t, admin)
	alice := seedStaff(t, admin, baseURL, "alice@example.com", "Alice")

	active, err := admin.ActiveStaff(t.Context())
	require.NoError(t, err)
	require.Empty(t, active)

	_, err = alice.ClockIn(t.Context(), clocksdk.ClockInRequest{
		Lat: ptr(siteLat), Lng: ptr(siteLng),
	})
	require.NoError(t, err)

	active, err = admin.ActiveStaff(t.Context())
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Alice", active[0].Name)
	require.WithinDuration(t, time.Now(), active[0].Since, time.Minute)
}

// TestShiftListing verifies the admin listing, filters and the caller's own
// history view.
func TestShiftListing(t *testing.T) {
	baseURL, cleanup := setupTimeclockContainer(t)
	defer cleanup()

	admin := seedAdmin(t, baseURL)
	seedLocation(t, admin)
	alice := seedStaff(t, admin, baseURL, "alice@example.com", "Alice")

	_, err := alice.ClockIn(t.Context(), clocksdk.ClockInRequest{
		Lat: ptr(siteLat), Lng: ptr(siteLng), Note: "first",
	})
	require.NoError(t, err)
	_, err = alice.ClockOut(t.Context(), clocksdk.ClockOutRequest{})
	require.NoError(t, err)
	_, err = alice.ClockIn(t.Context(), clocksdk.ClockInRequest{
		Lat: ptr(siteLat), Lng: ptr(siteLng), Note: "second",
	})
	require.NoError(t, err)

	all, err := admin.ListShifts(t.Context(), time.Time{}, time.Time{}, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first with the user joined in.
	require.Equal(t, "second", all[0].NoteIn)
	require.NotNil(t, all[0].User)
	require.Equal(t, "alice@example.com", all[0].User.Email)

	open, err := admin.ListShifts(t.Context(), time.Time{}, time.Time{}, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Nil(t, open[0].ClockOutAt)

	windowed, err := admin.ListShifts(t.Context(),
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), false)
	require.NoError(t, err)
	require.Len(t, windowed, 2)

	mine, err := alice.MyShifts(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "second", mine[0].NoteIn)
}

// TestUserAndLocationAdmin exercises roster and geofence management.
func TestUserAndLocationAdmin(t *testing.T) {
	baseURL, cleanup := setupTimeclockContainer(t)
	defer cleanup()

	admin := seedAdmin(t, baseURL)

	// Duplicate emails are rejected.
	_, err := admin.CreateUser(t.Context(), clocksdk.CreateUserRequest{
		Email: "admin@example.com", Name: "Other Admin", Role: "admin",
	})
	var apiErr *clocksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.StatusCode)

	user, err := admin.CreateUser(t.Context(), clocksdk.CreateUserRequest{
		Email: "temp@example.com", Name: "Temp", Role: "staff",
	})
	require.NoError(t, err)

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, admin.DeleteUser(t.Context(), user.ID))
	users, err = admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)

	// Locations: first created is the active geofence.
	first := seedLocation(t, admin)
	_, err = admin.CreateLocation(t.Context(), clocksdk.CreateLocationRequest{
		Name: "Backup Site", Lat: ptr(0.0), Lng: ptr(0.0), RadiusKm: ptr(5.0),
	})
	require.NoError(t, err)

	locations, err := admin.ListLocations(t.Context())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	require.Equal(t, first.ID, locations[0].ID)

	// Invalid coordinates are rejected at the boundary.
	_, err = admin.CreateLocation(t.Context(), clocksdk.CreateLocationRequest{
		Name: "Bad", Lat: ptr(123.0), Lng: ptr(0.0), RadiusKm: ptr(1.0),
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
}

// TestMeEndpoint verifies the identity echo.
func TestMeEndpoint(t *testing.T) {
	baseURL, cleanup := setupTimeclockContainer(t)
	defer cleanup()

	admin := seedAdmin(t, baseURL)

	me, err := admin.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", me.Email)
	require.Equal(t, "admin", me.Role)
	require.Contains(t, me.Scopes, "admin:read")
}
