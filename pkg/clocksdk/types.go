package clocksdk

import "time"

// ClockInRequest is the payload for POST /v1/clock/in. Coordinates are
// required; the perimeter check runs against them.
type ClockInRequest struct {
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Note string   `json:"note,omitempty"`
}

// ClockOutRequest is the payload for POST /v1/clock/out. Coordinates are
// optional: omitting them records a "manual" clock-out with no perimeter
// check.
type ClockOutRequest struct {
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
	Note string   `json:"note,omitempty"`
}

// Shift is a clock-in/clock-out record, optionally joined with its user.
type Shift struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	ClockInAt        time.Time  `json:"clock_in_at"`
	ClockInLocation  string     `json:"clock_in_location"`
	ClockOutAt       *time.Time `json:"clock_out_at,omitempty"`
	ClockOutLocation *string    `json:"clock_out_location,omitempty"`
	NoteIn           string     `json:"note_in,omitempty"`
	NoteOut          string     `json:"note_out,omitempty"`
	User             *User      `json:"user,omitempty"`
}

// ClockStatusResponse reports whether the caller currently holds an open
// shift.
type ClockStatusResponse struct {
	ClockedIn bool   `json:"clocked_in"`
	Shift     *Shift `json:"shift,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	RadiusKm  float64   `json:"radius_km"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLocationRequest struct {
	Name     string   `json:"name"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	RadiusKm *float64 `json:"radius_km"`
}

// DayCount is one day of the dashboard window with its distinct headcount.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// UserHours is a user's total overlap hours across the dashboard window.
type UserHours struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email,omitempty"`
	Name   string  `json:"name,omitempty"`
	Hours  float64 `json:"hours"`
}

// ActiveStaff is one currently clocked-in user with their clock-in time.
type ActiveStaff struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`
	Since  time.Time `json:"since"`
}

// DashboardStats are the 7-day trailing window aggregates.
type DashboardStats struct {
	AvgHoursPerDay             float64       `json:"avg_hours_per_day"`
	AvgPeoplePerDay            float64       `json:"avg_people_per_day"`
	PeoplePerDayByDate         []DayCount    `json:"people_per_day_by_date"`
	TotalHoursLast7DaysPerUser []UserHours   `json:"total_hours_last_7_days_per_user"`
	CurrentlyClockedIn         []ActiveStaff `json:"currently_clocked_in"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name,omitempty"`
	Role   string   `json:"role"`
	Scopes []string `json:"scopes,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
