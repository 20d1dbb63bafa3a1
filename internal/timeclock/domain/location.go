package domain

import "time"

// Location is a circular geofence: clock actions are only permitted within
// RadiusKm of the centre. The canonical geofence consulted by clock
// operations is the earliest-created location.
type Location struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
