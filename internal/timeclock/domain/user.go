package domain

import "time"

// Role names used across the service. Roles are carried as plain strings
// on the user record; access control itself is scope-based at the boundary.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID        string
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
