package users

import "time"

// Roles a user can hold. Role gates route access through middleware.
const (
	RoleAdmin         = "admin"
	RoleRecruiter     = "recruiter"
	RoleHiringManager = "hiring_manager"
)

// User is an account on the platform. ClientID scopes recruiters and hiring
// managers to the agency or company they work for.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string
	ClientID  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRole reports whether the role is one the platform knows.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRecruiter, RoleHiringManager:
		return true
	}
	return false
}
