package requirements

import "time"

// Requirement statuses. Submissions are only accepted against open
// requirements.
const (
	StatusOpen   = "open"
	StatusOnHold = "on_hold"
	StatusClosed = "closed"
)

// Requirement is an open position a client wants filled.
type Requirement struct {
	ID            string
	ClientID      string
	CreatedBy     string
	Title         string
	Description   string
	Skills        []string
	ExperienceMin int
	ExperienceMax int
	Location      string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidStatus reports whether the status is one of the known values.
func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusOnHold, StatusClosed:
		return true
	}
	return false
}
