package submissions

import "time"

// Submission statuses, in pipeline order. The enum is fixed; anything else
// is rejected at the boundary.
const (
	StatusSubmitted = "submitted"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffered   = "offered"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
)

// Submission is a candidate put forward against a requirement. A submission
// carries at least one candidate source: an uploaded resume, a LinkedIn
// profile URL, or both.
type Submission struct {
	ID             string
	RequirementID  string
	RecruiterID    string
	CandidateName  string
	CandidateEmail string
	LinkedInURL    string
	ResumeKey      string
	ResumeName     string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidStatus reports whether the status is one of the six known values.
func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusScreening, StatusInterview, StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}
