package matching

import "time"

// Match score lifecycle statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Sources identify which scorer produced the persisted result.
const (
	SourceAI    = "ai"
	SourceLocal = "local"
)

// MatchScore is the stored outcome of analyzing one submission against its
// requirement. Degraded marks results where the AI analysis was unusable and
// the local scorer's output was persisted instead.
type MatchScore struct {
	ID            string
	SubmissionID  string
	RequirementID string
	Status        string
	Source        string
	Degraded      bool

	OverallScore    int
	SkillsScore     int
	ExperienceScore int
	EducationScore  int
	KeywordsScore   int

	Recommendation string
	MatchLevel     string

	Reasoning       []string
	Strengths       []string
	Weaknesses      []string
	Recommendations []string

	ErrorCode    string
	ErrorMessage string

	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
