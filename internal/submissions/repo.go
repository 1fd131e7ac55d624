package submissions

import "context"

// SubmissionsRepo defines persistence operations for submissions.
type SubmissionsRepo interface {
	Create(ctx context.Context, sub Submission) error
	GetByID(ctx context.Context, id string) (Submission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]Submission, error)
}
