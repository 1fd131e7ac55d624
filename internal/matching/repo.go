package matching

import (
	"context"
	"time"
)

// MatchRepo defines persistence operations for match scores.
type MatchRepo interface {
	Create(ctx context.Context, score MatchScore) error
	GetByID(ctx context.Context, id string) (MatchScore, error)
	GetLatestBySubmission(ctx context.Context, submissionID string) (MatchScore, error)
	ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]MatchScore, error)
	MarkProcessing(ctx context.Context, id string, startedAt time.Time) error
	MarkCompleted(ctx context.Context, score MatchScore) error
	MarkFailed(ctx context.Context, id, errorCode, errorMessage string, completedAt time.Time) error
}
