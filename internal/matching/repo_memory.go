package matching

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory MatchRepo for local development and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	scores map[string]MatchScore
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{scores: make(map[string]MatchScore)}
}

func (r *MemoryRepo) Create(ctx context.Context, score MatchScore) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[score.ID] = score
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (MatchScore, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	score, ok := r.scores[id]
	if !ok {
		return MatchScore{}, ErrNotFound
	}
	return score, nil
}

func (r *MemoryRepo) GetLatestBySubmission(ctx context.Context, submissionID string) (MatchScore, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest MatchScore
	found := false
	for _, score := range r.scores {
		if score.SubmissionID != submissionID {
			continue
		}
		if !found || score.CreatedAt.After(latest.CreatedAt) {
			latest = score
			found = true
		}
	}
	if !found {
		return MatchScore{}, ErrNotFound
	}
	return latest, nil
}

func (r *MemoryRepo) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]MatchScore, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []MatchScore
	for _, score := range r.scores {
		if score.RequirementID == requirementID && score.Status == StatusCompleted {
			all = append(all, score)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].OverallScore != all[j].OverallScore {
			return all[i].OverallScore > all[j].OverallScore
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) MarkProcessing(ctx context.Context, id string, startedAt time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	score, ok := r.scores[id]
	if !ok {
		return ErrNotFound
	}
	score.Status = StatusProcessing
	score.StartedAt = &startedAt
	score.UpdatedAt = time.Now().UTC()
	r.scores[id] = score
	return nil
}

func (r *MemoryRepo) MarkCompleted(ctx context.Context, score MatchScore) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.scores[score.ID]
	if !ok {
		return ErrNotFound
	}
	score.CreatedAt = existing.CreatedAt
	score.Status = StatusCompleted
	score.UpdatedAt = time.Now().UTC()
	r.scores[score.ID] = score
	return nil
}

func (r *MemoryRepo) MarkFailed(ctx context.Context, id, errorCode, errorMessage string, completedAt time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	score, ok := r.scores[id]
	if !ok {
		return ErrNotFound
	}
	score.Status = StatusFailed
	score.ErrorCode = errorCode
	score.ErrorMessage = errorMessage
	score.CompletedAt = &completedAt
	score.UpdatedAt = time.Now().UTC()
	r.scores[id] = score
	return nil
}

var _ MatchRepo = (*MemoryRepo)(nil)
