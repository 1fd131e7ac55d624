package submissions

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory SubmissionsRepo for local development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{subs: make(map[string]Submission)}
}

func (r *MemoryRepo) Create(ctx context.Context, sub Submission) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return sub, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return ErrNotFound
	}
	sub.Status = status
	sub.UpdatedAt = time.Now().UTC()
	r.subs[id] = sub
	return nil
}

func (r *MemoryRepo) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]Submission, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []Submission
	for _, sub := range r.subs {
		if sub.RequirementID == requirementID {
			all = append(all, sub)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

var _ SubmissionsRepo = (*MemoryRepo)(nil)
