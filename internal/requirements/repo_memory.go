package requirements

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory RequirementsRepo for local development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	reqs map[string]Requirement
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reqs: make(map[string]Requirement)}
}

func (r *MemoryRepo) Create(ctx context.Context, req Requirement) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs[req.ID] = req
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Requirement, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.reqs[id]
	if !ok {
		return Requirement{}, ErrNotFound
	}
	return req, nil
}

func (r *MemoryRepo) Update(ctx context.Context, req Requirement) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reqs[req.ID]; !ok {
		return ErrNotFound
	}
	r.reqs[req.ID] = req
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, status string, limit, offset int) ([]Requirement, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Requirement, 0, len(r.reqs))
	for _, req := range r.reqs {
		if status != "" && req.Status != status {
			continue
		}
		all = append(all, req)
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

var _ RequirementsRepo = (*MemoryRepo)(nil)
