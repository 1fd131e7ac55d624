package requirements

import "context"

// RequirementsRepo defines persistence operations for requirements.
type RequirementsRepo interface {
	Create(ctx context.Context, req Requirement) error
	GetByID(ctx context.Context, id string) (Requirement, error)
	Update(ctx context.Context, req Requirement) error
	List(ctx context.Context, status string, limit, offset int) ([]Requirement, error)
}
