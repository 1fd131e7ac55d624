package requirements

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for requirements.
type Service struct {
	Repo RequirementsRepo
}

// CreateInput carries the caller-supplied fields for a new requirement.
type CreateInput struct {
	ClientID      string
	Title         string
	Description   string
	Skills        []string
	ExperienceMin int
	ExperienceMax int
	Location      string
}

// Create validates and records a new requirement, open by default.
func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (Requirement, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || createdBy == "" {
		return Requirement{}, ErrInvalidInput
	}
	if in.ExperienceMin < 0 || (in.ExperienceMax > 0 && in.ExperienceMax < in.ExperienceMin) {
		return Requirement{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	req := Requirement{
		ID:            uuid.NewString(),
		ClientID:      in.ClientID,
		CreatedBy:     createdBy,
		Title:         in.Title,
		Description:   strings.TrimSpace(in.Description),
		Skills:        cleanSkills(in.Skills),
		ExperienceMin: in.ExperienceMin,
		ExperienceMax: in.ExperienceMax,
		Location:      strings.TrimSpace(in.Location),
		Status:        StatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		return Requirement{}, err
	}
	return req, nil
}

// Get returns a requirement by ID.
func (s *Service) Get(ctx context.Context, id string) (Requirement, error) {
	if id == "" {
		return Requirement{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// UpdateInput carries the updatable fields. Nil pointers leave the stored
// value untouched.
type UpdateInput struct {
	Title         *string
	Description   *string
	Skills        *[]string
	ExperienceMin *int
	ExperienceMax *int
	Location      *string
	Status        *string
}

// Update applies a partial update to a requirement.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Requirement, error) {
	req, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Requirement{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Requirement{}, ErrInvalidInput
		}
		req.Title = title
	}
	if in.Description != nil {
		req.Description = strings.TrimSpace(*in.Description)
	}
	if in.Skills != nil {
		req.Skills = cleanSkills(*in.Skills)
	}
	if in.ExperienceMin != nil {
		req.ExperienceMin = *in.ExperienceMin
	}
	if in.ExperienceMax != nil {
		req.ExperienceMax = *in.ExperienceMax
	}
	if req.ExperienceMin < 0 || (req.ExperienceMax > 0 && req.ExperienceMax < req.ExperienceMin) {
		return Requirement{}, ErrInvalidInput
	}
	if in.Location != nil {
		req.Location = strings.TrimSpace(*in.Location)
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return Requirement{}, ErrInvalidInput
		}
		req.Status = *in.Status
	}

	req.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, req); err != nil {
		return Requirement{}, err
	}
	return req, nil
}

// List returns requirements newest-first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Requirement, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, status, limit, offset)
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
