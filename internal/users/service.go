package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for users.
type Service struct {
	Repo UsersRepo
}

// UpsertByEmail finds the user for a verified identity-provider email or
// creates one. New users come in as recruiters; role changes are an admin
// operation, not a sign-in side effect.
func (s *Service) UpsertByEmail(ctx context.Context, email, name string) (User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return User{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		if !existing.Active {
			return User{}, ErrInactive
		}
		if name != "" && name != existing.Name {
			existing.Name = name
			existing.UpdatedAt = time.Now().UTC()
			if err := s.Repo.Update(ctx, existing); err != nil {
				return User{}, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	now := time.Now().UTC()
	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      RoleRecruiter,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// SetRole changes a user's role.
func (s *Service) SetRole(ctx context.Context, id, role string) (User, error) {
	if !ValidRole(role) {
		return User{}, ErrInvalidInput
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// List returns users newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]User, error) {
	return s.Repo.List(ctx, limit, offset)
}
