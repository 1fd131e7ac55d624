package requirements

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements RequirementsRepo using Postgres. Skills are stored as a
// JSONB array.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new requirement.
func (r *PGRepo) Create(ctx context.Context, req Requirement) error {
	const query = `
INSERT INTO requirements (
    id, client_id, created_by, title, description, skills,
    experience_min, experience_max, location, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	skills, err := json.Marshal(req.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		req.ID, req.ClientID, req.CreatedBy, req.Title, req.Description, skills,
		req.ExperienceMin, req.ExperienceMax, req.Location, req.Status,
		req.CreatedAt, req.UpdatedAt)
	return err
}

// GetByID fetches a requirement by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Requirement, error) {
	const query = `
SELECT id, client_id, created_by, title, description, skills,
       experience_min, experience_max, location, status, created_at, updated_at
FROM requirements
WHERE id = $1`

	var req Requirement
	var skills []byte
	var location sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.ClientID, &req.CreatedBy, &req.Title, &req.Description, &skills,
		&req.ExperienceMin, &req.ExperienceMax, &location, &req.Status,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Requirement{}, ErrNotFound
		}
		return Requirement{}, err
	}
	if location.Valid {
		req.Location = location.String
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &req.Skills); err != nil {
			return Requirement{}, fmt.Errorf("unmarshal skills: %w", err)
		}
	}
	return req, nil
}

// Update rewrites the mutable fields of a requirement.
func (r *PGRepo) Update(ctx context.Context, req Requirement) error {
	const query = `
UPDATE requirements
SET title = $1, description = $2, skills = $3, experience_min = $4,
    experience_max = $5, location = $6, status = $7, updated_at = $8
WHERE id = $9`

	skills, err := json.Marshal(req.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query,
		req.Title, req.Description, skills, req.ExperienceMin,
		req.ExperienceMax, req.Location, req.Status, req.UpdatedAt, req.ID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns requirements newest-first, optionally filtered by status.
func (r *PGRepo) List(ctx context.Context, status string, limit, offset int) ([]Requirement, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT id, client_id, created_by, title, description, skills,
       experience_min, experience_max, location, status, created_at, updated_at
FROM requirements`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Requirement
	for rows.Next() {
		var req Requirement
		var skills []byte
		var location sql.NullString
		if err := rows.Scan(
			&req.ID, &req.ClientID, &req.CreatedBy, &req.Title, &req.Description, &skills,
			&req.ExperienceMin, &req.ExperienceMax, &location, &req.Status,
			&req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		if location.Valid {
			req.Location = location.String
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &req.Skills); err != nil {
				return nil, fmt.Errorf("unmarshal skills: %w", err)
			}
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

var _ RequirementsRepo = (*PGRepo)(nil)
