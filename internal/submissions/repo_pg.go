package submissions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements SubmissionsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new submission.
func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	const query = `
INSERT INTO submissions (
    id, requirement_id, recruiter_id, candidate_name, candidate_email,
    linkedin_url, resume_key, resume_name, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	// The optional columns are NOT NULL DEFAULT ''; absent values are written
	// as empty strings, never as NULL.
	_, err := r.DB.ExecContext(ctx, query,
		sub.ID, sub.RequirementID, sub.RecruiterID, sub.CandidateName,
		sub.CandidateEmail, sub.LinkedInURL,
		sub.ResumeKey, sub.ResumeName,
		sub.Status, sub.CreatedAt, sub.UpdatedAt)
	return err
}

// GetByID fetches a submission by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	const query = `
SELECT id, requirement_id, recruiter_id, candidate_name, candidate_email,
       linkedin_url, resume_key, resume_name, status, created_at, updated_at
FROM submissions
WHERE id = $1`
	return scanSubmission(r.DB.QueryRowContext(ctx, query, id))
}

// UpdateStatus moves a submission to a new pipeline status.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `
UPDATE submissions
SET status = $1, updated_at = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByRequirement returns submissions for a requirement, newest-first.
func (r *PGRepo) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, requirement_id, recruiter_id, candidate_name, candidate_email,
       linkedin_url, resume_key, resume_name, status, created_at, updated_at
FROM submissions
WHERE requirement_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, requirementID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scanSubmissionRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row *sql.Row) (Submission, error) {
	sub, err := scanSubmissionRows(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return sub, nil
}

func scanSubmissionRows(row rowScanner) (Submission, error) {
	var sub Submission
	err := row.Scan(
		&sub.ID, &sub.RequirementID, &sub.RecruiterID, &sub.CandidateName,
		&sub.CandidateEmail, &sub.LinkedInURL, &sub.ResumeKey, &sub.ResumeName,
		&sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

var _ SubmissionsRepo = (*PGRepo)(nil)
