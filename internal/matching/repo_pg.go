package matching

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements MatchRepo using Postgres. The list-shaped fields are
// stored as JSONB arrays.
type PGRepo struct {
	DB *sql.DB
}

const matchScoreColumns = `
id, submission_id, requirement_id, status, source, degraded,
overall_score, skills_score, experience_score, education_score, keywords_score,
recommendation, match_level, reasoning, strengths, weaknesses, recommendations,
error_code, error_message, started_at, completed_at, created_at, updated_at`

// Create inserts a new match score record, normally in queued status.
func (r *PGRepo) Create(ctx context.Context, score MatchScore) error {
	const query = `
INSERT INTO match_scores (
    id, submission_id, requirement_id, status, source, degraded,
    overall_score, skills_score, experience_score, education_score, keywords_score,
    recommendation, match_level, reasoning, strengths, weaknesses, recommendations,
    error_code, error_message, started_at, completed_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	reasoning, strengths, weaknesses, recommendations, err := marshalLists(score)
	if err != nil {
		return err
	}
	// source, recommendation and match_level are NOT NULL columns; a queued
	// record writes them as empty strings, never as NULL.
	_, err = r.DB.ExecContext(ctx, query,
		score.ID, score.SubmissionID, score.RequirementID, score.Status,
		score.Source, score.Degraded,
		score.OverallScore, score.SkillsScore, score.ExperienceScore,
		score.EducationScore, score.KeywordsScore,
		score.Recommendation, score.MatchLevel,
		reasoning, strengths, weaknesses, recommendations,
		nullString(score.ErrorCode), nullString(score.ErrorMessage),
		score.StartedAt, score.CompletedAt, score.CreatedAt, score.UpdatedAt)
	return err
}

// GetByID fetches a match score by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (MatchScore, error) {
	query := `SELECT ` + matchScoreColumns + ` FROM match_scores WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetLatestBySubmission returns the newest match score for a submission.
func (r *PGRepo) GetLatestBySubmission(ctx context.Context, submissionID string) (MatchScore, error) {
	query := `SELECT ` + matchScoreColumns + `
FROM match_scores
WHERE submission_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, submissionID))
}

// ListByRequirement returns completed match scores for a requirement ordered
// by overall score, best first.
func (r *PGRepo) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]MatchScore, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + matchScoreColumns + `
FROM match_scores
WHERE requirement_id = $1 AND status = 'completed'
ORDER BY overall_score DESC, created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, requirementID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchScore
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, rows.Err()
}

// MarkProcessing transitions a queued record to processing. The status guard
// keeps a second worker from picking up the same record.
func (r *PGRepo) MarkProcessing(ctx context.Context, id string, startedAt time.Time) error {
	const query = `
UPDATE match_scores
SET status = 'processing', started_at = $1, updated_at = $2
WHERE id = $3 AND status IN ('queued', 'processing')`
	res, err := r.DB.ExecContext(ctx, query, startedAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkCompleted writes the final result onto the record.
func (r *PGRepo) MarkCompleted(ctx context.Context, score MatchScore) error {
	const query = `
UPDATE match_scores
SET status = 'completed', source = $1, degraded = $2,
    overall_score = $3, skills_score = $4, experience_score = $5,
    education_score = $6, keywords_score = $7,
    recommendation = $8, match_level = $9,
    reasoning = $10, strengths = $11, weaknesses = $12, recommendations = $13,
    completed_at = $14, updated_at = $15
WHERE id = $16`

	reasoning, strengths, weaknesses, recommendations, err := marshalLists(score)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		score.Source, score.Degraded,
		score.OverallScore, score.SkillsScore, score.ExperienceScore,
		score.EducationScore, score.KeywordsScore,
		score.Recommendation, score.MatchLevel,
		reasoning, strengths, weaknesses, recommendations,
		score.CompletedAt, time.Now().UTC(), score.ID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed records a terminal failure with its sanitized error.
func (r *PGRepo) MarkFailed(ctx context.Context, id, errorCode, errorMessage string, completedAt time.Time) error {
	const query = `
UPDATE match_scores
SET status = 'failed', error_code = $1, error_message = $2, completed_at = $3, updated_at = $4
WHERE id = $5`
	res, err := r.DB.ExecContext(ctx, query, errorCode, errorMessage, completedAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row *sql.Row) (MatchScore, error) {
	score, err := scanScore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MatchScore{}, ErrNotFound
		}
		return MatchScore{}, err
	}
	return score, nil
}

func scanScore(row rowScanner) (MatchScore, error) {
	var score MatchScore
	var source, recommendation, matchLevel, errorCode, errorMessage sql.NullString
	var reasoning, strengths, weaknesses, recommendations []byte
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&score.ID, &score.SubmissionID, &score.RequirementID, &score.Status,
		&source, &score.Degraded,
		&score.OverallScore, &score.SkillsScore, &score.ExperienceScore,
		&score.EducationScore, &score.KeywordsScore,
		&recommendation, &matchLevel,
		&reasoning, &strengths, &weaknesses, &recommendations,
		&errorCode, &errorMessage, &startedAt, &completedAt,
		&score.CreatedAt, &score.UpdatedAt)
	if err != nil {
		return MatchScore{}, err
	}

	score.Source = source.String
	score.Recommendation = recommendation.String
	score.MatchLevel = matchLevel.String
	score.ErrorCode = errorCode.String
	score.ErrorMessage = errorMessage.String
	if startedAt.Valid {
		score.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		score.CompletedAt = &completedAt.Time
	}
	for _, pair := range []struct {
		raw  []byte
		dest *[]string
	}{
		{reasoning, &score.Reasoning},
		{strengths, &score.Strengths},
		{weaknesses, &score.Weaknesses},
		{recommendations, &score.Recommendations},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return MatchScore{}, fmt.Errorf("unmarshal list column: %w", err)
		}
	}
	return score, nil
}

func marshalLists(score MatchScore) (reasoning, strengths, weaknesses, recommendations []byte, err error) {
	if reasoning, err = json.Marshal(orEmpty(score.Reasoning)); err != nil {
		return
	}
	if strengths, err = json.Marshal(orEmpty(score.Strengths)); err != nil {
		return
	}
	if weaknesses, err = json.Marshal(orEmpty(score.Weaknesses)); err != nil {
		return
	}
	recommendations, err = json.Marshal(orEmpty(score.Recommendations))
	return
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ MatchRepo = (*PGRepo)(nil)
