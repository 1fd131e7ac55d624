package matching

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsQueuedRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	score := MatchScore{
		ID:            "match-1",
		SubmissionID:  "sub-1",
		RequirementID: "req-1",
		Status:        StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// source, recommendation and match_level are NOT NULL columns in the
	// schema; a queued record must bind empty strings, not NULL.
	mock.ExpectExec("INSERT INTO match_scores").
		WithArgs(
			score.ID,
			score.SubmissionID,
			score.RequirementID,
			score.Status,
			"",    // source
			false, // degraded
			0, 0, 0, 0, 0,
			"",               // recommendation
			"",               // match_level
			sqlmock.AnyArg(), // reasoning
			sqlmock.AnyArg(), // strengths
			sqlmock.AnyArg(), // weaknesses
			sqlmock.AnyArg(), // recommendations
			nil,              // error_code
			nil,              // error_message
			nil,              // started_at
			nil,              // completed_at
			score.CreatedAt,
			score.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), score); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoMarkFailedGuardsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE match_scores").
		WithArgs(ErrorCodeInternal, "boom", sqlmock.AnyArg(), sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkFailed(context.Background(), "missing", ErrorCodeInternal, "boom", time.Now().UTC()); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
