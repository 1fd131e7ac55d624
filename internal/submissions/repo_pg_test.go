package submissions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateBindsEmptyOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	// A LinkedIn-only submission leaves email and every resume field empty.
	// Those columns are NOT NULL DEFAULT '', so the insert must bind empty
	// strings, not NULL.
	sub := Submission{
		ID:            "sub-1",
		RequirementID: "req-1",
		RecruiterID:   "rec-1",
		CandidateName: "Jane Doe",
		LinkedInURL:   "https://www.linkedin.com/in/janedoe",
		Status:        StatusSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(
			sub.ID,
			sub.RequirementID,
			sub.RecruiterID,
			sub.CandidateName,
			"", // candidate_email
			sub.LinkedInURL,
			"", // resume_key
			"", // resume_name
			sub.Status,
			sub.CreatedAt,
			sub.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), sub); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusGuardsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE submissions").
		WithArgs(StatusScreening, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(context.Background(), "missing", StatusScreening); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
