package submissions

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/requirements"
	"recruit-backend/internal/shared/storage/object"
)

// Service contains business logic for submissions.
type Service struct {
	Repo         SubmissionsRepo
	Requirements requirements.RequirementsRepo
	Store        object.ObjectStore
}

// CreateInput carries the caller-supplied fields for a new submission.
// Resume is optional; when present the file is saved to object storage.
type CreateInput struct {
	RequirementID  string
	CandidateName  string
	CandidateEmail string
	LinkedInURL    string
	ResumeName     string
	Resume         io.Reader
}

// Create validates the submission against its requirement, stores the resume
// if one was attached, and records the submission as submitted. Match
// analysis is a separate, asynchronous concern; creating a submission never
// waits on it.
func (s *Service) Create(ctx context.Context, recruiterID string, in CreateInput) (Submission, error) {
	in.CandidateName = strings.TrimSpace(in.CandidateName)
	in.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	if recruiterID == "" || in.RequirementID == "" || in.CandidateName == "" {
		return Submission{}, ErrInvalidInput
	}
	if in.Resume == nil && in.LinkedInURL == "" {
		return Submission{}, ErrNoCandidateSource
	}

	req, err := s.Requirements.GetByID(ctx, in.RequirementID)
	if err != nil {
		if errors.Is(err, requirements.ErrNotFound) {
			return Submission{}, ErrRequirementNotExists
		}
		return Submission{}, err
	}
	if req.Status != requirements.StatusOpen {
		return Submission{}, ErrRequirementNotOpen
	}

	var resumeKey string
	if in.Resume != nil {
		if in.ResumeName == "" {
			return Submission{}, ErrInvalidInput
		}
		key, _, _, err := s.Store.Save(ctx, recruiterID, in.ResumeName, in.Resume)
		if err != nil {
			return Submission{}, err
		}
		resumeKey = key
	}

	now := time.Now().UTC()
	sub := Submission{
		ID:             uuid.NewString(),
		RequirementID:  in.RequirementID,
		RecruiterID:    recruiterID,
		CandidateName:  in.CandidateName,
		CandidateEmail: strings.TrimSpace(in.CandidateEmail),
		LinkedInURL:    in.LinkedInURL,
		ResumeKey:      resumeKey,
		ResumeName:     in.ResumeName,
		Status:         StatusSubmitted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// Get returns a submission by ID.
func (s *Service) Get(ctx context.Context, id string) (Submission, error) {
	if id == "" {
		return Submission{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// SetStatus moves a submission to a new pipeline status.
func (s *Service) SetStatus(ctx context.Context, id, status string) (Submission, error) {
	if !ValidStatus(status) {
		return Submission{}, ErrUnknownStatus
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return Submission{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// ListByRequirement returns submissions for a requirement, newest-first.
func (s *Service) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]Submission, error) {
	if requirementID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByRequirement(ctx, requirementID, limit, offset)
}
