package matching

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/extract"
	"recruit-backend/internal/llm"
	"recruit-backend/internal/queue"
	"recruit-backend/internal/requirements"
	"recruit-backend/internal/scoring"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/storage/object"
	"recruit-backend/internal/shared/telemetry"
	"recruit-backend/internal/shared/util"
	"recruit-backend/internal/signals"
	"recruit-backend/internal/submissions"
)

// analysisTimeout bounds one full analysis, extraction and LLM retries
// included.
const analysisTimeout = 3 * time.Minute

const maxResumeBytes = 20 << 20

// ProfileFetcher downloads profile HTML. Satisfied by extract.Fetcher.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, url string) (string, error)
}

// Service orchestrates match analysis: candidate text extraction, signal
// derivation, local scoring, the AI analysis, and persistence. The local
// scorer always runs; the AI result is preferred when it validates and the
// local result stands in when it does not.
type Service struct {
	Repo         MatchRepo
	Submissions  submissions.SubmissionsRepo
	Requirements requirements.RequirementsRepo
	Store        object.ObjectStore
	Fetcher      ProfileFetcher
	LLM          llm.Client
	Limiter      *llm.MinuteLimiter
	JobQueue     queue.Client
}

// Start creates a queued match score for the submission and hands the work
// off: to the job queue when one is configured, otherwise to a background
// goroutine. The caller gets the queued record immediately; analysis never
// blocks the submission flow.
func (s *Service) Start(ctx context.Context, submissionID, requestID string) (MatchScore, error) {
	sub, err := s.Submissions.GetByID(ctx, submissionID)
	if err != nil {
		return MatchScore{}, err
	}

	now := time.Now().UTC()
	score := MatchScore{
		ID:            uuid.NewString(),
		SubmissionID:  sub.ID,
		RequirementID: sub.RequirementID,
		Status:        StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, score); err != nil {
		return MatchScore{}, err
	}
	metrics.IncMatchStarted()
	telemetry.Info("match.queued", map[string]any{
		"request_id":     requestID,
		"match_id":       score.ID,
		"submission_id":  sub.ID,
		"requirement_id": sub.RequirementID,
	})

	if s.JobQueue != nil {
		msg := queue.Message{
			MatchScoreID: score.ID,
			RequestID:    requestID,
			EnqueuedAt:   now.Format(time.RFC3339),
			Version:      1,
		}
		if err := s.JobQueue.Send(ctx, msg); err != nil {
			s.failScore(ctx, score.ID, ErrorCodeInternal, err, requestID)
			return MatchScore{}, fmt.Errorf("enqueue match analysis: %w", err)
		}
		return score, nil
	}

	go s.completeAsync(score.ID, requestID)
	return score, nil
}

func (s *Service) completeAsync(matchID, requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), analysisTimeout)
	defer cancel()
	if err := s.Process(ctx, matchID, requestID); err != nil {
		telemetry.Error("match.analysis_error", map[string]any{
			"request_id": requestID,
			"match_id":   matchID,
			"error":      util.SanitizeError(err),
		})
	}
}

// Process runs one queued match analysis to completion. Both the in-process
// path and the queue worker land here.
func (s *Service) Process(ctx context.Context, matchID, requestID string) error {
	score, err := s.Repo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	started := time.Now().UTC()
	if err := s.Repo.MarkProcessing(ctx, matchID, started); err != nil {
		return err
	}

	sub, err := s.Submissions.GetByID(ctx, score.SubmissionID)
	if err != nil {
		s.failScore(ctx, matchID, ErrorCodeValidation, err, requestID)
		return err
	}
	req, err := s.Requirements.GetByID(ctx, sub.RequirementID)
	if err != nil {
		s.failScore(ctx, matchID, ErrorCodeValidation, err, requestID)
		return err
	}

	text, linked, err := s.candidateText(ctx, sub, requestID)
	if err != nil {
		s.failScore(ctx, matchID, classifyFailure(err), err, requestID)
		return err
	}

	profile := signals.BuildProfile(text, linked.Skills, linkedDurations(linked), linked.Headline)
	local := scoring.Score(profile, scoring.Requirement{
		Title:         req.Title,
		Description:   req.Description,
		Skills:        req.Skills,
		ExperienceMin: req.ExperienceMin,
		ExperienceMax: req.ExperienceMax,
	})

	result := s.reconcile(ctx, matchID, requestID, text, req, local)

	completedAt := time.Now().UTC()
	result.ID = matchID
	result.SubmissionID = sub.ID
	result.RequirementID = req.ID
	result.StartedAt = &started
	result.CompletedAt = &completedAt
	if err := s.Repo.MarkCompleted(ctx, result); err != nil {
		return err
	}

	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(float64(completedAt.Sub(started).Milliseconds()))
	telemetry.Info("match.completed", map[string]any{
		"request_id":     requestID,
		"match_id":       matchID,
		"submission_id":  sub.ID,
		"requirement_id": req.ID,
		"source":         result.Source,
		"degraded":       result.Degraded,
		"overall_score":  result.OverallScore,
		"duration_ms":    completedAt.Sub(started).Milliseconds(),
	})
	return nil
}

// candidateText gathers text from every source the submission carries. One
// source failing is tolerable as long as another yields text; only a fully
// empty candidate is an error.
func (s *Service) candidateText(ctx context.Context, sub submissions.Submission, requestID string) (string, extract.PartialProfile, error) {
	var sections []string
	var linked extract.PartialProfile
	var firstErr error

	if sub.ResumeKey != "" {
		resumeText, err := s.resumeText(ctx, sub.ResumeKey)
		if err != nil {
			firstErr = err
			telemetry.Warn("match.resume_extract_failed", map[string]any{
				"request_id":    requestID,
				"submission_id": sub.ID,
				"error":         util.SanitizeError(err),
			})
		} else {
			sections = append(sections, "=== Resume ===\n"+resumeText)
		}
	}

	if sub.LinkedInURL != "" && s.Fetcher != nil {
		html, err := s.Fetcher.FetchProfile(ctx, sub.LinkedInURL)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			telemetry.Warn("match.profile_fetch_failed", map[string]any{
				"request_id":    requestID,
				"submission_id": sub.ID,
				"error":         util.SanitizeError(err),
			})
		} else {
			linked = extract.FromLinkedInHTML(html)
			if profileText := linked.Text(); strings.TrimSpace(profileText) != "" {
				sections = append(sections, "=== LinkedIn Profile ===\n"+profileText)
			}
		}
	}

	if len(sections) == 0 {
		if firstErr != nil {
			return "", extract.PartialProfile{}, firstErr
		}
		return "", extract.PartialProfile{}, ErrNoCandidateText
	}
	return strings.Join(sections, "\n\n"), linked, nil
}

func (s *Service) resumeText(ctx context.Context, key string) (string, error) {
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxResumeBytes))
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	result, err := extract.FromPDF(data)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// reconcile runs the AI analysis and decides which result to persist. The AI
// result wins when it arrives and validates; every AI failure mode lands on
// the local result with the degraded flag set, never on an error.
func (s *Service) reconcile(ctx context.Context, matchID, requestID, text string, req requirements.Requirement, local scoring.Result) MatchScore {
	if s.LLM == nil {
		return scoreFromLocal(local, false)
	}

	if s.Limiter != nil {
		if err := s.Limiter.Acquire(ctx, llm.CategoryMatchScoring); err != nil {
			telemetry.Warn("match.llm_rate_limit_wait_aborted", map[string]any{
				"request_id":       requestID,
				"match_id":         matchID,
				"budget_remaining": s.Limiter.Remaining(llm.CategoryMatchScoring),
				"error":            util.SanitizeError(err),
			})
			metrics.IncMatchDegraded()
			return scoreFromLocal(local, true)
		}
	}

	client := newRetryingLLM(s.LLM, matchID, requestID)
	raw, err := client.AnalyzeCandidate(ctx, llm.AnalyzeInput{
		CandidateText:          text,
		RequirementTitle:       req.Title,
		RequirementDescription: req.Description,
		RequiredSkills:         req.Skills,
		ExperienceMin:          req.ExperienceMin,
		ExperienceMax:          req.ExperienceMax,
	})
	if err != nil {
		// No provider configured is the expected dev setup, not a degradation.
		if errors.Is(err, llm.ErrNotImplemented) {
			return scoreFromLocal(local, false)
		}
		telemetry.Warn("match.llm_failed", map[string]any{
			"request_id": requestID,
			"match_id":   matchID,
			"error":      util.SanitizeError(err),
		})
		metrics.IncMatchDegraded()
		return scoreFromLocal(local, true)
	}

	analysis, degraded := ParseAnalysis(raw)
	if degraded {
		telemetry.Warn("match.llm_response_invalid", map[string]any{
			"request_id": requestID,
			"match_id":   matchID,
		})
		metrics.IncLLMFallback()
		metrics.IncMatchDegraded()
		return scoreFromLocal(local, true)
	}
	return scoreFromAI(analysis)
}

func (s *Service) failScore(ctx context.Context, matchID, code string, cause error, requestID string) {
	if err := s.Repo.MarkFailed(ctx, matchID, code, util.SanitizeError(cause), time.Now().UTC()); err != nil {
		telemetry.Error("match.mark_failed_error", map[string]any{
			"request_id": requestID,
			"match_id":   matchID,
			"error":      util.SanitizeError(err),
		})
	}
	metrics.IncMatchFailed()
	telemetry.Error("match.failed", map[string]any{
		"request_id": requestID,
		"match_id":   matchID,
		"error_code": code,
		"error":      util.SanitizeError(cause),
	})
}

// Get returns a match score by ID.
func (s *Service) Get(ctx context.Context, id string) (MatchScore, error) {
	return s.Repo.GetByID(ctx, id)
}

// LatestForSubmission returns the newest match score for a submission.
func (s *Service) LatestForSubmission(ctx context.Context, submissionID string) (MatchScore, error) {
	return s.Repo.GetLatestBySubmission(ctx, submissionID)
}

// ListByRequirement returns completed match scores for a requirement, best
// first.
func (s *Service) ListByRequirement(ctx context.Context, requirementID string, limit, offset int) ([]MatchScore, error) {
	return s.Repo.ListByRequirement(ctx, requirementID, limit, offset)
}

func scoreFromLocal(local scoring.Result, degraded bool) MatchScore {
	return MatchScore{
		Status:          StatusCompleted,
		Source:          SourceLocal,
		Degraded:        degraded,
		OverallScore:    local.OverallScore,
		SkillsScore:     local.SubScores.Skills,
		ExperienceScore: local.SubScores.Experience,
		EducationScore:  local.SubScores.Education,
		KeywordsScore:   local.SubScores.Keywords,
		Recommendation:  string(local.Recommendation),
		MatchLevel:      string(local.MatchLevel),
		Reasoning:       local.Reasoning,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
}

func scoreFromAI(analysis AIAnalysis) MatchScore {
	return MatchScore{
		Status:          StatusCompleted,
		Source:          SourceAI,
		OverallScore:    analysis.OverallScore,
		SkillsScore:     analysis.SubScores.Skills,
		ExperienceScore: analysis.SubScores.Experience,
		EducationScore:  analysis.SubScores.Education,
		KeywordsScore:   analysis.SubScores.Keywords,
		Recommendation:  string(scoring.RecommendationFor(analysis.OverallScore)),
		MatchLevel:      string(scoring.MatchLevelFor(analysis.OverallScore)),
		Reasoning:       analysis.Reasoning,
		Strengths:       analysis.Strengths,
		Weaknesses:      analysis.Weaknesses,
		Recommendations: analysis.Recommendations,
	}
}

func linkedDurations(p extract.PartialProfile) []string {
	var out []string
	for _, e := range p.Experience {
		if e.Duration != "" {
			out = append(out, e.Duration)
		}
	}
	return out
}

func classifyFailure(err error) string {
	switch {
	case errors.Is(err, ErrNoCandidateText):
		return ErrorCodeValidation
	case errors.Is(err, extract.ErrUnsupportedFormat), errors.Is(err, extract.ErrEmptyDocument):
		return ErrorCodeExtraction
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorCodeLLMTimeout
	case strings.Contains(err.Error(), "open resume"), strings.Contains(err.Error(), "read resume"):
		return ErrorCodeStorage
	default:
		return ErrorCodeInternal
	}
}
