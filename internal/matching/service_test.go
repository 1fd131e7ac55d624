package matching

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recruit-backend/internal/llm"
	"recruit-backend/internal/queue"
	"recruit-backend/internal/requirements"
	"recruit-backend/internal/submissions"
)

const profileHTML = `<html>
<head><title>Jane Doe | LinkedIn</title></head>
<body>
<h1 class="top-card-layout__title">Jane Doe</h1>
<h2 class="top-card-layout__headline">Senior Backend Engineer</h2>
<ul class="experience__list">
  <li class="experience-item">
    <h3>Senior Backend Engineer</h3><h4>Acme</h4>
    <span class="experience-item__duration">4 yrs</span>
  </li>
</ul>
<ul class="skills__list"><li>Go</li><li>PostgreSQL</li></ul>
</body></html>`

type fakeFetcher struct {
	html string
	err  error
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, url string) (string, error) {
	_ = ctx
	_ = url
	return f.html, f.err
}

type stubLLM struct {
	raw   string
	err   error
	calls int
}

func (s *stubLLM) AnalyzeCandidate(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.raw), nil
}

type captureQueue struct {
	msgs []queue.Message
}

func (q *captureQueue) Send(ctx context.Context, msg queue.Message) error {
	_ = ctx
	q.msgs = append(q.msgs, msg)
	return nil
}

func newTestService(t *testing.T, client llm.Client, fetcher ProfileFetcher) (*Service, string) {
	t.Helper()
	reqRepo := requirements.NewMemoryRepo()
	subRepo := submissions.NewMemoryRepo()
	now := time.Now().UTC()

	req := requirements.Requirement{
		ID:            "req-1",
		Title:         "Senior Backend Engineer",
		Description:   "Golang services on postgres, 2+ years",
		Skills:        []string{"Go", "PostgreSQL"},
		ExperienceMin: 2,
		Status:        requirements.StatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := reqRepo.Create(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	sub := submissions.Submission{
		ID:            "sub-1",
		RequirementID: "req-1",
		RecruiterID:   "rec-1",
		CandidateName: "Jane Doe",
		LinkedInURL:   "https://www.linkedin.com/in/janedoe",
		Status:        submissions.StatusSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := subRepo.Create(context.Background(), sub); err != nil {
		t.Fatal(err)
	}

	svc := &Service{
		Repo:         NewMemoryRepo(),
		Submissions:  subRepo,
		Requirements: reqRepo,
		Fetcher:      fetcher,
		LLM:          client,
	}
	return svc, "sub-1"
}

func queueScore(t *testing.T, svc *Service, submissionID string) string {
	t.Helper()
	now := time.Now().UTC()
	score := MatchScore{
		ID:            "match-1",
		SubmissionID:  submissionID,
		RequirementID: "req-1",
		Status:        StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := svc.Repo.Create(context.Background(), score); err != nil {
		t.Fatal(err)
	}
	return score.ID
}

func TestProcessPrefersAIResult(t *testing.T) {
	client := &stubLLM{raw: `{"overallScore": 88, "strengths": ["deep go experience"]}`}
	svc, subID := newTestService(t, client, &fakeFetcher{html: profileHTML})
	id := queueScore(t, svc, subID)

	if err := svc.Process(context.Background(), id, "r1"); err != nil {
		t.Fatal(err)
	}

	score, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if score.Status != StatusCompleted {
		t.Fatalf("status = %q", score.Status)
	}
	if score.Source != SourceAI || score.Degraded {
		t.Errorf("source = %q degraded = %v", score.Source, score.Degraded)
	}
	if score.OverallScore != 88 {
		t.Errorf("overall = %d", score.OverallScore)
	}
	if score.Recommendation != "highly_recommended" || score.MatchLevel != "excellent" {
		t.Errorf("labels = %q/%q", score.Recommendation, score.MatchLevel)
	}
	if score.StartedAt == nil || score.CompletedAt == nil {
		t.Error("timestamps not set")
	}
}

func TestProcessFallsBackToLocalOnLLMFailure(t *testing.T) {
	client := &stubLLM{err: &llm.APIError{StatusCode: 401, Type: "invalid_request_error", Message: "bad key"}}
	svc, subID := newTestService(t, client, &fakeFetcher{html: profileHTML})
	id := queueScore(t, svc, subID)

	if err := svc.Process(context.Background(), id, "r1"); err != nil {
		t.Fatal(err)
	}

	score, _ := svc.Get(context.Background(), id)
	if score.Status != StatusCompleted {
		t.Fatalf("status = %q (LLM failure must not fail the analysis)", score.Status)
	}
	if score.Source != SourceLocal || !score.Degraded {
		t.Errorf("source = %q degraded = %v", score.Source, score.Degraded)
	}
	if len(score.Reasoning) == 0 {
		t.Error("local reasoning missing")
	}
}

func TestProcessFallsBackOnInvalidLLMResponse(t *testing.T) {
	client := &stubLLM{raw: `{"verdict": "great candidate"}`}
	svc, subID := newTestService(t, client, &fakeFetcher{html: profileHTML})
	id := queueScore(t, svc, subID)

	if err := svc.Process(context.Background(), id, "r1"); err != nil {
		t.Fatal(err)
	}

	score, _ := svc.Get(context.Background(), id)
	if score.Source != SourceLocal || !score.Degraded {
		t.Errorf("source = %q degraded = %v", score.Source, score.Degraded)
	}
}

func TestProcessDegradesWhenLLMBudgetExhausted(t *testing.T) {
	client := &stubLLM{raw: `{"overallScore": 90}`}
	svc, subID := newTestService(t, client, &fakeFetcher{html: profileHTML})
	svc.Limiter = llm.NewMinuteLimiter(map[llm.Category]int{llm.CategoryMatchScoring: 0})
	id := queueScore(t, svc, subID)

	// A cancelled context aborts the wait for the next minute window instead
	// of sleeping it out.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Process(ctx, id, "r1"); err != nil {
		t.Fatal(err)
	}

	score, _ := svc.Get(context.Background(), id)
	if score.Status != StatusCompleted {
		t.Fatalf("status = %q (an exhausted budget must not fail the analysis)", score.Status)
	}
	if score.Source != SourceLocal || !score.Degraded {
		t.Errorf("source = %q degraded = %v", score.Source, score.Degraded)
	}
	if client.calls != 0 {
		t.Errorf("llm calls = %d, want 0", client.calls)
	}
}

func TestProcessWithoutLLMUsesLocalScorer(t *testing.T) {
	svc, subID := newTestService(t, nil, &fakeFetcher{html: profileHTML})
	id := queueScore(t, svc, subID)

	if err := svc.Process(context.Background(), id, "r1"); err != nil {
		t.Fatal(err)
	}

	score, _ := svc.Get(context.Background(), id)
	if score.Status != StatusCompleted || score.Source != SourceLocal || score.Degraded {
		t.Errorf("score = %+v", score)
	}
}

func TestProcessFailsWhenNoTextAvailable(t *testing.T) {
	svc, subID := newTestService(t, nil, &fakeFetcher{err: errors.New("fetch profile: status 999")})
	id := queueScore(t, svc, subID)

	if err := svc.Process(context.Background(), id, "r1"); err == nil {
		t.Fatal("expected error")
	}

	score, _ := svc.Get(context.Background(), id)
	if score.Status != StatusFailed {
		t.Fatalf("status = %q", score.Status)
	}
	if score.ErrorCode == "" || score.ErrorMessage == "" {
		t.Errorf("error fields = %q/%q", score.ErrorCode, score.ErrorMessage)
	}
}

func TestStartEnqueuesWhenQueueConfigured(t *testing.T) {
	svc, subID := newTestService(t, nil, &fakeFetcher{html: profileHTML})
	q := &captureQueue{}
	svc.JobQueue = q

	score, err := svc.Start(context.Background(), subID, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if score.Status != StatusQueued {
		t.Errorf("status = %q", score.Status)
	}
	if len(q.msgs) != 1 || q.msgs[0].MatchScoreID != score.ID || q.msgs[0].Version != 1 {
		t.Errorf("queued = %+v", q.msgs)
	}

	stored, err := svc.Get(context.Background(), score.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != StatusQueued {
		t.Errorf("stored status = %q (worker, not API, runs the analysis)", stored.Status)
	}
}

func TestStartUnknownSubmission(t *testing.T) {
	svc, _ := newTestService(t, nil, &fakeFetcher{html: profileHTML})
	if _, err := svc.Start(context.Background(), "missing", "r1"); !errors.Is(err, submissions.ErrNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestListByRequirementOrdersByScore(t *testing.T) {
	svc, _ := newTestService(t, nil, &fakeFetcher{html: profileHTML})
	ctx := context.Background()
	now := time.Now().UTC()
	for i, overall := range []int{55, 91, 73} {
		score := MatchScore{
			ID:            string(rune('a' + i)),
			SubmissionID:  "sub-x",
			RequirementID: "req-1",
			Status:        StatusQueued,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := svc.Repo.Create(ctx, score); err != nil {
			t.Fatal(err)
		}
		score.OverallScore = overall
		score.Source = SourceLocal
		if err := svc.Repo.MarkCompleted(ctx, score); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListByRequirement(ctx, "req-1", 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].OverallScore != 91 || list[1].OverallScore != 73 || list[2].OverallScore != 55 {
		t.Errorf("order = %d, %d, %d", list[0].OverallScore, list[1].OverallScore, list[2].OverallScore)
	}
}
