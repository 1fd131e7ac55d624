package matching

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recruit-backend/internal/llm"
)

type scriptedLLM struct {
	errs  []error
	calls int
}

func (s *scriptedLLM) AnalyzeCandidate(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	s.calls++
	if s.calls <= len(s.errs) && s.errs[s.calls-1] != nil {
		return nil, s.errs[s.calls-1]
	}
	return json.RawMessage(`{"overallScore": 70}`), nil
}

func noSleep(retrier llm.Client) retryingLLM {
	r := retrier.(retryingLLM)
	r.sleep = func(context.Context, time.Duration) error { return nil }
	return r
}

func TestRetryingLLMRetriesTransientErrors(t *testing.T) {
	base := &scriptedLLM{errs: []error{
		&llm.APIError{StatusCode: 503, Type: "server_error"},
		&llm.APIError{StatusCode: 429, Type: "rate_limit_exceeded"},
	}}
	r := noSleep(newRetryingLLM(base, "m1", "r1"))

	raw, err := r.AnalyzeCandidate(context.Background(), llm.AnalyzeInput{})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if base.calls != 3 {
		t.Errorf("calls = %d, want 3", base.calls)
	}
	if !json.Valid(raw) {
		t.Errorf("raw = %s", raw)
	}
}

func TestRetryingLLMDoesNotRetryFatalErrors(t *testing.T) {
	fatal := &llm.APIError{StatusCode: 401, Type: "invalid_request_error", Message: "bad key"}
	base := &scriptedLLM{errs: []error{fatal, nil}}
	r := noSleep(newRetryingLLM(base, "m1", "r1"))

	_, err := r.AnalyzeCandidate(context.Background(), llm.AnalyzeInput{})
	var apiErr *llm.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if base.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on auth failure)", base.calls)
	}
}

func TestRetryingLLMGivesUpAfterMaxAttempts(t *testing.T) {
	transient := &llm.APIError{StatusCode: 500, Type: "server_error"}
	base := &scriptedLLM{errs: []error{transient, transient, transient, transient}}
	r := noSleep(newRetryingLLM(base, "m1", "r1"))

	_, err := r.AnalyzeCandidate(context.Background(), llm.AnalyzeInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if base.calls != llmMaxAttempts {
		t.Errorf("calls = %d, want %d", base.calls, llmMaxAttempts)
	}
}

func TestBackoffDelayDoublesWithCeiling(t *testing.T) {
	for attempt, wantBase := range map[int]time.Duration{
		1: llmRetryBaseDelay,
		2: 2 * llmRetryBaseDelay,
		3: 4 * llmRetryBaseDelay,
	} {
		d := backoffDelay(attempt)
		if d < wantBase || d >= wantBase+llmRetryJitter {
			t.Errorf("attempt %d: delay %v outside [%v, %v)", attempt, d, wantBase, wantBase+llmRetryJitter)
		}
	}
	// Far past the doubling range the delay stays at the ceiling.
	if d := backoffDelay(10); d < llmRetryMaxDelay || d >= llmRetryMaxDelay+llmRetryJitter {
		t.Errorf("capped delay = %v", d)
	}
}
