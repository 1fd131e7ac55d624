package matching

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"recruit-backend/internal/llm"
	"recruit-backend/internal/shared/util"
)

// Backoff schedule for transient LLM failures. The delay doubles per attempt
// from the base up to the ceiling, plus a random jitter so concurrent
// analyses do not retry in lockstep. Fatal errors never retry.
const (
	llmMaxAttempts    = 3
	llmRetryBaseDelay = 500 * time.Millisecond
	llmRetryMaxDelay  = 8 * time.Second
	llmRetryJitter    = 250 * time.Millisecond
)

type retryingLLM struct {
	base      llm.Client
	matchID   string
	requestID string
	sleep     func(ctx context.Context, d time.Duration) error
}

func newRetryingLLM(base llm.Client, matchID, requestID string) llm.Client {
	if base == nil {
		return nil
	}
	return retryingLLM{
		base:      base,
		matchID:   matchID,
		requestID: requestID,
		sleep:     sleepCtx,
	}
}

func (r retryingLLM) AnalyzeCandidate(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	var lastErr error
	for attempt := 1; attempt <= llmMaxAttempts; attempt++ {
		resp, err := r.base.AnalyzeCandidate(ctx, input)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !llm.IsTransient(err) || attempt == llmMaxAttempts {
			return nil, err
		}

		delay := backoffDelay(attempt)
		log.Printf("llm retry attempt=%d request_id=%s match_id=%s delay_ms=%d error=%s",
			attempt, r.requestID, r.matchID, delay.Milliseconds(), util.SanitizeError(err))
		if err := r.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func backoffDelay(attempt int) time.Duration {
	delay := llmRetryBaseDelay << (attempt - 1)
	if delay > llmRetryMaxDelay {
		delay = llmRetryMaxDelay
	}
	return delay + time.Duration(rand.Int63n(int64(llmRetryJitter)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
