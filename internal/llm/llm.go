package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for candidate matching.
type Client interface {
	AnalyzeCandidate(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
}

// AnalyzeInput captures the inputs needed for a candidate match analysis.
type AnalyzeInput struct {
	CandidateText          string
	RequirementTitle       string
	RequirementDescription string
	RequiredSkills         []string
	ExperienceMin          int
	ExperienceMax          int
}

// Message is one chat turn sent to a provider.
type Message struct {
	Role    string
	Content string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is the stand-in when no provider is configured. Callers
// treat its error like any other provider failure and fall back to the local
// scorer.
type PlaceholderClient struct{}

// AnalyzeCandidate returns ErrNotImplemented.
func (PlaceholderClient) AnalyzeCandidate(ctx context.Context, input AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
