package matching

import (
	"encoding/json"
	"math"
	"strings"

	"recruit-backend/internal/scoring"
)

// FallbackReasoning is the sentinel line on results replaced wholesale after
// a validation failure. Clients key off it to flag manual review.
const FallbackReasoning = "AI analysis unavailable - manual review recommended"

// AIAnalysis is the validated shape of a model response.
type AIAnalysis struct {
	OverallScore    int
	SubScores       scoring.SubScores
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Reasoning       []string
}

// FallbackAnalysis is the neutral result used when the model response failed
// validation: a middle score, empty lists, and the manual-review sentinel.
func FallbackAnalysis() AIAnalysis {
	return AIAnalysis{
		OverallScore:    50,
		SubScores:       scoring.SubScores{Skills: 50, Experience: 50, Education: 50, Keywords: 50},
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		Reasoning:       []string{FallbackReasoning},
	}
}

type aiPayload struct {
	OverallScore *float64 `json:"overallScore"`
	SubScores    struct {
		Skills     *float64 `json:"skills"`
		Experience *float64 `json:"experience"`
		Education  *float64 `json:"education"`
		Keywords   *float64 `json:"keywords"`
	} `json:"subScores"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Reasoning       []string `json:"reasoning"`
}

// ParseAnalysis validates a raw model response. A response without a numeric
// overallScore in [0,100] is replaced wholesale by the fallback, reported via
// the degraded flag; validation failure is never an error the caller has to
// handle. Missing sub-scores inherit the overall score.
func ParseAnalysis(raw json.RawMessage) (AIAnalysis, bool) {
	cleaned := CleanJSONBlock(raw)

	var payload aiPayload
	if err := json.Unmarshal(cleaned, &payload); err != nil {
		return FallbackAnalysis(), true
	}
	if payload.OverallScore == nil || *payload.OverallScore < 0 || *payload.OverallScore > 100 {
		return FallbackAnalysis(), true
	}

	overall := int(math.Round(*payload.OverallScore))
	return AIAnalysis{
		OverallScore: overall,
		SubScores: scoring.SubScores{
			Skills:     subScore(payload.SubScores.Skills, overall),
			Experience: subScore(payload.SubScores.Experience, overall),
			Education:  subScore(payload.SubScores.Education, overall),
			Keywords:   subScore(payload.SubScores.Keywords, overall),
		},
		Strengths:       orEmpty(payload.Strengths),
		Weaknesses:      orEmpty(payload.Weaknesses),
		Recommendations: orEmpty(payload.Recommendations),
		Reasoning:       orEmpty(payload.Reasoning),
	}, false
}

// CleanJSONBlock strips Markdown code fences that models wrap around JSON
// despite instructions not to.
func CleanJSONBlock(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}

func subScore(value *float64, fallback int) int {
	if value == nil {
		return fallback
	}
	score := int(math.Round(*value))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
