package matching

import (
	"encoding/json"
	"testing"
)

func TestParseAnalysisValid(t *testing.T) {
	raw := json.RawMessage(`{
		"overallScore": 82,
		"subScores": {"skills": 90, "experience": 80, "education": 70, "keywords": 75},
		"strengths": ["strong golang background"],
		"weaknesses": [],
		"recommendations": ["schedule technical interview"],
		"reasoning": ["skills align with the requirement"]
	}`)

	analysis, degraded := ParseAnalysis(raw)
	if degraded {
		t.Fatal("valid response marked degraded")
	}
	if analysis.OverallScore != 82 {
		t.Errorf("overall = %d", analysis.OverallScore)
	}
	if analysis.SubScores.Skills != 90 || analysis.SubScores.Keywords != 75 {
		t.Errorf("subScores = %+v", analysis.SubScores)
	}
	if len(analysis.Strengths) != 1 || len(analysis.Recommendations) != 1 {
		t.Errorf("lists = %+v", analysis)
	}
}

func TestParseAnalysisMissingSubScoresInheritOverall(t *testing.T) {
	analysis, degraded := ParseAnalysis(json.RawMessage(`{"overallScore": 64}`))
	if degraded {
		t.Fatal("marked degraded")
	}
	if analysis.SubScores.Skills != 64 || analysis.SubScores.Education != 64 {
		t.Errorf("subScores = %+v", analysis.SubScores)
	}
	if analysis.Strengths == nil || analysis.Reasoning == nil {
		t.Error("lists must be empty, not nil")
	}
}

func TestParseAnalysisFallsBackWholesale(t *testing.T) {
	cases := map[string]string{
		"not json":          `the candidate looks great`,
		"missing score":     `{"subScores": {"skills": 90}}`,
		"score not numeric": `{"overallScore": "high"}`,
		"score negative":    `{"overallScore": -3}`,
		"score over 100":    `{"overallScore": 140}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			analysis, degraded := ParseAnalysis(json.RawMessage(raw))
			if !degraded {
				t.Fatal("expected degraded")
			}
			if analysis.OverallScore != 50 {
				t.Errorf("fallback overall = %d, want 50", analysis.OverallScore)
			}
			if len(analysis.Strengths) != 0 || len(analysis.Weaknesses) != 0 || len(analysis.Recommendations) != 0 {
				t.Errorf("fallback lists not empty: %+v", analysis)
			}
			if len(analysis.Reasoning) != 1 || analysis.Reasoning[0] != FallbackReasoning {
				t.Errorf("fallback reasoning = %v", analysis.Reasoning)
			}
		})
	}
}

func TestParseAnalysisStripsCodeFences(t *testing.T) {
	raw := json.RawMessage("```json\n{\"overallScore\": 71}\n```")
	analysis, degraded := ParseAnalysis(raw)
	if degraded {
		t.Fatal("fenced JSON marked degraded")
	}
	if analysis.OverallScore != 71 {
		t.Errorf("overall = %d", analysis.OverallScore)
	}
}

func TestParseAnalysisClampsSubScores(t *testing.T) {
	analysis, degraded := ParseAnalysis(json.RawMessage(`{"overallScore": 50, "subScores": {"skills": 150, "experience": -10}}`))
	if degraded {
		t.Fatal("marked degraded")
	}
	if analysis.SubScores.Skills != 100 || analysis.SubScores.Experience != 0 {
		t.Errorf("subScores = %+v", analysis.SubScores)
	}
}
