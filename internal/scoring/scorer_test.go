package scoring

import (
	"reflect"
	"strings"
	"testing"

	"recruit-backend/internal/signals"
)

func TestScoreSkillsPartialMatch(t *testing.T) {
	candidate := map[string][]string{"programming": {"Python"}}
	required := map[string][]string{"programming": {"python", "java"}}

	score, reasoning := ScoreSkills(candidate, required)
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
	if len(reasoning) != 1 || !strings.Contains(reasoning[0], "Matches 1/2") {
		t.Errorf("reasoning = %v", reasoning)
	}
	if !strings.HasPrefix(reasoning[0], "✓") {
		t.Errorf("expected ✓ marker: %q", reasoning[0])
	}
}

func TestScoreSkillsNoMatchGetsCrossMarker(t *testing.T) {
	candidate := map[string][]string{"programming": {"javascript"}}
	required := map[string][]string{"programming": {"java"}}

	score, reasoning := ScoreSkills(candidate, required)
	if score != 0 {
		t.Errorf("score = %d, want 0 (membership is exact, not fuzzy)", score)
	}
	if len(reasoning) != 1 || !strings.HasPrefix(reasoning[0], "✗") {
		t.Errorf("reasoning = %v", reasoning)
	}
}

func TestScoreSkillsNoRequiredSkills(t *testing.T) {
	score, reasoning := ScoreSkills(map[string][]string{"programming": {"go"}}, nil)
	if score != 50 {
		t.Errorf("score = %d, want neutral 50", score)
	}
	if len(reasoning) != 1 || !strings.HasPrefix(reasoning[0], "?") {
		t.Errorf("reasoning = %v", reasoning)
	}
}

func TestScoreExperience(t *testing.T) {
	cases := []struct {
		name    string
		years   float64
		roles   []string
		min     int
		reqText string
		want    int
	}{
		{"meets minimum and role", 5, []string{"engineer"}, 3, "Senior Backend Engineer", 100},
		{"meets minimum only", 5, nil, 3, "headcount for platform team", 80},
		{"below minimum", 2, nil, 5, "headcount for platform team", 30},
		{"no minimum no roles", 0, nil, 0, "generic posting", 50},
		{"role overlap only", 1, []string{"developer"}, 0, "Backend Developer", 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := ScoreExperience(tc.years, tc.roles, tc.min, tc.reqText)
			if got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreEducation(t *testing.T) {
	if score, reasoning := ScoreEducation([]string{"bsc"}, nil); score != 70 || reasoning != nil {
		t.Errorf("no requirement: score = %d, reasoning = %v", score, reasoning)
	}

	score, reasoning := ScoreEducation([]string{"bachelor", "university"}, []string{"bachelor"})
	if score != 100 {
		t.Errorf("overlap: score = %d, want 100", score)
	}
	if len(reasoning) != 1 || !strings.HasPrefix(reasoning[0], "✓") {
		t.Errorf("reasoning = %v", reasoning)
	}

	score, reasoning = ScoreEducation(nil, []string{"master"})
	if score != 70 {
		t.Errorf("unmatched requirement must not subtract: score = %d", score)
	}
	if len(reasoning) != 1 || !strings.HasPrefix(reasoning[0], "?") {
		t.Errorf("reasoning = %v", reasoning)
	}
}

func TestScoreKeywordsInsufficientData(t *testing.T) {
	score, reasoning := ScoreKeywords(nil, "backend engineer with golang")
	if score != 50 {
		t.Errorf("score = %d, want exactly 50", score)
	}
	if len(reasoning) != 1 || reasoning[0] != "? Keywords: Insufficient data for comparison" {
		t.Errorf("reasoning = %v", reasoning)
	}

	score, reasoning = ScoreKeywords(signals.Frequencies("golang postgres"), "")
	if score != 50 || reasoning[0] != "? Keywords: Insufficient data for comparison" {
		t.Errorf("empty requirement: score = %d, reasoning = %v", score, reasoning)
	}
}

func TestScoreKeywordsOverlap(t *testing.T) {
	candidate := signals.Frequencies("golang postgres kubernetes clusters")
	score, _ := ScoreKeywords(candidate, "golang postgres experience")
	// Requirement tokens: golang, postgres, experience. Two are shared.
	if score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
}

func TestScorePerfectMatch(t *testing.T) {
	req := Requirement{
		Title:         "Senior Backend Engineer",
		Description:   "Bachelor degree required. Golang and postgres production experience.",
		Skills:        []string{"Go"},
		ExperienceMin: 3,
	}
	p := signals.CandidateProfile{
		Skills:            map[string][]string{"programming": {"Go"}},
		Roles:             []string{"engineer"},
		EducationKeywords: []string{"bachelor", "degree"},
		ExperienceYears:   6,
		Keywords:          signals.Frequencies(req.Title + "\n" + req.Description),
	}

	result := Score(p, req)
	if result.OverallScore != 100 {
		t.Fatalf("overall = %d, want 100 (%v)", result.OverallScore, result.Reasoning)
	}
	if result.Recommendation != HighlyRecommended || result.MatchLevel != LevelExcellent {
		t.Errorf("labels = %v/%v", result.Recommendation, result.MatchLevel)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	req := Requirement{
		Title:         "Data Engineer",
		Description:   "Python and SQL, 4 years of pipeline experience",
		Skills:        []string{"Python", "SQL", "Spark"},
		ExperienceMin: 4,
	}
	p := signals.BuildProfile(
		"Data engineer, 5 years of experience with python and postgres pipelines",
		nil, nil, "Data Engineer")

	first := Score(p, req)
	second := Score(p, req)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
	if first.OverallScore < 0 || first.OverallScore > 100 {
		t.Errorf("overall out of range: %d", first.OverallScore)
	}
}

func TestRecommendationBands(t *testing.T) {
	cases := []struct {
		score int
		rec   Recommendation
		level MatchLevel
	}{
		{85, HighlyRecommended, LevelExcellent},
		{80, HighlyRecommended, LevelExcellent},
		{79, Recommended, LevelGood},
		{70, Recommended, LevelGood},
		{69, Consider, LevelModerate},
		{60, Consider, LevelModerate},
		{59, ConsiderWithCaution, LevelWeak},
		{40, ConsiderWithCaution, LevelWeak},
		{39, NotRecommended, LevelPoor},
		{0, NotRecommended, LevelPoor},
	}
	for _, tc := range cases {
		if got := RecommendationFor(tc.score); got != tc.rec {
			t.Errorf("RecommendationFor(%d) = %v, want %v", tc.score, got, tc.rec)
		}
		if got := MatchLevelFor(tc.score); got != tc.level {
			t.Errorf("MatchLevelFor(%d) = %v, want %v", tc.score, got, tc.level)
		}
	}
}
