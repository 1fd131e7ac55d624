package scoring

// Component weights for the overall score. They sum to 1.0; Score rounds the
// weighted sum to the nearest integer.
const (
	WeightSkills     = 0.40
	WeightExperience = 0.30
	WeightEducation  = 0.15
	WeightKeywords   = 0.15
)

// SubScores holds the per-component scores, each in [0,100].
type SubScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Keywords   int `json:"keywords"`
}

// Recommendation is the hiring guidance tier derived from the overall score.
type Recommendation string

const (
	HighlyRecommended   Recommendation = "highly_recommended"
	Recommended         Recommendation = "recommended"
	Consider            Recommendation = "consider"
	ConsiderWithCaution Recommendation = "consider_with_caution"
	NotRecommended      Recommendation = "not_recommended"
)

// MatchLevel is the qualitative band for the overall score.
type MatchLevel string

const (
	LevelExcellent MatchLevel = "excellent"
	LevelGood      MatchLevel = "good"
	LevelModerate  MatchLevel = "moderate"
	LevelWeak      MatchLevel = "weak"
	LevelPoor      MatchLevel = "poor"
)

// RecommendationFor maps an overall score to guidance. The bands share their
// cut points with MatchLevelFor so the two labels never disagree.
func RecommendationFor(score int) Recommendation {
	switch {
	case score >= 80:
		return HighlyRecommended
	case score >= 70:
		return Recommended
	case score >= 60:
		return Consider
	case score >= 40:
		return ConsiderWithCaution
	default:
		return NotRecommended
	}
}

// MatchLevelFor maps an overall score to its qualitative band.
func MatchLevelFor(score int) MatchLevel {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 60:
		return LevelModerate
	case score >= 40:
		return LevelWeak
	default:
		return LevelPoor
	}
}

// Result is the full local scoring output. Reasoning lines carry a leading
// marker: a check mark for satisfied criteria, a cross for misses, and a
// question mark where the inputs were too thin to judge.
type Result struct {
	OverallScore   int            `json:"overallScore"`
	SubScores      SubScores      `json:"subScores"`
	Recommendation Recommendation `json:"recommendation"`
	MatchLevel     MatchLevel     `json:"matchLevel"`
	Reasoning      []string       `json:"reasoning"`
}
