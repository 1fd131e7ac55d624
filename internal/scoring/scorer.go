package scoring

import (
	"fmt"
	"math"
	"strings"

	"recruit-backend/internal/signals"
)

// Requirement carries the job-side inputs the scorer compares against.
type Requirement struct {
	Title         string
	Description   string
	Skills        []string
	ExperienceMin int
	ExperienceMax int
}

// Score compares a candidate profile against a requirement and returns the
// weighted result. It is deterministic: the same inputs always produce the
// same result, and it never fails, since thin inputs degrade to neutral
// component scores rather than errors.
func Score(p signals.CandidateProfile, req Requirement) Result {
	reqText := req.Title + "\n" + req.Description

	skillsScore, skillsWhy := ScoreSkills(p.Skills, signals.CategorizeByDomain(req.Skills))
	expScore, expWhy := ScoreExperience(p.ExperienceYears, p.Roles, req.ExperienceMin, reqText)
	eduScore, eduWhy := ScoreEducation(p.EducationKeywords, signals.DetectEducation(reqText))
	kwScore, kwWhy := ScoreKeywords(p.Keywords, reqText)

	overall := int(math.Round(
		WeightSkills*float64(skillsScore) +
			WeightExperience*float64(expScore) +
			WeightEducation*float64(eduScore) +
			WeightKeywords*float64(kwScore)))

	var reasoning []string
	reasoning = append(reasoning, skillsWhy...)
	reasoning = append(reasoning, expWhy...)
	reasoning = append(reasoning, eduWhy...)
	reasoning = append(reasoning, kwWhy...)

	return Result{
		OverallScore: overall,
		SubScores: SubScores{
			Skills:     skillsScore,
			Experience: expScore,
			Education:  eduScore,
			Keywords:   kwScore,
		},
		Recommendation: RecommendationFor(overall),
		MatchLevel:     MatchLevelFor(overall),
		Reasoning:      reasoning,
	}
}

// ScoreSkills compares candidate and required skills category by category.
// Membership is an exact case-insensitive string test within the same
// category, not fuzzy matching. The score is the matched fraction across all
// required skills, scaled to 100; with no required skills it is a neutral 50.
func ScoreSkills(candidate, required map[string][]string) (int, []string) {
	totalRequired := 0
	totalMatched := 0
	var reasoning []string

	for _, category := range domainOrder(required) {
		reqSkills := required[category]
		if len(reqSkills) == 0 {
			continue
		}
		have := lowerSet(candidate[category])
		matched := 0
		for _, skill := range reqSkills {
			if _, ok := have[strings.ToLower(strings.TrimSpace(skill))]; ok {
				matched++
			}
		}
		totalRequired += len(reqSkills)
		totalMatched += matched

		marker := "✗"
		if matched > 0 {
			marker = "✓"
		}
		reasoning = append(reasoning, fmt.Sprintf("%s %s: Matches %d/%d required skills", marker, category, matched, len(reqSkills)))
	}

	if totalRequired == 0 {
		return 50, []string{"? Skills: No required skills specified"}
	}
	score := int(math.Round(float64(totalMatched) / float64(totalRequired) * 100))
	return score, reasoning
}

// ScoreExperience starts from a neutral 50 and applies additive adjustments:
// meeting the required minimum years adds 30 and missing it subtracts 20
// (only when a minimum is set), and role-keyword overlap between candidate
// and requirement adds 20. The result is clamped to [0,100].
func ScoreExperience(years float64, candidateRoles []string, requiredMin int, reqText string) (int, []string) {
	score := 50
	var reasoning []string

	if requiredMin > 0 {
		if years >= float64(requiredMin) {
			score += 30
			reasoning = append(reasoning, fmt.Sprintf("✓ Experience: %.1f years meets the %d year minimum", years, requiredMin))
		} else {
			score -= 20
			reasoning = append(reasoning, fmt.Sprintf("✗ Experience: %.1f years is below the %d year minimum", years, requiredMin))
		}
	}

	requiredRoles := signals.DetectRoles(reqText)
	if rolesOverlap(candidateRoles, requiredRoles) {
		score += 20
		reasoning = append(reasoning, "✓ Role: title keywords align with the requirement")
	} else if len(requiredRoles) > 0 {
		reasoning = append(reasoning, "✗ Role: no overlapping role keywords")
	}

	return clamp(score), reasoning
}

// ScoreEducation starts from 70 and only ever adds: any overlap between
// candidate and required education keywords adds 30. A requirement the
// candidate does not visibly satisfy may just be missing from the resume, so
// it lowers confidence, not the score.
func ScoreEducation(candidate, required []string) (int, []string) {
	if len(required) == 0 {
		return 70, nil
	}
	have := lowerSet(candidate)
	for _, kw := range required {
		if _, ok := have[strings.ToLower(kw)]; ok {
			return 100, []string{fmt.Sprintf("✓ Education: %s requirement satisfied", kw)}
		}
	}
	return 70, []string{"? Education: required credentials not found in candidate text"}
}

// ScoreKeywords measures vocabulary overlap between the candidate text and
// the requirement text. With either side empty there is nothing to compare,
// so the component is a neutral 50.
func ScoreKeywords(candidateFreq map[string]int, reqText string) (int, []string) {
	required := make(map[string]struct{})
	for _, tok := range signals.TokenizeAndFilter(reqText) {
		required[tok] = struct{}{}
	}
	if len(candidateFreq) == 0 || len(required) == 0 {
		return 50, []string{"? Keywords: Insufficient data for comparison"}
	}

	shared := 0
	for tok := range required {
		if candidateFreq[tok] > 0 {
			shared++
		}
	}
	score := int(math.Round(float64(shared) / math.Max(float64(len(required)), 1) * 100))

	marker := "✗"
	if shared > 0 {
		marker = "✓"
	}
	return score, []string{fmt.Sprintf("%s Keywords: %d of %d requirement keywords present", marker, shared, len(required))}
}

// domainOrder returns the categories of the map in the fixed table order so
// reasoning output is stable run to run.
func domainOrder(m map[string][]string) []string {
	var out []string
	for _, cat := range signals.DomainCategories {
		if _, ok := m[cat.Name]; ok {
			out = append(out, cat.Name)
		}
	}
	if _, ok := m[signals.DefaultDomainCategory]; ok {
		out = append(out, signals.DefaultDomainCategory)
	}
	return out
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func rolesOverlap(candidate, required []string) bool {
	for _, c := range candidate {
		for _, r := range required {
			if strings.Contains(c, r) || strings.Contains(r, c) {
				return true
			}
		}
	}
	return false
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
