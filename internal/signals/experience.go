package signals

import (
	"math"
	"regexp"
	"strings"
)

var (
	durationYearRe  = regexp.MustCompile(`(\d+)\s*(?:yrs?|years?)`)
	durationMonthRe = regexp.MustCompile(`(\d+)\s*(?:mos?|months?)`)
)

// Duration strings on profiles come in shapes like "3 yrs 4 mos", "2 years",
// "11 mos". An entry where neither pattern matches still represents a held
// position, so it counts as one year rather than zero.
const defaultEntryMonths = 12

// EstimateYears sums the durations of experience entries and returns total
// years rounded to one decimal. Year and month patterns are matched
// independently so both parts of "3 yrs 4 mos" contribute.
func EstimateYears(durations []string) float64 {
	totalMonths := 0
	for _, d := range durations {
		lower := strings.ToLower(d)
		months := 0
		matched := false
		for _, m := range durationYearRe.FindAllStringSubmatch(lower, -1) {
			months += 12 * atoiSafe(m[1])
			matched = true
		}
		for _, m := range durationMonthRe.FindAllStringSubmatch(lower, -1) {
			months += atoiSafe(m[1])
			matched = true
		}
		if !matched {
			months = defaultEntryMonths
		}
		totalMonths += months
	}
	return math.Round(float64(totalMonths)/12*10) / 10
}

var textYearsRe = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:\w+\s+)?experience`)

// YearsFromText looks for "N years of experience" style claims in free text
// and returns the largest one, or 0 when none are present. Used when a
// candidate has no structured experience entries to sum.
func YearsFromText(text string) float64 {
	lower := strings.ToLower(text)
	best := 0
	for _, m := range textYearsRe.FindAllStringSubmatch(lower, -1) {
		if n := atoiSafe(m[1]); n > best {
			best = n
		}
	}
	return float64(best)
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// ExperienceLevel is a coarse career-stage classification.
type ExperienceLevel string

const (
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

var levelKeywords = []struct {
	level    ExperienceLevel
	keywords []string
}{
	{LevelJunior, []string{"junior", "entry level", "entry-level", "intern", "trainee", "graduate"}},
	{LevelMid, []string{"mid-level", "mid level", "intermediate", "associate"}},
	{LevelSenior, []string{"senior", "sr.", "lead", "principal", "staff engineer"}},
	{LevelExecutive, []string{"director", "vice president", "vp ", "chief", "head of", "founder", "cto", "ceo"}},
}

// DetermineLevel votes each level by how many of its keywords appear in the
// text and returns the winner. Ties keep the earlier level, and text with no
// signal at all defaults to mid.
func DetermineLevel(text string) ExperienceLevel {
	lower := strings.ToLower(text)
	best := LevelMid
	bestCount := 0
	for _, entry := range levelKeywords {
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best = entry.level
			bestCount = count
		}
	}
	return best
}

// DetermineSeniority labels a candidate from headline and tenure. Title
// keywords outrank years: a headline that says Director is Director+ no
// matter how short the resume.
func DetermineSeniority(headline string, years float64) string {
	lower := strings.ToLower(headline)
	switch {
	case containsAny(lower, "director", "vp", "vice president", "head of"):
		return "Director+"
	case containsAny(lower, "senior", "lead", "principal"):
		return "Senior"
	case containsAny(lower, "manager", "supervisor"):
		return "Manager"
	}
	switch {
	case years >= 8:
		return "Senior"
	case years >= 4:
		return "Mid-level"
	default:
		return "Junior"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
