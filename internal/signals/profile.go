package signals

import "strings"

// CandidateProfile is the structured signal set the scorers consume. It is
// derived entirely from candidate text plus whatever structured fields the
// extractors recovered, so every field is best effort.
type CandidateProfile struct {
	RawText           string
	Skills            map[string][]string
	Roles             []string
	EducationKeywords []string
	Certifications    []string
	ExperienceYears   float64
	ExperienceLevel   ExperienceLevel
	Seniority         string
	Keywords          map[string]int
}

var roleKeywords = []string{
	"developer", "engineer", "architect", "manager", "analyst", "consultant",
	"designer", "devops", "administrator", "scientist", "tester", "qa",
	"lead", "specialist", "intern",
}

var educationKeywords = []string{
	"phd", "doctorate", "master", "mba", "msc", "m.tech", "bachelor", "bsc",
	"b.tech", "b.e.", "degree", "diploma", "university", "college",
	"bootcamp",
}

var certificationKeywords = []string{
	"aws certified", "azure certified", "google cloud certified", "pmp",
	"cka", "ckad", "ccna", "ccnp", "cissp", "comptia", "scrum master",
	"certified", "certification",
}

// BuildProfile derives a CandidateProfile from flattened candidate text and
// any structured skills, experience durations and headline the extractors
// produced. Structured inputs win where present; the text fills the gaps.
func BuildProfile(text string, structuredSkills []string, durations []string, headline string) CandidateProfile {
	skills := append([]string(nil), structuredSkills...)
	if len(skills) == 0 {
		skills = DetectSkills(text)
	}

	years := EstimateYears(durations)
	if len(durations) == 0 {
		years = YearsFromText(text)
	}

	return CandidateProfile{
		RawText:           text,
		Skills:            CategorizeByDomain(skills),
		Roles:             detectKeywords(text, roleKeywords),
		EducationKeywords: detectKeywords(text, educationKeywords),
		Certifications:    detectKeywords(text, certificationKeywords),
		ExperienceYears:   years,
		ExperienceLevel:   DetermineLevel(text),
		Seniority:         DetermineSeniority(headline, years),
		Keywords:          Frequencies(text),
	}
}

// DetectRoles returns the role keywords present in the text. The scorer runs
// it over requirement titles to get the role side of its comparison.
func DetectRoles(text string) []string {
	return detectKeywords(text, roleKeywords)
}

// DetectEducation returns the education keywords present in the text.
func DetectEducation(text string) []string {
	return detectKeywords(text, educationKeywords)
}

func detectKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// FlatSkills returns every skill across categories as one slice.
func (p CandidateProfile) FlatSkills() []string {
	var out []string
	for _, list := range p.Skills {
		out = append(out, list...)
	}
	return out
}
