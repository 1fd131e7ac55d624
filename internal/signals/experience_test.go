package signals

import "testing"

func TestEstimateYears(t *testing.T) {
	cases := []struct {
		name      string
		durations []string
		want      float64
	}{
		{"years and months", []string{"3 yrs 4 mos"}, 3.3},
		{"years only", []string{"2 years"}, 2.0},
		{"months only", []string{"6 mos"}, 0.5},
		{"sums entries", []string{"3 yrs 4 mos", "2 yrs"}, 5.3},
		{"unparseable counts as a year", []string{"Present"}, 1.0},
		{"mixed parseable and not", []string{"1 yr", "Present"}, 2.0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateYears(tc.durations); got != tc.want {
				t.Errorf("EstimateYears(%v) = %v, want %v", tc.durations, got, tc.want)
			}
		})
	}
}

func TestYearsFromText(t *testing.T) {
	if got := YearsFromText("Over 7 years of experience building APIs. Also 3 years of frontend experience."); got != 7 {
		t.Errorf("years = %v", got)
	}
	if got := YearsFromText("no tenure claims here"); got != 0 {
		t.Errorf("years = %v", got)
	}
}

func TestDetermineLevel(t *testing.T) {
	cases := []struct {
		text string
		want ExperienceLevel
	}{
		{"junior developer, recent graduate", LevelJunior},
		{"senior staff engineer, tech lead, principal track", LevelSenior},
		{"director of engineering, vp candidate, head of platform", LevelExecutive},
		{"resume with no level hints whatsoever", LevelMid},
	}
	for _, tc := range cases {
		if got := DetermineLevel(tc.text); got != tc.want {
			t.Errorf("DetermineLevel(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestDetermineLevelTieKeepsEarlier(t *testing.T) {
	// One junior keyword and one senior keyword: the earlier level wins.
	if got := DetermineLevel("junior to senior transition"); got != LevelJunior {
		t.Errorf("tie broke to %v, want junior", got)
	}
}

func TestDetermineSeniorityHeadlineBeatsYears(t *testing.T) {
	cases := []struct {
		headline string
		years    float64
		want     string
	}{
		{"Director of Engineering", 1, "Director+"},
		{"Head of Data", 0, "Director+"},
		{"Senior Software Engineer", 1, "Senior"},
		{"Engineering Manager", 2, "Manager"},
		{"Software Engineer", 10, "Senior"},
		{"Software Engineer", 5, "Mid-level"},
		{"Software Engineer", 2, "Junior"},
		{"", 0, "Junior"},
	}
	for _, tc := range cases {
		if got := DetermineSeniority(tc.headline, tc.years); got != tc.want {
			t.Errorf("DetermineSeniority(%q, %v) = %q, want %q", tc.headline, tc.years, got, tc.want)
		}
	}
}

func TestBuildProfile(t *testing.T) {
	text := "Senior engineer with 6 years of experience. Skills: Go, PostgreSQL, Docker. BSc from TU Berlin. AWS Certified."
	p := BuildProfile(text, []string{"Go", "PostgreSQL", "Docker"}, []string{"3 yrs", "3 yrs"}, "Senior Backend Engineer")

	if p.ExperienceYears != 6 {
		t.Errorf("years = %v", p.ExperienceYears)
	}
	if !containsString(p.Skills["programming"], "Go") {
		t.Errorf("skills = %v", p.Skills)
	}
	if !containsString(p.Roles, "engineer") {
		t.Errorf("roles = %v", p.Roles)
	}
	if !containsString(p.EducationKeywords, "bsc") {
		t.Errorf("education = %v", p.EducationKeywords)
	}
	if len(p.Certifications) == 0 {
		t.Errorf("certifications = %v", p.Certifications)
	}
	if p.Seniority != "Senior" {
		t.Errorf("seniority = %q", p.Seniority)
	}
	if p.ExperienceLevel != LevelSenior {
		t.Errorf("level = %v", p.ExperienceLevel)
	}
}

func TestBuildProfileFallsBackToTextSignals(t *testing.T) {
	text := "Backend developer, 4 years of experience with python and redis"
	p := BuildProfile(text, nil, nil, "")

	if p.ExperienceYears != 4 {
		t.Errorf("years = %v", p.ExperienceYears)
	}
	if !containsString(p.Skills["programming"], "python") {
		t.Errorf("skills = %v", p.Skills)
	}
	if !containsString(p.Skills["database"], "redis") {
		t.Errorf("skills = %v", p.Skills)
	}
}
