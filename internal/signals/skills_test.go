package signals

import "testing"

func TestCategorizeByDomainPartitions(t *testing.T) {
	skills := []string{"Python", "React", "PostgreSQL", "AWS", "Flutter", "Pottery"}
	buckets := CategorizeByDomain(skills)

	total := 0
	for _, list := range buckets {
		total += len(list)
	}
	if total != len(skills) {
		t.Fatalf("partition lost skills: %d in, %d out (%v)", len(skills), total, buckets)
	}

	want := map[string]string{
		"Python":     "programming",
		"React":      "frontend",
		"PostgreSQL": "database",
		"AWS":        "cloud",
		"Flutter":    "mobile",
		"Pottery":    "other",
	}
	for skill, cat := range want {
		if !containsString(buckets[cat], skill) {
			t.Errorf("%s not in %s: %v", skill, cat, buckets)
		}
	}
}

func TestCategorizeByTypeCertificationWins(t *testing.T) {
	buckets := CategorizeByType([]string{"AWS Certified Solutions Architect", "AWS", "Leadership"})
	if !containsString(buckets["certification"], "AWS Certified Solutions Architect") {
		t.Errorf("certification bucket = %v", buckets["certification"])
	}
	if !containsString(buckets["technical"], "AWS") {
		t.Errorf("technical bucket = %v", buckets["technical"])
	}
	if !containsString(buckets["soft"], "Leadership") {
		t.Errorf("soft bucket = %v", buckets["soft"])
	}
}

func TestCategorizeUnknownFallsBackToTechnical(t *testing.T) {
	buckets := CategorizeByType([]string{"Underwater Basket Weaving"})
	if !containsString(buckets["technical"], "Underwater Basket Weaving") {
		t.Errorf("fallback bucket = %v", buckets)
	}
}

func TestDetectSkillsUsesWordBoundaries(t *testing.T) {
	found := DetectSkills("I searched google for a javascript tutorial")
	if containsString(found, "go") {
		t.Errorf("go should not fire on google: %v", found)
	}
	if containsString(found, "java") {
		t.Errorf("java should not fire on javascript: %v", found)
	}
	if !containsString(found, "javascript") {
		t.Errorf("javascript missing: %v", found)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
