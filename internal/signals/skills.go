package signals

import "strings"

// Category is one bucket in an ordered categorization table. Matching is a
// lowercase substring test against each keyword; earlier categories win, so
// table order encodes precedence.
type Category struct {
	Name     string
	Keywords []string
}

// TypeCategories classifies a skill by kind. Certifications are checked first
// so that "AWS Certified Solutions Architect" lands there rather than in
// technical via "aws".
var TypeCategories = []Category{
	{Name: "certification", Keywords: []string{
		"certified", "certification", "certificate", "pmp", "cka", "ckad",
		"ccna", "ccnp", "cissp", "comptia", "scrum master", "itil",
	}},
	{Name: "technical", Keywords: []string{
		"go", "golang", "python", "java", "javascript", "typescript", "ruby",
		"php", "rust", "kotlin", "swift", "scala", "sql", "nosql", "html",
		"css", "react", "angular", "vue", "node", "django", "flask", "spring",
		"rails", "aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"linux", "git", "api", "rest", "graphql", "microservice", "redis",
		"postgres", "mysql", "mongodb", "elasticsearch", "kafka", "spark",
		"tensorflow", "pytorch", "machine learning", "data",
	}},
	{Name: "soft", Keywords: []string{
		"leadership", "communication", "teamwork", "collaboration",
		"problem solving", "mentoring", "presentation", "negotiation",
		"time management", "stakeholder", "agile", "planning",
	}},
}

// DefaultTypeCategory is where a skill no table row claims ends up.
const DefaultTypeCategory = "technical"

// DomainCategories classifies a skill by technology area.
var DomainCategories = []Category{
	{Name: "programming", Keywords: []string{
		"go", "golang", "python", "java", "javascript", "typescript", "ruby",
		"php", "rust", "kotlin", "swift", "scala", "c++", "c#",
	}},
	{Name: "frontend", Keywords: []string{
		"react", "angular", "vue", "svelte", "html", "css", "sass", "redux",
		"next.js", "webpack", "tailwind",
	}},
	{Name: "backend", Keywords: []string{
		"node", "express", "django", "flask", "spring", "rails", "laravel",
		"graphql", "rest", "api", "grpc", "microservice", "kafka", "rabbitmq",
	}},
	{Name: "database", Keywords: []string{
		"sql", "postgres", "postgresql", "mysql", "mongodb", "redis",
		"oracle", "dynamodb", "elasticsearch", "cassandra", "sqlite",
	}},
	{Name: "cloud", Keywords: []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "devops", "serverless", "lambda",
	}},
	{Name: "mobile", Keywords: []string{
		"android", "ios", "flutter", "react native", "xamarin", "swiftui",
	}},
	{Name: "ai-ml", Keywords: []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "nlp",
		"computer vision", "data science", "pandas", "scikit", "llm",
	}},
}

// DefaultDomainCategory is where a skill no domain row claims ends up.
const DefaultDomainCategory = "other"

// Categorize partitions skills across the table: each skill lands in exactly
// one category, the first whose keyword list matches, or in fallback when none
// do. Every input skill appears in exactly one output bucket.
func Categorize(skills []string, table []Category, fallback string) map[string][]string {
	out := make(map[string][]string)
	for _, skill := range skills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" {
			continue
		}
		name := fallback
		for _, cat := range table {
			if matchesCategory(lower, cat) {
				name = cat.Name
				break
			}
		}
		out[name] = append(out[name], skill)
	}
	return out
}

// CategorizeByDomain buckets skills into technology areas with lowercase
// names, the shape the scorer compares category by category.
func CategorizeByDomain(skills []string) map[string][]string {
	return Categorize(skills, DomainCategories, DefaultDomainCategory)
}

// CategorizeByType buckets skills into certification, technical and soft.
func CategorizeByType(skills []string) map[string][]string {
	return Categorize(skills, TypeCategories, DefaultTypeCategory)
}

func matchesCategory(lowerSkill string, cat Category) bool {
	for _, kw := range cat.Keywords {
		if strings.Contains(lowerSkill, kw) {
			return true
		}
	}
	return false
}

// DetectSkills scans free text for known skill keywords and returns the ones
// present, deduplicated, in table order. It is a coarse net for resumes that
// never made it through structured extraction.
func DetectSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var out []string
	for _, cat := range DomainCategories {
		for _, kw := range cat.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			if containsWord(lower, kw) {
				seen[kw] = struct{}{}
				out = append(out, kw)
			}
		}
	}
	return out
}

// containsWord reports whether needle occurs in haystack on a word boundary.
// Plain Contains would let "go" fire on "google" and "java" on "javascript".
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		beforeOK := start == 0 || !isWordByte(haystack[start-1])
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}
