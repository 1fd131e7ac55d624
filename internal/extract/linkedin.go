package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PartialProfile is a best-effort structured view of a LinkedIn profile page.
// Any field may be empty: the source markup is unstable, so misses are
// expected and are not errors. Completeness reports how many of the core
// fields were found, in [0,1], so callers can judge how much to trust it.
type PartialProfile struct {
	Name         string
	Headline     string
	Location     string
	Summary      string
	Experience   []ExperienceEntry
	Education    []EducationEntry
	Skills       []string
	Connections  string
	Completeness float64
}

// ExperienceEntry is one position on a profile.
type ExperienceEntry struct {
	Title    string
	Company  string
	Duration string
}

// EducationEntry is one school on a profile.
type EducationEntry struct {
	School string
	Degree string
}

// Selector candidates are tried in order; the first non-empty trimmed match
// wins. The lists mix current and older public-profile markup since pages in
// the wild carry both.
var (
	nameSelectors = []string{
		".top-card-layout__title",
		"h1.text-heading-xlarge",
		"h1",
	}
	headlineSelectors = []string{
		".top-card-layout__headline",
		".text-body-medium.break-words",
		"h2.top-card-layout__headline",
	}
	locationSelectors = []string{
		".top-card-layout__first-subline .top-card__subline-item",
		".top-card__subline-item",
		"span.text-body-small.inline",
	}
	summarySelectors = []string{
		"section.summary .core-section-container__content",
		".core-section-container__content .break-words",
		"section[data-section=summary] p",
	}
	connectionSelectors = []string{
		".top-card__connections",
		"span.top-card__subline-item--bullet",
	}
	experienceItemSelectors = []string{
		"li.experience-item",
		"section[data-section=experience] li",
		".experience__list > li",
	}
	educationItemSelectors = []string{
		"li.education__list-item",
		"section[data-section=educationsDetails] li",
		"section#education li",
	}
	skillSelectors = []string{
		".skills__list li",
		"span.skill-category-entity__name",
		"section[data-section=skills] li",
	}
)

var titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// FromLinkedInHTML extracts a partial profile from raw profile-page HTML.
// It never fails: a page the selectors cannot read yields an empty profile
// with Completeness 0.
func FromLinkedInHTML(html string) PartialProfile {
	var p PartialProfile

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return p
	}

	p.Name = firstMatch(doc, nameSelectors)
	if p.Name == "" {
		p.Name = nameFromTitleTag(html)
	}
	p.Headline = firstMatch(doc, headlineSelectors)
	p.Location = firstMatch(doc, locationSelectors)
	p.Summary = firstMatch(doc, summarySelectors)
	p.Connections = firstMatch(doc, connectionSelectors)
	p.Experience = extractExperience(doc)
	p.Education = extractEducation(doc)
	p.Skills = extractSkills(doc)
	p.Completeness = completeness(p)
	return p
}

func firstMatch(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return collapseSpace(text)
		}
	}
	return ""
}

func nameFromTitleTag(html string) string {
	m := titleTagRe.FindStringSubmatch(html)
	if len(m) < 2 {
		return ""
	}
	title := collapseSpace(strings.TrimSpace(m[1]))
	// Page titles look like "Jane Doe | LinkedIn" or "Jane Doe - Staff Engineer | LinkedIn".
	if idx := strings.Index(title, "|"); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}
	if idx := strings.Index(title, " - "); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}
	return title
}

func extractExperience(doc *goquery.Document) []ExperienceEntry {
	var out []ExperienceEntry
	for _, sel := range experienceItemSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			entry := ExperienceEntry{
				Title:    collapseSpace(strings.TrimSpace(s.Find(".experience-item__title, h3").First().Text())),
				Company:  collapseSpace(strings.TrimSpace(s.Find(".experience-item__subtitle, h4").First().Text())),
				Duration: collapseSpace(strings.TrimSpace(s.Find(".experience-item__duration, .date-range, span.date-range").First().Text())),
			}
			if entry.Title != "" || entry.Company != "" || entry.Duration != "" {
				out = append(out, entry)
			}
		})
		if len(out) > 0 {
			break
		}
	}
	return out
}

func extractEducation(doc *goquery.Document) []EducationEntry {
	var out []EducationEntry
	for _, sel := range educationItemSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			entry := EducationEntry{
				School: collapseSpace(strings.TrimSpace(s.Find("h3, .education__item-school").First().Text())),
				Degree: collapseSpace(strings.TrimSpace(s.Find("h4, .education__item-degree, .education__item-degree-info").First().Text())),
			}
			if entry.School != "" || entry.Degree != "" {
				out = append(out, entry)
			}
		})
		if len(out) > 0 {
			break
		}
	}
	return out
}

func extractSkills(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, sel := range skillSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			skill := collapseSpace(strings.TrimSpace(s.Text()))
			if skill == "" {
				return
			}
			key := strings.ToLower(skill)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			out = append(out, skill)
		})
		if len(out) > 0 {
			break
		}
	}
	return out
}

func completeness(p PartialProfile) float64 {
	total := 6.0
	found := 0.0
	if p.Name != "" {
		found++
	}
	if p.Headline != "" {
		found++
	}
	if p.Summary != "" {
		found++
	}
	if len(p.Experience) > 0 {
		found++
	}
	if len(p.Education) > 0 {
		found++
	}
	if len(p.Skills) > 0 {
		found++
	}
	return found / total
}

// Text flattens the profile into plain text for downstream signal extraction
// and prompting.
func (p PartialProfile) Text() string {
	var b strings.Builder
	writeLine := func(label, value string) {
		if value != "" {
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
	}
	writeLine("Name", p.Name)
	writeLine("Headline", p.Headline)
	writeLine("Location", p.Location)
	writeLine("Summary", p.Summary)
	for _, e := range p.Experience {
		b.WriteString("Experience: ")
		b.WriteString(strings.TrimSpace(strings.Join(nonEmpty(e.Title, e.Company, e.Duration), " | ")))
		b.WriteString("\n")
	}
	for _, e := range p.Education {
		b.WriteString("Education: ")
		b.WriteString(strings.TrimSpace(strings.Join(nonEmpty(e.School, e.Degree), " | ")))
		b.WriteString("\n")
	}
	if len(p.Skills) > 0 {
		writeLine("Skills", strings.Join(p.Skills, ", "))
	}
	return b.String()
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

var spaceRe = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return spaceRe.ReplaceAllString(s, " ")
}
