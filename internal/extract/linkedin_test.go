package extract

import (
	"strings"
	"testing"
)

const sampleProfileHTML = `<!DOCTYPE html>
<html>
<head><title>Jane Doe - Senior Backend Engineer | LinkedIn</title></head>
<body>
<h1 class="top-card-layout__title">Jane Doe</h1>
<h2 class="top-card-layout__headline">Senior Backend Engineer at Acme</h2>
<span class="top-card__subline-item">Berlin, Germany</span>
<section class="summary"><div class="core-section-container__content">Distributed systems engineer.</div></section>
<ul class="experience__list">
  <li class="experience-item">
    <h3 class="experience-item__title">Senior Backend Engineer</h3>
    <h4 class="experience-item__subtitle">Acme</h4>
    <span class="experience-item__duration">3 yrs 4 mos</span>
  </li>
  <li class="experience-item">
    <h3 class="experience-item__title">Backend Engineer</h3>
    <h4 class="experience-item__subtitle">Widgets Inc</h4>
    <span class="experience-item__duration">2 yrs</span>
  </li>
</ul>
<ul>
  <li class="education__list-item"><h3>TU Berlin</h3><h4>BSc Computer Science</h4></li>
</ul>
<ul class="skills__list">
  <li>Go</li><li>PostgreSQL</li><li>Kubernetes</li>
</ul>
</body>
</html>`

func TestFromLinkedInHTMLExtractsFields(t *testing.T) {
	p := FromLinkedInHTML(sampleProfileHTML)

	if p.Name != "Jane Doe" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Headline != "Senior Backend Engineer at Acme" {
		t.Errorf("headline = %q", p.Headline)
	}
	if p.Location != "Berlin, Germany" {
		t.Errorf("location = %q", p.Location)
	}
	if len(p.Experience) != 2 {
		t.Fatalf("experience entries = %d", len(p.Experience))
	}
	if p.Experience[0].Duration != "3 yrs 4 mos" {
		t.Errorf("duration = %q", p.Experience[0].Duration)
	}
	if len(p.Education) != 1 || p.Education[0].School != "TU Berlin" {
		t.Errorf("education = %+v", p.Education)
	}
	if len(p.Skills) != 3 {
		t.Errorf("skills = %v", p.Skills)
	}
	if p.Completeness != 1.0 {
		t.Errorf("completeness = %v", p.Completeness)
	}
}

func TestFromLinkedInHTMLNameFallsBackToTitleTag(t *testing.T) {
	html := `<html><head><title>John Smith | LinkedIn</title></head><body><p>nothing useful</p></body></html>`
	p := FromLinkedInHTML(html)
	if p.Name != "John Smith" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestFromLinkedInHTMLNeverFails(t *testing.T) {
	for _, html := range []string{"", "<not even html", "<div></div>"} {
		p := FromLinkedInHTML(html)
		if p.Completeness != 0 {
			t.Errorf("completeness for %q = %v", html, p.Completeness)
		}
		if p.Name != "" || len(p.Skills) != 0 {
			t.Errorf("expected empty profile for %q, got %+v", html, p)
		}
	}
}

func TestPartialProfileText(t *testing.T) {
	p := FromLinkedInHTML(sampleProfileHTML)
	text := p.Text()
	for _, want := range []string{"Jane Doe", "Acme", "3 yrs 4 mos", "TU Berlin", "Go, PostgreSQL, Kubernetes"} {
		if !strings.Contains(text, want) {
			t.Errorf("flattened text missing %q", want)
		}
	}
}
