package signals

import (
	"regexp"
	"strings"
	"unicode"
)

var wordRe = regexp.MustCompile(`[A-Za-z0-9+#.\-]+`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {},
	"out": {}, "has": {}, "have": {}, "this": {}, "that": {}, "with": {},
	"they": {}, "from": {}, "will": {}, "would": {}, "there": {}, "their": {},
	"what": {}, "about": {}, "which": {}, "when": {}, "were": {}, "your": {},
	"them": {}, "then": {}, "than": {}, "been": {}, "who": {}, "its": {},
	"also": {}, "into": {}, "more": {}, "other": {}, "some": {}, "such": {},
	"only": {}, "over": {}, "very": {}, "most": {}, "both": {}, "each": {},
	"where": {}, "after": {}, "before": {}, "while": {}, "during": {},
	"using": {}, "used": {}, "work": {}, "worked": {}, "working": {},
}

// TokenizeAndFilter lowercases the text, splits it into word tokens and drops
// stopwords, tokens shorter than three characters, and tokens containing
// non-alphabetic characters. The result is a plain slice; resume-sized text
// fits in memory without streaming.
func TokenizeAndFilter(text string) []string {
	raw := wordRe.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < 3 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if !alphabetic(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Frequencies returns the keyword frequency table for the given text.
func Frequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range TokenizeAndFilter(text) {
		freq[tok]++
	}
	return freq
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
