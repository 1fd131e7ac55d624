package signals

import (
	"reflect"
	"testing"
)

func TestTokenizeAndFilter(t *testing.T) {
	got := TokenizeAndFilter("The quick brown fox has 10 years of C++ and Go experience")
	want := []string{"quick", "brown", "fox", "years", "experience"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeAndFilterDropsShortAndNonAlphabetic(t *testing.T) {
	for _, tok := range TokenizeAndFilter("a an of k8s v2 abc123 ok") {
		if len(tok) < 3 {
			t.Errorf("short token survived: %q", tok)
		}
		for _, r := range tok {
			if r < 'a' || r > 'z' {
				t.Errorf("non-alphabetic token survived: %q", tok)
			}
		}
	}
}

func TestFrequencies(t *testing.T) {
	freq := Frequencies("postgres postgres redis")
	if freq["postgres"] != 2 || freq["redis"] != 1 {
		t.Errorf("frequencies = %v", freq)
	}
}
