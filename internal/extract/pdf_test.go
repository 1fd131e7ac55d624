package extract

import (
	"errors"
	"testing"
)

func TestFromPDFRejectsNonPDF(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"plain text": []byte("hello world"),
		"docx zip":   []byte("PK\x03\x04 something"),
		"short":      []byte("%PD"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromPDF(data)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestFromPDFMagicAloneIsNotEnough(t *testing.T) {
	// Carries the signature but is not a parseable document; must fail after
	// the magic check, not with ErrUnsupportedFormat.
	_, err := FromPDF([]byte("%PDF-1.7 garbage"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("magic check should have passed, got %v", err)
	}
}
