package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF")

// PDFResult holds the text extracted from a PDF resume.
type PDFResult struct {
	Text      string
	PageCount int
}

// FromPDF extracts plain text from an in-memory PDF.
// The buffer must start with the %PDF signature; anything else is rejected
// before a parse is attempted. Size limits are enforced at the upload boundary,
// not here.
func FromPDF(data []byte) (PDFResult, error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return PDFResult{}, ErrUnsupportedFormat
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return PDFResult{}, fmt.Errorf("pdf parse: %w", err)
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return PDFResult{}, fmt.Errorf("pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return PDFResult{}, fmt.Errorf("pdf read: %w", err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return PDFResult{}, ErrEmptyDocument
	}

	return PDFResult{Text: text, PageCount: pdfReader.NumPage()}, nil
}
