package extract

import "errors"

var (
	// ErrUnsupportedFormat is returned when a resume buffer does not carry the PDF magic signature.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a parsed document yields no text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)
