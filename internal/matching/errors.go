package matching

import "errors"

var (
	ErrNotFound        = errors.New("match score not found")
	ErrNoCandidateText = errors.New("no candidate text could be extracted")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeExtraction = "EXTRACTION_ERROR"
	ErrorCodeLLMTimeout = "LLM_TIMEOUT"
	ErrorCodeStorage    = "STORAGE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
