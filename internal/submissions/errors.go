package submissions

import "errors"

var (
	ErrNotFound             = errors.New("submission not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoCandidateSource    = errors.New("a resume file or linkedin url is required")
	ErrRequirementNotOpen   = errors.New("requirement is not open for submissions")
	ErrUnknownStatus        = errors.New("unknown submission status")
	ErrRequirementNotExists = errors.New("requirement does not exist")
)
