package submissions

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submissions.service: submission not found")
	ErrInvalidStatus      = errors.New("submissions.service: invalid status")
	ErrInternal           = errors.New("submissions.service: internal error")
)
