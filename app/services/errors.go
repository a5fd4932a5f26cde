package services

import "errors"

var (
	// ErrValidation rejects an operation before any write happens: empty
	// order, missing account selection, non-positive payment amount,
	// missing required names.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports an id absent from the table the operation
	// expected it in.
	ErrNotFound = errors.New("not found")
)
