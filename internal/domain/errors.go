package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a request that cannot be served as given (negative n, bad min_score).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUndefinedSimilarity signals a cosine similarity against an all-zero vector.
	ErrUndefinedSimilarity = errors.New("undefined similarity")
)

// InvalidInputError wraps ErrInvalidInput with the offending field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput.Error(), e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInput creates an invalid input error for a named field.
func NewInvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
