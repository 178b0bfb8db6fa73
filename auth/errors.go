package auth

import (
	"errors"
	"fmt"
)

// PageError represents a domain-level lookup failure. Certification itself
// cannot fail at runtime; this error belongs to the downstream domain check
// (which page exists for which case) and is returned, never panicked.
type PageError struct {
	// Code identifies the error category.
	Code PageErrorCode

	// Message is a short human-readable description.
	Message string
}

// PageErrorCode categorizes page lookup errors.
type PageErrorCode string

const (
	// ErrCodeNotFound indicates no page exists for the session's case.
	ErrCodeNotFound PageErrorCode = "NOT_FOUND"
)

// Error implements the error interface.
func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is a missing-page error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var pe *PageError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeNotFound
	}
	return false
}

// NewNotFoundError creates a PageError for a missing page.
func NewNotFoundError() *PageError {
	return &PageError{
		Code:    ErrCodeNotFound,
		Message: "404",
	}
}
