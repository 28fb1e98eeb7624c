package services

import (
	"errors"
)

var (
	// ErrDuplicateVote means the user already voted on this verification.
	// Expected and benign; callers report it, they don't log it as a fault.
	ErrDuplicateVote = errors.New("already voted on this verification")

	// ErrNotFound covers lookups on handles or reports that don't exist yet,
	// e.g. voting on an identity with no verification history.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is a concurrent-write race the retry path failed to absorb.
	ErrConflict = errors.New("conflicting concurrent write")
)

// ValidationError carries the specific input rule that was violated. Always
// recoverable by the caller, never retried automatically.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
