package grouptrip

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound is returned when a room code does not resolve
	ErrRoomNotFound = errors.New("room not found")

	// ErrDestinationNotFound is returned by catalog lookups for unknown ids
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrCodespaceExhausted means the generator could not find a free room
	// code. With a 31^6 keyspace this only happens on misconfiguration.
	ErrCodespaceExhausted = errors.New("room code space exhausted")
)

// ValidationError reports the first request field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
