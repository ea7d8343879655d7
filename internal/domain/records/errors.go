package records

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup of an ID that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid marks input that failed validation.
	ErrInvalid = errors.New("invalid input")
	// ErrConflict marks a write that collides with existing data.
	ErrConflict = errors.New("conflict")
)

// NotFound builds an ErrNotFound for the given entity and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s with id %s %w", entity, id, ErrNotFound)
}

// Invalid wraps a validation failure so callers can match ErrInvalid.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, err.Error())
}

// Invalidf formats a validation failure message.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
