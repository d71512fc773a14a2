// Package apperr defines the error kinds returned by the ledger.
//
// Every error produced by the store and the engine wraps exactly one of the
// sentinels below, so callers branch with errors.Is and render the message.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced debt, split, member or request that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorizedTransition marks an actor that may not perform the operation.
	ErrUnauthorizedTransition = errors.New("unauthorized transition")

	// ErrConflict marks a lost race: the entity changed since it was read.
	// Callers should retry the whole operation.
	ErrConflict = errors.New("conflict")

	// ErrInvariantViolation marks a failed internal consistency check. It
	// indicates a bug and always aborts the enclosing transaction.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Validation returns an ErrValidation with a formatted message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns an ErrNotFound naming the missing entity.
func NotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// Unauthorized returns an ErrUnauthorizedTransition with a formatted message.
func Unauthorized(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnauthorizedTransition, fmt.Sprintf(format, args...))
}

// Conflict returns an ErrConflict with a formatted message.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Invariant returns an ErrInvariantViolation with a formatted message.
func Invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// Kind returns the sentinel wrapped by err, or nil if err carries none.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrUnauthorizedTransition, ErrConflict, ErrInvariantViolation} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
