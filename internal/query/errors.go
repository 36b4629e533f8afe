package query

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller mistakes: unknown facet, bad limit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackend marks failures reaching or querying the external store.
	ErrBackend = errors.New("backend query failed")

	// ErrTableUnavailable marks an in-memory query over a table missing from
	// the snapshot.
	ErrTableUnavailable = errors.New("table unavailable in snapshot")
)

// BackendError carries the store diagnostic of a failed operation.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrBackend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() []error { return []error{ErrBackend, e.Err} }

// Backend wraps err as a BackendError for op; nil stays nil.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// TableUnavailable reports that table is absent from the snapshot.
func TableUnavailable(table string) error {
	return fmt.Errorf("%w: %s", ErrTableUnavailable, table)
}

// InvalidLimit reports a negative or unparsable limit.
func InvalidLimit(raw string) error {
	return fmt.Errorf("%w: limit must be a non-negative integer, got %q", ErrInvalidInput, raw)
}
