package domain

import "errors"

var (
	// ErrDuplicate is returned when an employee with the same name is already on the roster.
	ErrDuplicate = errors.New("employee already exists")
	// ErrNotFound is returned when no employee matches the requested name.
	ErrNotFound = errors.New("employee not found")
	// ErrIOFailure wraps storage errors: unreadable, unwritable or missing files and databases.
	ErrIOFailure = errors.New("roster storage unavailable")
	// ErrMalformedData is returned when a stored roster does not have the expected shape.
	ErrMalformedData = errors.New("malformed roster data")
	// ErrInvalidInput is returned when a caller breaks a precondition (empty name, non-positive wage).
	ErrInvalidInput = errors.New("invalid input")
)
