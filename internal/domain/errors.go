package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError carries a client-facing message for malformed input.
// Handlers surface it as a 400 with the message intact.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
