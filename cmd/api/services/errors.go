package services

import "errors"

// Error classes the handlers translate into HTTP statuses. Services wrap
// these with fmt.Errorf("%w: ...") to attach detail.
var (
	// ErrValidation: a required field is missing or malformed (400).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID: identifier is not a valid ObjectID hex (400).
	ErrInvalidID = errors.New("invalid id format")
	// ErrNotFound: well-formed identifier, no matching document (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict: uniqueness violation on slug/value/name (400, before
	// any write is attempted).
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials: generic login failure; deliberately does not
	// say which check failed (401).
	ErrInvalidCredentials = errors.New("invalid username or password")
)
