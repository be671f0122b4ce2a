package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyResults indicates an entry was added to a full result set.
	ErrTooManyResults = errors.New("attempt to return too many OneBox results")

	// ErrAuthInvalid indicates the supplied credentials were rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrUnsupportedAuth indicates the provider does not implement an auth variant.
	ErrUnsupportedAuth = errors.New("unsupported authentication type")
)

// UnsupportedAuthError is returned by a provider asked to handle an
// authentication variant it was not configured for.
type UnsupportedAuthError struct {
	Type AuthType
}

func (e *UnsupportedAuthError) Error() string {
	return fmt.Sprintf("User authentication type not supported: %q", e.Type.Label())
}

// Unwrap allows errors.Is(err, ErrUnsupportedAuth).
func (e *UnsupportedAuthError) Unwrap() error {
	return ErrUnsupportedAuth
}
