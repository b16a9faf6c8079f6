package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures: the server could not be
	// reached at all.
	ErrUnavailable = errors.New("server unavailable")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrValidation         = errors.New("invalid input")
	ErrUnauthorized       = errors.New("not authorized")
	ErrNotFound           = errors.New("not found")
)

// APIError is a non-2xx response from the server with its message field
// preserved.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}
