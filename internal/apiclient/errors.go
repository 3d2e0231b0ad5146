package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers 401 and 403 responses; callers route it to the
	// login flow.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers 404 responses, e.g. a wallet that has not been
	// created yet.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response that is neither an auth failure nor a 404.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
