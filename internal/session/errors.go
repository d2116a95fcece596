package session

import "errors"

// Error kinds surfaced to the caller for inline display. None are fatal to
// the running service.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrMissingField       = errors.New("missing required field")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
