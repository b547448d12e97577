package repository

import "errors"

var (
	// ErrSessionExpired indicates the record store rejected the service's
	// credentials; the caller should prompt re-authentication.
	ErrSessionExpired = errors.New("task store session expired")

	// ErrTaskNotFound indicates no task exists with the given id for the
	// scoped owner.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreUnavailable indicates the record store could not be reached
	// or answered with a server error.
	ErrStoreUnavailable = errors.New("task store unavailable")
)
