package ports

import "errors"

var (
	// ErrNotFound is returned when a player or log row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a lost optimistic-version write; safe to retry.
	ErrConflict = errors.New("conflict")
)
