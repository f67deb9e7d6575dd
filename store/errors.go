package store

import "errors"

var (
	// ErrNotFound is returned when no board state has the requested id.
	ErrNotFound = errors.New("store: board state not found")
)
