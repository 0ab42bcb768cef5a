// Package ports defines the persistence and telemetry seams the usecases
// depend on.
package ports

import "errors"

var (
	// ErrNotFound means no state exists for the player id.
	ErrNotFound = errors.New("player state not found")
	// ErrConflict means an optimistic save lost a version race; the caller
	// reloads and retries (or, for the scheduler, waits for the next run).
	ErrConflict = errors.New("state version conflict")
)
