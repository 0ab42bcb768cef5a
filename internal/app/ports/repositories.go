package ports

import (
	"context"

	"kappaverse/internal/domain/kappa"
)

type PlayerStateRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (kappa.CoreState, error)
	// SaveWithVersion persists the aggregate iff the stored version still
	// matches expectedVersion; expectedVersion 0 creates. ErrConflict on a
	// lost race.
	SaveWithVersion(ctx context.Context, state kappa.CoreState, expectedVersion int64) error
	ListPlayerIDs(ctx context.Context) ([]string, error)
}

type EventRepository interface {
	Append(ctx context.Context, playerID string, events []kappa.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]kappa.DomainEvent, error)
}
