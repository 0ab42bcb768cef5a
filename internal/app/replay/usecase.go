package replay

import (
	"context"
	"errors"
	"strings"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase returns a player's persisted event history, newest first, optionally
// bounded to a unix-seconds window.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByPlayerID(ctx, playerID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)}, nil
}

func filterByTimeWindow(events []kappa.DomainEvent, from, to int64) []kappa.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]kappa.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}
