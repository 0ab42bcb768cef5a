package tick

import (
	"context"
	"errors"
	"strings"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/shared/eventlog"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type Request struct {
	PlayerID string
}

type Response struct {
	UpdatedState kappa.CoreState     `json:"updated_state"`
	Events       []kappa.DomainEvent `json:"events"`
}

// UseCase runs one lifecycle evaluation for a player: load, advance, save
// with optimistic versioning, append the event log.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.SimMetrics
	Life      kappa.LifecycleService
	Rng       kappa.Source
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rng := u.Rng
	if rng == nil {
		rng = kappa.SystemSource()
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPlayerID(txCtx, playerID)
		if err != nil {
			return err
		}

		result := u.Life.Tick(state, nowFn(), rng)

		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		eventlog.Tag(result.Events, playerID)
		if err := u.EventRepo.Append(txCtx, playerID, result.Events); err != nil {
			return err
		}

		out = Response{UpdatedState: result.UpdatedState, Events: result.Events}
		return nil
	})
	if err != nil {
		if u.Metrics != nil && errors.Is(err, ports.ErrConflict) {
			u.Metrics.RecordConflict()
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick(len(out.Events))
	}
	return out, nil
}
