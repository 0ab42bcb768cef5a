package fishing

import (
	"context"
	"errors"
	"strings"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/shared/eventlog"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid fishing request")

type Request struct {
	PlayerID string
}

type Response struct {
	UpdatedState kappa.CoreState       `json:"updated_state"`
	Caught       *kappa.CatchCandidate `json:"caught,omitempty"`
	Events       []kappa.DomainEvent   `json:"events"`
}

// UseCase covers the fishing loop: roll a candidate, review it, then release
// it or take it home.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.SimMetrics
	Life      kappa.LifecycleService
	Rng       kappa.Source
	Now       func() time.Time
}

// Roll draws a fresh candidate and stores it as the pending catch.
func (u UseCase) Roll(ctx context.Context, req Request) (Response, error) {
	rng := u.Rng
	if rng == nil {
		rng = kappa.SystemSource()
	}
	return u.mutate(ctx, req.PlayerID, "fishing_roll", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		caught := u.Life.RollCatch(rng)
		next := u.Life.SetCaught(state, &caught, now)
		return kappa.Result{UpdatedState: next}, nil
	})
}

// Release discards the pending candidate.
func (u UseCase) Release(ctx context.Context, req Request) (Response, error) {
	return u.mutate(ctx, req.PlayerID, "fishing_release", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		return kappa.Result{UpdatedState: u.Life.ReleaseCaught(state, now)}, nil
	})
}

// Adopt takes the pending candidate home and starts raising it.
func (u UseCase) Adopt(ctx context.Context, req Request) (Response, error) {
	return u.mutate(ctx, req.PlayerID, "fishing_adopt", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		return u.Life.AdoptCaught(state, now)
	})
}

func (u UseCase) mutate(ctx context.Context, playerID, action string, fn func(kappa.CoreState, time.Time) (kappa.Result, error)) (Response, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPlayerID(txCtx, playerID)
		if err != nil {
			return err
		}

		result, err := fn(state, nowFn())
		if err != nil {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		eventlog.Tag(result.Events, playerID)
		if err := u.EventRepo.Append(txCtx, playerID, result.Events); err != nil {
			return err
		}

		out = Response{
			UpdatedState: result.UpdatedState,
			Caught:       result.UpdatedState.Caught,
			Events:       result.Events,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else if f, ok := kappa.AsFailure(err); ok {
				u.Metrics.RecordActionFailure(action, f.Code)
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordActionSuccess(action)
	}
	return out, nil
}
