package care

import (
	"context"
	"errors"
	"strings"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/shared/eventlog"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid care request")

type WaterRequest struct {
	PlayerID string
}

type FeedRequest struct {
	PlayerID string
	Food     kappa.FoodKind
}

type AdRewardRequest struct {
	PlayerID string
}

type Response struct {
	UpdatedState kappa.CoreState     `json:"updated_state"`
	Events       []kappa.DomainEvent `json:"events"`
}

// UseCase covers the day-to-day creature care actions: watering, feeding, and
// the stubbed ad-reward coin grant.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.SimMetrics
	Life      kappa.LifecycleService
	Now       func() time.Time
}

func (u UseCase) Water(ctx context.Context, req WaterRequest) (Response, error) {
	return u.apply(ctx, req.PlayerID, "water", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		return u.Life.ApplyWater(state, now)
	})
}

func (u UseCase) Feed(ctx context.Context, req FeedRequest) (Response, error) {
	if req.Food == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.apply(ctx, req.PlayerID, "feed", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		return u.Life.ApplyFeed(state, req.Food, now)
	})
}

func (u UseCase) AdReward(ctx context.Context, req AdRewardRequest) (Response, error) {
	return u.apply(ctx, req.PlayerID, "ad_reward", func(state kappa.CoreState, now time.Time) (kappa.Result, error) {
		return u.Life.GrantAdReward(state, now)
	})
}

func (u UseCase) apply(ctx context.Context, playerID, action string, fn func(kappa.CoreState, time.Time) (kappa.Result, error)) (Response, error) {
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

		out = Response{UpdatedState: result.UpdatedState, Events: result.Events}
		return nil
	})
	if err != nil {
		u.record(action, err)
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordActionSuccess(action)
	}
	return out, nil
}

func (u UseCase) record(action string, err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	if f, ok := kappa.AsFailure(err); ok {
		u.Metrics.RecordActionFailure(action, f.Code)
	}
}
