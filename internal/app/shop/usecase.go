package shop

import (
	"context"
	"errors"
	"strings"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/shared/eventlog"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid shop request")

type BuyRequest struct {
	PlayerID string
	Item     kappa.ShopItem
}

type Response struct {
	UpdatedState kappa.CoreState     `json:"updated_state"`
	Events       []kappa.DomainEvent `json:"events"`
}

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.SimMetrics
	Life      kappa.LifecycleService
	Now       func() time.Time
}

func (u UseCase) Buy(ctx context.Context, req BuyRequest) (Response, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" || req.Item == "" {
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

		result, err := u.Life.BuyShopItem(state, req.Item, nowFn())
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
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else if f, ok := kappa.AsFailure(err); ok {
				u.Metrics.RecordActionFailure("shop_buy", f.Code)
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordActionSuccess("shop_buy")
	}
	return out, nil
}
