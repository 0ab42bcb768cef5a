package register

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid register request")

type Request struct{}

type Response struct {
	PlayerID string          `json:"player_id"`
	State    kappa.CoreState `json:"state"`
}

// UseCase creates a new player with a fresh initial state: no coins, empty
// stocks, no kappa, no pending catch.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	Life      kappa.LifecycleService
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	if u.TxManager == nil || u.StateRepo == nil {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Response
	// A colliding random id surfaces as a create conflict; retry a few times.
	for attempt := 0; attempt < 3; attempt++ {
		playerID, err := newPlayerID()
		if err != nil {
			return Response{}, err
		}
		state := u.Life.NewInitialState(playerID, now)

		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			return u.StateRepo.SaveWithVersion(txCtx, state, 0)
		})
		if errors.Is(err, ports.ErrConflict) {
			continue
		}
		if err != nil {
			return Response{}, err
		}
		out = Response{PlayerID: playerID, State: state}
		return out, nil
	}
	return Response{}, ports.ErrConflict
}

func newPlayerID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "player-" + hex.EncodeToString(b), nil
}
