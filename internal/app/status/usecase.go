package status

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	StateRepo ports.PlayerStateRepository
	Rules     kappa.Rules
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.StateRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	return Response{
		State: state,
		Mode:  state.Mode(),
		Pet:   derivePetView(state, u.Rules, nowFn()),
	}, nil
}

func derivePetView(state kappa.CoreState, rules kappa.Rules, now time.Time) *PetView {
	k := state.Kappa
	if k == nil {
		return nil
	}

	waterPct := 0
	if k.LastWaterAt != nil {
		elapsed := now.Sub(*k.LastWaterAt)
		pct := int(math.Round((1 - float64(elapsed)/float64(rules.Death.NoWaterToGuttari)) * 100))
		waterPct = clampInt(pct, 0, 100)
	}

	satietyPct := clampInt(int(math.Round(k.Satiety)), 0, 100)
	age := 0
	if now.After(k.BornAt) {
		age = int(now.Sub(k.BornAt) / (24 * time.Hour))
	}

	danger := float64(waterPct) <= rules.Food.HungryRedThreshold ||
		k.Satiety <= rules.Food.HungryRedThreshold ||
		k.Health != kappa.HealthNormal

	return &PetView{
		WaterPercent:   waterPct,
		SatietyPercent: satietyPct,
		AgeDays:        age,
		AgeYears:       age / 365,
		Hungry:         k.Satiety < rules.Food.FeedThreshold,
		Danger:         danger,
		ImageState:     string(k.ImageState),
		Satiety:        k.Satiety,
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
