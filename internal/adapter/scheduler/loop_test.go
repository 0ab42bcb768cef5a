package scheduler

import (
	"context"
	"testing"
	"time"

	memrepo "kappaverse/internal/adapter/repo/memory"
	"kappaverse/internal/app/tick"
	"kappaverse/internal/domain/kappa"
)

type missSource struct{}

func (missSource) NextInt(maxExclusive int) int { return maxExclusive - 1 }

func TestRunOnce_TicksEveryPlayer(t *testing.T) {
	now := time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)
	store := memrepo.NewStore()
	life := kappa.LifecycleService{Rules: kappa.DefaultRules()}
	store.SeedState(life.NewInitialState("p1", now))
	store.SeedState(life.NewInitialState("p2", now))

	stateRepo := memrepo.NewPlayerStateRepo(store)
	loop := Loop{
		Players: stateRepo,
		Tick: tick.UseCase{
			TxManager: memrepo.NewTxManager(store),
			StateRepo: stateRepo,
			EventRepo: memrepo.NewEventRepo(store),
			Life:      life,
			Rng:       missSource{},
			Now:       func() time.Time { return now },
		},
	}

	loop.RunOnce(context.Background())

	for _, id := range []string{"p1", "p2"} {
		state, err := stateRepo.GetByPlayerID(context.Background(), id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if state.Version != 2 {
			t.Fatalf("%s version = %d, want 2 after one run", id, state.Version)
		}
		// The first run of the day grants the login bonus.
		if state.Player.Cucumbers != 3 {
			t.Fatalf("%s cucumbers = %d, want 3", id, state.Player.Cucumbers)
		}
	}
}

func TestRunOnce_EmptyStore(t *testing.T) {
	store := memrepo.NewStore()
	loop := Loop{
		Players: memrepo.NewPlayerStateRepo(store),
		Tick: tick.UseCase{
			TxManager: memrepo.NewTxManager(store),
			StateRepo: memrepo.NewPlayerStateRepo(store),
			EventRepo: memrepo.NewEventRepo(store),
			Life:      kappa.LifecycleService{Rules: kappa.DefaultRules()},
		},
	}
	// Must not panic or log spuriously with nobody registered.
	loop.RunOnce(context.Background())
}
