package register

import (
	"context"
	"strings"
	"testing"
	"time"

	memrepo "kappaverse/internal/adapter/repo/memory"
	"kappaverse/internal/domain/kappa"
)

func TestExecute_CreatesFreshPlayer(t *testing.T) {
	now := time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)
	store := memrepo.NewStore()

	uc := UseCase{
		TxManager: memrepo.NewTxManager(store),
		StateRepo: memrepo.NewPlayerStateRepo(store),
		Life:      kappa.LifecycleService{Rules: kappa.DefaultRules()},
		Now:       func() time.Time { return now },
	}

	resp, err := uc.Execute(context.Background(), Request{})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.HasPrefix(resp.PlayerID, "player-") {
		t.Fatalf("unexpected player id %q", resp.PlayerID)
	}
	if resp.State.Mode() != kappa.ModeIdle {
		t.Fatalf("fresh player must start idle, got %s", resp.State.Mode())
	}
	if resp.State.Player.Coins != 0 || resp.State.Player.Cucumbers != 0 {
		t.Fatalf("fresh player must start empty: %+v", resp.State.Player)
	}

	saved, err := memrepo.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), resp.PlayerID)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if saved.Version != resp.State.Version {
		t.Fatalf("saved version %d != response version %d", saved.Version, resp.State.Version)
	}
}

func TestExecute_DistinctIDs(t *testing.T) {
	store := memrepo.NewStore()
	uc := UseCase{
		TxManager: memrepo.NewTxManager(store),
		StateRepo: memrepo.NewPlayerStateRepo(store),
		Life:      kappa.LifecycleService{Rules: kappa.DefaultRules()},
	}

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		resp, err := uc.Execute(context.Background(), Request{})
		if err != nil {
			t.Fatalf("execute error: %v", err)
		}
		if seen[resp.PlayerID] {
			t.Fatalf("duplicate player id %q", resp.PlayerID)
		}
		seen[resp.PlayerID] = true
	}
}
