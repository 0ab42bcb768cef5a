package care

import (
	"context"
	"testing"
	"time"

	memrepo "kappaverse/internal/adapter/repo/memory"
	"kappaverse/internal/domain/kappa"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)
}

func seedRaising(store *memrepo.Store, now time.Time) kappa.CoreState {
	life := kappa.LifecycleService{Rules: kappa.DefaultRules()}
	state := life.NewInitialState("player-1", now)
	born := now.Add(-40 * 24 * time.Hour)
	watered := now.Add(-time.Hour)
	state.Kappa = &kappa.Kappa{
		Stage:            kappa.StageBoy,
		Health:           kappa.HealthNormal,
		Pose:             kappa.PoseSit,
		BornAt:           born,
		LastWaterAt:      &watered,
		Satiety:          50,
		SatietyUpdatedAt: now,
		ImageState:       kappa.ImageNormal,
	}
	store.SeedState(state)
	return state
}

func newUseCase(store *memrepo.Store, metrics *fakeMetrics, now time.Time) UseCase {
	return UseCase{
		TxManager: memrepo.NewTxManager(store),
		StateRepo: memrepo.NewPlayerStateRepo(store),
		EventRepo: memrepo.NewEventRepo(store),
		Metrics:   metrics,
		Life:      kappa.LifecycleService{Rules: kappa.DefaultRules()},
		Now:       func() time.Time { return now },
	}
}

func TestWater_PersistsAndCountsSuccess(t *testing.T) {
	store := memrepo.NewStore()
	seedRaising(store, fixedNow())
	metrics := &fakeMetrics{}

	uc := newUseCase(store, metrics, fixedNow())
	resp, err := uc.Water(context.Background(), WaterRequest{PlayerID: "player-1"})
	if err != nil {
		t.Fatalf("water error: %v", err)
	}
	if got := resp.UpdatedState.Kappa.LastWaterAt; got == nil || !got.Equal(fixedNow()) {
		t.Fatalf("last water not stamped: %v", got)
	}

	saved, err := memrepo.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), "player-1")
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if saved.Player.WaterCountToday != 1 {
		t.Fatalf("water count = %d, want 1", saved.Player.WaterCountToday)
	}
	if metrics.successes["water"] != 1 {
		t.Fatalf("success metric not recorded: %v", metrics.successes)
	}
}

func TestFeed_FailureLeavesStateUnchanged(t *testing.T) {
	store := memrepo.NewStore()
	before := seedRaising(store, fixedNow())
	metrics := &fakeMetrics{}

	// No cucumbers in stock, so feeding must be rejected.
	uc := newUseCase(store, metrics, fixedNow())
	_, err := uc.Feed(context.Background(), FeedRequest{PlayerID: "player-1", Food: kappa.FoodCucumber})
	f, ok := kappa.AsFailure(err)
	if !ok || f.Code != kappa.FailureNotAllowed {
		t.Fatalf("expected NOT_ALLOWED failure, got %v", err)
	}

	saved, err := memrepo.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), "player-1")
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if saved.Version != before.Version {
		t.Fatalf("failed action must not bump version: %d != %d", saved.Version, before.Version)
	}
	if saved.Kappa.Satiety != before.Kappa.Satiety {
		t.Fatalf("failed action must not change satiety")
	}
	events, err := memrepo.NewEventRepo(store).ListByPlayerID(context.Background(), "player-1", 0)
	if err != nil {
		t.Fatalf("list events error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("failed action must append no events, got %v", events)
	}
	if metrics.failures["feed"] != kappa.FailureNotAllowed {
		t.Fatalf("failure metric not recorded: %v", metrics.failures)
	}
}

func TestFeed_RequiresFoodKind(t *testing.T) {
	uc := newUseCase(memrepo.NewStore(), &fakeMetrics{}, fixedNow())
	if _, err := uc.Feed(context.Background(), FeedRequest{PlayerID: "player-1"}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestAdReward_CreditsCoins(t *testing.T) {
	store := memrepo.NewStore()
	seedRaising(store, fixedNow())

	uc := newUseCase(store, &fakeMetrics{}, fixedNow())
	resp, err := uc.AdReward(context.Background(), AdRewardRequest{PlayerID: "player-1"})
	if err != nil {
		t.Fatalf("ad reward error: %v", err)
	}
	if resp.UpdatedState.Player.Coins != 100 {
		t.Fatalf("coins = %d, want 100", resp.UpdatedState.Player.Coins)
	}
}

type fakeMetrics struct {
	successes map[string]int
	failures  map[string]kappa.FailureCode
	conflicts int
}

func (m *fakeMetrics) RecordTick(int) {}

func (m *fakeMetrics) RecordActionSuccess(action string) {
	if m.successes == nil {
		m.successes = map[string]int{}
	}
	m.successes[action]++
}

func (m *fakeMetrics) RecordActionFailure(action string, code kappa.FailureCode) {
	if m.failures == nil {
		m.failures = map[string]kappa.FailureCode{}
	}
	m.failures[action] = code
}

func (m *fakeMetrics) RecordConflict() { m.conflicts++ }
