package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"
)

func sampleState(playerID string, version int64) kappa.CoreState {
	return kappa.CoreState{
		PlayerID:  playerID,
		Version:   version,
		UpdatedAt: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveWithVersion_CreateAndUpdate(t *testing.T) {
	repo := NewPlayerStateRepo(NewStore())
	ctx := context.Background()

	if err := repo.SaveWithVersion(ctx, sampleState("p1", 1), 0); err != nil {
		t.Fatalf("create error: %v", err)
	}

	// Update must present the stored version.
	if err := repo.SaveWithVersion(ctx, sampleState("p1", 2), 1); err != nil {
		t.Fatalf("update error: %v", err)
	}
	got, err := repo.GetByPlayerID(ctx, "p1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Version != 2 {
		t.Fatalf("version = %d, want 2", got.Version)
	}
}

func TestSaveWithVersion_StaleVersionConflicts(t *testing.T) {
	repo := NewPlayerStateRepo(NewStore())
	ctx := context.Background()

	if err := repo.SaveWithVersion(ctx, sampleState("p1", 1), 0); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, sampleState("p1", 2), 1); err != nil {
		t.Fatalf("update error: %v", err)
	}

	// A second writer still holding version 1 must lose.
	err := repo.SaveWithVersion(ctx, sampleState("p1", 2), 1)
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSaveWithVersion_CreateTwiceConflicts(t *testing.T) {
	repo := NewPlayerStateRepo(NewStore())
	ctx := context.Background()

	if err := repo.SaveWithVersion(ctx, sampleState("p1", 1), 0); err != nil {
		t.Fatalf("create error: %v", err)
	}
	err := repo.SaveWithVersion(ctx, sampleState("p1", 1), 0)
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate create, got %v", err)
	}
}

func TestSaveWithVersion_UpdateMissingConflicts(t *testing.T) {
	repo := NewPlayerStateRepo(NewStore())
	err := repo.SaveWithVersion(context.Background(), sampleState("ghost", 2), 1)
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetByPlayerID_Missing(t *testing.T) {
	repo := NewPlayerStateRepo(NewStore())
	_, err := repo.GetByPlayerID(context.Background(), "ghost")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPlayerIDs_Sorted(t *testing.T) {
	store := NewStore()
	store.SeedState(sampleState("p2", 1))
	store.SeedState(sampleState("p1", 1))
	store.SeedState(sampleState("p3", 1))

	ids, err := NewPlayerStateRepo(store).ListPlayerIDs(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(ids) != 3 || ids[0] != "p1" || ids[1] != "p2" || ids[2] != "p3" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestEventRepo_NewestFirstWithLimit(t *testing.T) {
	store := NewStore()
	repo := NewEventRepo(store)
	ctx := context.Background()

	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	events := []kappa.DomainEvent{
		{Type: "A", OccurredAt: base},
		{Type: "B", OccurredAt: base.Add(time.Minute)},
		{Type: "C", OccurredAt: base.Add(2 * time.Minute)},
	}
	if err := repo.Append(ctx, "p1", events); err != nil {
		t.Fatalf("append error: %v", err)
	}

	got, err := repo.ListByPlayerID(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(got) != 2 || got[0].Type != "C" || got[1].Type != "B" {
		t.Fatalf("unexpected events %v", got)
	}
}
