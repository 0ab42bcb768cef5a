// Package scheduler drives the lifecycle engine on a fixed cadence. The
// engine itself compares absolute instants, so a missed or late run is
// caught up by the next one.
package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/tick"
)

type Loop struct {
	Interval time.Duration
	Players  ports.PlayerStateRepository
	Tick     tick.UseCase
}

// Run blocks until ctx is done. Call in a goroutine.
func (l Loop) Run(ctx context.Context) {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.RunOnce(ctx)
		}
	}
}

// RunOnce ticks every known player. A version conflict means a player action
// raced this run; the next run settles it.
func (l Loop) RunOnce(ctx context.Context) {
	ids, err := l.Players.ListPlayerIDs(ctx)
	if err != nil {
		log.Printf("scheduler: list players: %v", err)
		return
	}
	for _, id := range ids {
		if _, err := l.Tick.Execute(ctx, tick.Request{PlayerID: id}); err != nil {
			if errors.Is(err, ports.ErrConflict) {
				continue
			}
			log.Printf("scheduler: tick %s: %v", id, err)
		}
	}
}
