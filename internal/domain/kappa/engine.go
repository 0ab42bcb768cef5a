package kappa

import "time"

// LifecycleService advances a player's aggregate through elapsed wall time.
// It is pure: same state, same instant, same random draws, same output.
type LifecycleService struct {
	Rules Rules
}

// NewInitialState is the fresh aggregate a host falls back to when no saved
// snapshot exists: empty inventory, no kappa, no pending catch.
func (s LifecycleService) NewInitialState(playerID string, now time.Time) CoreState {
	return CoreState{
		PlayerID: playerID,
		Player: Player{
			LastDailyReset: ToGameDay(now, s.Rules.TZOffsetMinutes),
		},
		Version:   1,
		UpdatedAt: now,
	}
}

// Tick runs one evaluation of the lifecycle state machine. Checks are ordered
// by priority and the first lifecycle transition that fires short-circuits the
// rest: a single tick never produces more than one of promotion, death+rebirth,
// or guttari onset.
func (s LifecycleService) Tick(state CoreState, now time.Time, rng Source) Result {
	next := state.clone()
	events := make([]DomainEvent, 0, 4)

	next, events = s.applyDailyCycle(next, now, events)
	next = s.applySatietyDecay(next, now)

	if next.Kappa == nil {
		return s.finish(next, now, events)
	}

	next, events = s.applyFeverLottery(next, now, rng, events)

	k := next.Kappa
	age := ageDays(now, k.BornAt)

	// Promotions reuse the same age snapshot, so a long-dormant session can
	// chain child->boy->adult in one tick. Only boy->adult molts audibly.
	if k.Stage == StageChild && age >= s.Rules.Life.ChildToBoyDays {
		k.Stage = StageBoy
		k.Pose = PoseSit
	}
	if k.Stage == StageBoy && age >= s.Rules.Life.BoyToAdultAgeDays {
		k.Stage = StageAdult
		k.Pose = PoseStand
		events = append(events, event(EventMolted, now))
	}

	// Lifespan death outranks every other death check.
	if age >= s.Rules.Life.LifespanDays && k.Health != HealthDead {
		return s.finishDeath(next, now, ReasonLifespan, events)
	}

	if k.Health == HealthDead {
		return s.finish(next, now, events)
	}

	switch k.Stage {
	case StageChild:
		if k.LastWaterAt == nil || now.Sub(*k.LastWaterAt) >= s.Rules.Death.ChildNoWaterDeath {
			return s.finishDeath(next, now, ReasonChildNoWater, events)
		}
		if k.Fever.IsFever && k.Fever.FeverStartedAt != nil &&
			now.Sub(*k.Fever.FeverStartedAt) >= s.Rules.Death.FeverDeadline {
			return s.finishDeath(next, now, ReasonChildFever, events)
		}
	case StageBoy, StageAdult:
		waterOverdue := k.LastWaterAt == nil || now.Sub(*k.LastWaterAt) >= s.Rules.Death.NoWaterToGuttari
		if k.Health == HealthNormal && waterOverdue {
			k.Health = HealthGuttari
			k.GuttariStartedAt = timePtr(now)
			events = append(events, event(EventGuttariStarted, now))
			return s.finish(next, now, events)
		}
		if k.Health == HealthGuttari && k.GuttariStartedAt != nil &&
			now.Sub(*k.GuttariStartedAt) >= s.Rules.Death.GuttariToDeath {
			return s.finishDeath(next, now, ReasonNoWaterGuttari, events)
		}
	}

	return s.finish(next, now, events)
}

// applyDailyCycle zeroes the per-day counters on a day boundary and grants the
// daily cucumber bonus. The two checks are independent: both, either, or
// neither may fire.
func (s LifecycleService) applyDailyCycle(next CoreState, now time.Time, events []DomainEvent) (CoreState, []DomainEvent) {
	today := ToGameDay(now, s.Rules.TZOffsetMinutes)

	if next.Player.LastDailyReset != today {
		next.Player.WaterCountToday = 0
		next.Player.FeedCountToday = 0
		next.Player.AdRewardCountToday = 0
		next.Player.LastDailyReset = today
		events = append(events, event(EventDailyReset, now))
	}

	if next.Player.LastLoginBonus != today {
		next.Player.Cucumbers += s.Rules.Food.LoginBonusCucumbers
		next.Player.LastLoginBonus = today
		events = append(events, DomainEvent{
			Type:       EventLoginBonusCucumber,
			OccurredAt: now,
			Payload:    map[string]any{"amount": s.Rules.Food.LoginBonusCucumbers},
		})
	}

	return next, events
}

// applySatietyDecay drops satiety linearly with elapsed wall time, clamped to
// [0,100]. A zero elapsed interval is a no-op.
func (s LifecycleService) applySatietyDecay(next CoreState, now time.Time) CoreState {
	k := next.Kappa
	if k == nil {
		return next
	}
	dt := now.Sub(k.SatietyUpdatedAt)
	if dt <= 0 {
		return next
	}
	perHour := s.Rules.Food.SatietyFull / s.Rules.Food.SatietyDecayHours
	k.Satiety = clamp(k.Satiety-dt.Hours()*perHour, 0, s.Rules.Food.SatietyFull)
	k.SatietyUpdatedAt = now
	return next
}

// applyFeverLottery runs the once-per-day child fever draw. A miss still
// stamps the checked date so the draw does not repeat that day.
func (s LifecycleService) applyFeverLottery(next CoreState, now time.Time, rng Source, events []DomainEvent) (CoreState, []DomainEvent) {
	k := next.Kappa
	if k.Stage != StageChild || k.Health == HealthDead || k.Fever.IsFever {
		return next, events
	}
	today := ToGameDay(now, s.Rules.TZOffsetMinutes)
	if k.Fever.FeverCheckedDate == today {
		return next, events
	}

	hit := rng.NextInt(s.Rules.Fever.LotteryDenominator) == 0
	k.Fever.FeverCheckedDate = today
	k.Fever.IsFever = hit
	if hit {
		k.Fever.FeverStartedAt = timePtr(now)
		events = append(events, event(EventFeverStarted, now))
	} else {
		k.Fever.FeverStartedAt = nil
	}
	return next, events
}

// hatch replaces the resident kappa with a newborn child, credits the egg,
// and supersedes any dangling catch candidate. The daily-reset stamp moves to
// today so rebirth is not immediately followed by a spurious reset.
func (s LifecycleService) hatch(next CoreState, now time.Time) CoreState {
	next.Player.EggsTotal++
	next.Player.LastDailyReset = ToGameDay(now, s.Rules.TZOffsetMinutes)
	next.Kappa = &Kappa{
		Stage:            StageChild,
		Health:           HealthNormal,
		Pose:             PoseSit,
		BornAt:           now,
		LastWaterAt:      timePtr(now),
		Satiety:          s.Rules.Food.SatietyFull,
		SatietyUpdatedAt: now,
		LastFeedAt:       timePtr(now),
		ImageState:       ImageChild,
	}
	next.Caught = nil
	return next
}

func (s LifecycleService) finishDeath(next CoreState, now time.Time, reason string, events []DomainEvent) Result {
	events = append(events,
		eventWithReason(EventDied, now, reason),
		eventWithReason(EventEggLaid, now, reason),
	)
	next = s.hatch(next, now)
	events = append(events, event(EventHatched, now))
	return s.finish(next, now, events)
}

func (s LifecycleService) finish(next CoreState, now time.Time, events []DomainEvent) Result {
	next.refreshImageState()
	next.touch(now)
	return Result{UpdatedState: next, Events: events}
}

func event(kind string, now time.Time) DomainEvent {
	return DomainEvent{Type: kind, OccurredAt: now}
}

func eventWithReason(kind string, now time.Time, reason string) DomainEvent {
	return DomainEvent{Type: kind, OccurredAt: now, Payload: map[string]any{"reason": reason}}
}
