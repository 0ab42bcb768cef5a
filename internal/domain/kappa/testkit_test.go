package kappa

import "time"

// scriptedSource replays a fixed draw sequence; drained, it keeps returning
// the last value.
type scriptedSource struct {
	draws []int
	i     int
}

func (s *scriptedSource) NextInt(maxExclusive int) int {
	if len(s.draws) == 0 {
		return maxExclusive - 1
	}
	v := s.draws[s.i]
	if s.i < len(s.draws)-1 {
		s.i++
	}
	if v >= maxExclusive {
		v = maxExclusive - 1
	}
	return v
}

// neverHit makes every lottery draw miss.
func neverHit() Source {
	return &scriptedSource{draws: []int{1}}
}

// alwaysHit makes every lottery draw a hit (and every fishing roll a boy).
func alwaysHit() Source {
	return &scriptedSource{draws: []int{0}}
}

// midday avoids day-boundary crossings in multi-hour test scenarios:
// 03:00 UTC = 12:00 JST under the default +540 offset.
func midday() time.Time {
	return time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)
}

func testService() LifecycleService {
	return LifecycleService{Rules: DefaultRules()}
}

// raisingState is a player mid-session with a healthy kappa of the given
// stage, watered and fed at now.
func raisingState(svc LifecycleService, stage Stage, now time.Time) CoreState {
	state := svc.NewInitialState("player-1", now)
	state.Player.LastLoginBonus = ToGameDay(now, svc.Rules.TZOffsetMinutes)

	bornDaysAgo := 0
	switch stage {
	case StageBoy:
		bornDaysAgo = svc.Rules.Life.CaughtBoyAgeDays
	case StageAdult:
		bornDaysAgo = svc.Rules.Life.CaughtAdultAgeDays
	}
	state.Kappa = &Kappa{
		Stage:            stage,
		Health:           HealthNormal,
		Pose:             PoseSit,
		BornAt:           now.Add(-time.Duration(bornDaysAgo) * dayLength),
		LastWaterAt:      timePtr(now),
		Satiety:          svc.Rules.Food.SatietyFull,
		SatietyUpdatedAt: now,
		LastFeedAt:       timePtr(now),
	}
	state.refreshImageState()
	return state
}

func eventTypes(events []DomainEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func hasEvent(events []DomainEvent, kind string) bool {
	for _, e := range events {
		if e.Type == kind {
			return true
		}
	}
	return false
}
