package kappa

import "time"

// RollCatch produces a fishing result: boy with the configured probability,
// adult otherwise. Children are never caught.
func (s LifecycleService) RollCatch(rng Source) CatchCandidate {
	if rng.NextInt(fishingRollSpan) < s.Rules.Fishing.BoyPerMille {
		return CatchCandidate{Stage: StageBoy, AgeYears: 1, LifespanYears: 3}
	}
	return CatchCandidate{Stage: StageAdult, AgeYears: 2, LifespanYears: 3}
}

// SetCaught stores a pending candidate for review.
func (s LifecycleService) SetCaught(state CoreState, caught *CatchCandidate, now time.Time) CoreState {
	next := state.clone()
	if caught != nil {
		c := *caught
		next.Caught = &c
	} else {
		next.Caught = nil
	}
	next.touch(now)
	return next
}

// ReleaseCaught discards the pending candidate and returns to fishing.
func (s LifecycleService) ReleaseCaught(state CoreState, now time.Time) CoreState {
	next := state.clone()
	next.Caught = nil
	next.touch(now)
	return next
}

// AdoptCaught starts raising the pending candidate. The birth instant is
// back-dated by the candidate's nominal age, so a boy adopted at T was "born"
// a year before T. Adopting replaces any previous kappa.
func (s LifecycleService) AdoptCaught(state CoreState, now time.Time) (Result, error) {
	if state.Caught == nil {
		return Result{}, failNotAllowed("no caught candidate")
	}

	next := state.clone()
	caught := *next.Caught

	caughtAge := s.Rules.Life.CaughtBoyAgeDays
	pose := PoseSit
	if caught.Stage == StageAdult {
		caughtAge = s.Rules.Life.CaughtAdultAgeDays
		pose = PoseStand
	}

	next.Kappa = &Kappa{
		Stage:            caught.Stage,
		Health:           HealthNormal,
		Pose:             pose,
		BornAt:           now.Add(-time.Duration(caughtAge) * dayLength),
		LastWaterAt:      timePtr(now),
		Satiety:          s.Rules.Food.SatietyFull,
		SatietyUpdatedAt: now,
		LastFeedAt:       timePtr(now),
	}
	next.Caught = nil
	next.refreshImageState()
	next.touch(now)
	return Result{UpdatedState: next}, nil
}

// ApplyWater is an unconditional full cure for thirst and fever: no cooldown,
// no daily cap. Only a dead kappa refuses it.
func (s LifecycleService) ApplyWater(state CoreState, now time.Time) (Result, error) {
	if state.Kappa == nil {
		return Result{}, failNoKappa()
	}
	if state.Kappa.Health == HealthDead {
		return Result{}, failAlreadyDead()
	}

	next := state.clone()
	next.Player.WaterCountToday++

	k := next.Kappa
	k.LastWaterAt = timePtr(now)
	k.Health = HealthNormal
	k.GuttariStartedAt = nil
	k.Fever.IsFever = false
	k.Fever.FeverStartedAt = nil

	next.refreshImageState()
	next.touch(now)
	return Result{
		UpdatedState: next,
		Events: []DomainEvent{
			event(EventKappaCry, now),
			event(EventWaterApplied, now),
		},
	}, nil
}

// ApplyFeed consumes one unit of the given food and restores full satiety.
// Feeding is throttled by a satiety ceiling rather than a cooldown: a kappa
// above the threshold is not hungry yet.
func (s LifecycleService) ApplyFeed(state CoreState, kind FoodKind, now time.Time) (Result, error) {
	if state.Kappa == nil {
		return Result{}, failNoKappa()
	}
	if state.Kappa.Health == HealthDead {
		return Result{}, failAlreadyDead()
	}

	next := state.clone()
	stock := stockOf(&next.Player, kind)
	if stock == nil {
		return Result{}, failNotAllowed("unknown food kind")
	}
	if *stock <= 0 {
		return Result{}, failNotAllowed("no stock left")
	}
	if state.Kappa.Satiety >= s.Rules.Food.FeedThreshold {
		return Result{}, failNotAllowed("kappa is not hungry yet")
	}

	*stock--
	next.Player.FeedCountToday++

	k := next.Kappa
	k.Satiety = s.Rules.Food.SatietyFull
	k.SatietyUpdatedAt = now
	k.LastFeedAt = timePtr(now)

	next.refreshImageState()
	next.touch(now)
	return Result{
		UpdatedState: next,
		Events: []DomainEvent{
			event(EventKappaCry, now),
			{
				Type:       EventFeedApplied,
				OccurredAt: now,
				Payload: map[string]any{
					"cucumbers_left": next.Player.Cucumbers,
					"satiety":        k.Satiety,
				},
			},
		},
	}, nil
}

// BuyShopItem debits the flat item price, adds one unit of stock, and grants
// the matching color bonus.
func (s LifecycleService) BuyShopItem(state CoreState, item ShopItem, now time.Time) (Result, error) {
	next := state.clone()
	p := &next.Player

	var stock, color *int
	switch item {
	case ItemPremiumCucumber:
		stock, color = &p.PremiumCucumbers, &p.Color.Green
	case ItemMeat:
		stock, color = &p.Meats, &p.Color.Red
	case ItemKoi:
		stock, color = &p.Kois, &p.Color.Blue
	case ItemTakuan:
		stock, color = &p.Takuans, &p.Color.Yellow
	default:
		return Result{}, failNotAllowed("unknown shop item")
	}

	if p.Coins < s.Rules.Shop.ItemPriceCoins {
		return Result{}, failNotEnoughCoins()
	}

	p.Coins -= s.Rules.Shop.ItemPriceCoins
	*stock++
	*color += s.Rules.Shop.ColorBonusOnBuy

	next.touch(now)
	return Result{UpdatedState: next}, nil
}

// GrantAdReward credits the stubbed ad-watch coin grant. The external reward
// system is trusted; the core only books the outcome.
func (s LifecycleService) GrantAdReward(state CoreState, now time.Time) (Result, error) {
	next := state.clone()
	next.Player.Coins += s.Rules.Shop.AdRewardCoins
	next.Player.AdRewardCountToday++
	next.touch(now)
	return Result{UpdatedState: next}, nil
}

func stockOf(p *Player, kind FoodKind) *int {
	switch kind {
	case FoodCucumber:
		return &p.Cucumbers
	case FoodPremiumCucumber:
		return &p.PremiumCucumbers
	case FoodMeat:
		return &p.Meats
	case FoodKoi:
		return &p.Kois
	case FoodTakuan:
		return &p.Takuans
	default:
		return nil
	}
}
