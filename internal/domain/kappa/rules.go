package kappa

import "time"

// Rules is the immutable tunables table. It is supplied at process start and
// every numeric threshold the engine reads lives here.
type Rules struct {
	TZOffsetMinutes int

	Fishing FishingRules
	Water   WaterRules
	Life    LifeRules
	Death   DeathRules
	Fever   FeverRules
	Food    FoodRules
	Shop    ShopRules
}

// fishingRollSpan is the denominator of the per-mille fishing draw.
const fishingRollSpan = 1000

type FishingRules struct {
	// Boy probability in per-mille: one NextInt(fishingRollSpan) draw below
	// BoyPerMille is a boy.
	BoyPerMille int
}

type WaterRules struct {
	// Display metadata only. Watering has no cooldown and no daily cap.
	FreePerDay int
}

type LifeRules struct {
	LifespanDays       int
	CaughtBoyAgeDays   int
	CaughtAdultAgeDays int
	ChildToBoyDays     int
	BoyToAdultAgeDays  int
}

type DeathRules struct {
	NoWaterToGuttari  time.Duration
	GuttariToDeath    time.Duration
	ChildNoWaterDeath time.Duration
	FeverDeadline     time.Duration
}

type FeverRules struct {
	// One-in-N per day, child stage only. A NextInt(N) draw of 0 is a hit.
	LotteryDenominator int
}

type FoodRules struct {
	LoginBonusCucumbers int
	FeedThreshold       float64
	SatietyFull         float64
	// Hours for a full 100 -> 0 linear decay.
	SatietyDecayHours  float64
	HungryRedThreshold float64
}

type ShopRules struct {
	ItemPriceCoins  int64
	ColorBonusOnBuy int
	AdRewardCoins   int64
}

// DefaultRules returns the production tuning: JST day boundaries, a three year
// lifespan, and the 24h/6h/10h watering deadlines.
func DefaultRules() Rules {
	return Rules{
		TZOffsetMinutes: 540,
		Fishing: FishingRules{
			BoyPerMille: 500,
		},
		Water: WaterRules{
			FreePerDay: 10,
		},
		Life: LifeRules{
			LifespanDays:       365 * 3,
			CaughtBoyAgeDays:   365,
			CaughtAdultAgeDays: 365 * 2,
			ChildToBoyDays:     30,
			BoyToAdultAgeDays:  365 * 2,
		},
		Death: DeathRules{
			NoWaterToGuttari:  24 * time.Hour,
			GuttariToDeath:    6 * time.Hour,
			ChildNoWaterDeath: 24 * time.Hour,
			FeverDeadline:     10 * time.Hour,
		},
		Fever: FeverRules{
			LotteryDenominator: 30,
		},
		Food: FoodRules{
			LoginBonusCucumbers: 3,
			FeedThreshold:       70,
			SatietyFull:         100,
			SatietyDecayHours:   6,
			HungryRedThreshold:  20,
		},
		Shop: ShopRules{
			ItemPriceCoins:  300,
			ColorBonusOnBuy: 3,
			AdRewardCoins:   100,
		},
	}
}
