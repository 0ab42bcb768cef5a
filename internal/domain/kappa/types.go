package kappa

import "time"

type Stage string

const (
	StageChild Stage = "child"
	StageBoy   Stage = "boy"
	StageAdult Stage = "adult"
)

type Health string

const (
	HealthNormal  Health = "normal"
	HealthGuttari Health = "guttari"
	HealthDead    Health = "dead"
)

// Pose is cosmetic only; it carries no invariants of its own.
type Pose string

const (
	PoseSit    Pose = "sit"
	PoseStand  Pose = "stand"
	PoseLay    Pose = "lay"
	PoseBedSit Pose = "bed_sit"
)

// ImageState is derived from stage/health after every mutation and is never
// authoritative on its own.
type ImageState string

const (
	ImageNormal  ImageState = "normal"
	ImageChild   ImageState = "child"
	ImageGuttari ImageState = "guttari"
	ImageDead    ImageState = "dead"
)

type FoodKind string

const (
	FoodCucumber        FoodKind = "cucumber"
	FoodPremiumCucumber FoodKind = "premiumCucumber"
	FoodMeat            FoodKind = "meat"
	FoodKoi             FoodKind = "koi"
	FoodTakuan          FoodKind = "takuan"
)

type ShopItem string

const (
	ItemPremiumCucumber ShopItem = "premiumCucumber"
	ItemMeat            ShopItem = "meat"
	ItemKoi             ShopItem = "koi"
	ItemTakuan          ShopItem = "takuan"
)

type ColorPoints struct {
	Green  int `json:"green"`
	Red    int `json:"red"`
	Blue   int `json:"blue"`
	Yellow int `json:"yellow"`
}

type Player struct {
	Coins int64 `json:"coins"`

	// Per-day counters, display/telemetry only. They gate nothing.
	WaterCountToday    int `json:"water_count_today"`
	FeedCountToday     int `json:"feed_count_today"`
	AdRewardCountToday int `json:"ad_reward_count_today"`

	LastDailyReset GameDay `json:"last_daily_reset"`
	LastLoginBonus GameDay `json:"last_login_bonus,omitempty"`

	Cucumbers        int `json:"cucumbers"`
	PremiumCucumbers int `json:"premium_cucumbers"`
	Meats            int `json:"meats"`
	Kois             int `json:"kois"`
	Takuans          int `json:"takuans"`

	Color ColorPoints `json:"color"`

	EggsTotal int64 `json:"eggs_total"`
}

type FeverState struct {
	IsFever          bool       `json:"is_fever"`
	FeverStartedAt   *time.Time `json:"fever_started_at,omitempty"`
	FeverCheckedDate GameDay    `json:"fever_checked_date,omitempty"`
}

type Kappa struct {
	Stage  Stage  `json:"stage"`
	Health Health `json:"health"`
	Pose   Pose   `json:"pose"`

	BornAt time.Time `json:"born_at"`

	LastWaterAt      *time.Time `json:"last_water_at,omitempty"`
	GuttariStartedAt *time.Time `json:"guttari_started_at,omitempty"`

	Satiety          float64    `json:"satiety"`
	SatietyUpdatedAt time.Time  `json:"satiety_updated_at"`
	LastFeedAt       *time.Time `json:"last_feed_at,omitempty"`

	Fever FeverState `json:"fever"`

	ImageState ImageState `json:"image_state"`
}

// CatchCandidate is a fishing result pending accept/release.
type CatchCandidate struct {
	Stage         Stage `json:"stage"`
	AgeYears      int   `json:"age_years"`
	LifespanYears int   `json:"lifespan_years"`
}

// CoreState is the aggregate root for one player's session. Mutators are
// copy-on-write: every operation returns a fresh aggregate and never writes
// through pointers shared with its input.
type CoreState struct {
	PlayerID string          `json:"player_id"`
	Player   Player          `json:"player"`
	Kappa    *Kappa          `json:"kappa,omitempty"`
	Caught   *CatchCandidate `json:"caught,omitempty"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mode collapses the two optional fields into the three session modes the
// presentation layer switches on.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeReviewing Mode = "reviewing"
	ModeRaising   Mode = "raising"
)

func (s CoreState) Mode() Mode {
	switch {
	case s.Kappa != nil:
		return ModeRaising
	case s.Caught != nil:
		return ModeReviewing
	default:
		return ModeIdle
	}
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventKappaCry           = "SE_KAPPA_CRY"
	EventWaterApplied       = "WATER_APPLIED"
	EventFeedApplied        = "FEED_APPLIED"
	EventFeverStarted       = "FEVER_STARTED"
	EventGuttariStarted     = "GUTTARI_STARTED"
	EventMolted             = "MOLTED"
	EventEggLaid            = "EGG_LAID"
	EventHatched            = "HATCHED"
	EventDied               = "DIED"
	EventDailyReset         = "DAILY_RESET"
	EventLoginBonusCucumber = "LOGIN_BONUS_CUCUMBER"
)

const (
	ReasonLifespan       = "lifespan_3y"
	ReasonChildNoWater   = "child_no_water_24h"
	ReasonChildFever     = "child_fever_no_water_10h"
	ReasonNoWaterGuttari = "boyadult_no_water_dead"
)

// Result pairs the next aggregate with the ordered event log of one call.
type Result struct {
	UpdatedState CoreState     `json:"updated_state"`
	Events       []DomainEvent `json:"events"`
}
