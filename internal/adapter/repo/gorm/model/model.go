// Package model holds the row types the gorm adapter maps between the
// database and the domain aggregates.
package model

import "time"

type PlayerState struct {
	PlayerID string `gorm:"column:player_id;primaryKey"`

	Coins int64 `gorm:"column:coins"`

	WaterCountToday    int32 `gorm:"column:water_count_today"`
	FeedCountToday     int32 `gorm:"column:feed_count_today"`
	AdRewardCountToday int32 `gorm:"column:ad_reward_count_today"`

	LastDailyReset string `gorm:"column:last_daily_reset"`
	LastLoginBonus string `gorm:"column:last_login_bonus"`

	Cucumbers        int32 `gorm:"column:cucumbers"`
	PremiumCucumbers int32 `gorm:"column:premium_cucumbers"`
	Meats            int32 `gorm:"column:meats"`
	Kois             int32 `gorm:"column:kois"`
	Takuans          int32 `gorm:"column:takuans"`

	ColorGreen  int32 `gorm:"column:color_green"`
	ColorRed    int32 `gorm:"column:color_red"`
	ColorBlue   int32 `gorm:"column:color_blue"`
	ColorYellow int32 `gorm:"column:color_yellow"`

	EggsTotal int64 `gorm:"column:eggs_total"`

	// Optional sub-aggregates travel as JSON; NULL means absent.
	Kappa  []byte `gorm:"column:kappa;type:jsonb"`
	Caught []byte `gorm:"column:caught;type:jsonb"`

	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PlayerState) TableName() string { return "player_states" }

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID   string    `gorm:"column:player_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
