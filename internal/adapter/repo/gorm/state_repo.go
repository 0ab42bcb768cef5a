package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kappaverse/internal/adapter/repo/gorm/model"
	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"

	"gorm.io/gorm"
)

type PlayerStateRepo struct {
	db *gorm.DB
}

func NewPlayerStateRepo(db *gorm.DB) PlayerStateRepo {
	return PlayerStateRepo{db: db}
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (kappa.CoreState, error) {
	var m model.PlayerState
	if err := dbFromContext(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kappa.CoreState{}, ports.ErrNotFound
		}
		return kappa.CoreState{}, err
	}
	return fromRow(m)
}

func (r PlayerStateRepo) SaveWithVersion(ctx context.Context, state kappa.CoreState, expectedVersion int64) error {
	db := dbFromContext(ctx, r.db)
	m, err := toRow(state)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	res := db.Model(&model.PlayerState{}).
		Where("player_id = ? AND version = ?", state.PlayerID, expectedVersion).
		Updates(rowUpdates(m))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r PlayerStateRepo) ListPlayerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := dbFromContext(ctx, r.db).
		Model(&model.PlayerState{}).
		Order("player_id").
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toRow(state kappa.CoreState) (model.PlayerState, error) {
	p := state.Player
	m := model.PlayerState{
		PlayerID:           state.PlayerID,
		Coins:              p.Coins,
		WaterCountToday:    int32(p.WaterCountToday),
		FeedCountToday:     int32(p.FeedCountToday),
		AdRewardCountToday: int32(p.AdRewardCountToday),
		LastDailyReset:     string(p.LastDailyReset),
		LastLoginBonus:     string(p.LastLoginBonus),
		Cucumbers:          int32(p.Cucumbers),
		PremiumCucumbers:   int32(p.PremiumCucumbers),
		Meats:              int32(p.Meats),
		Kois:               int32(p.Kois),
		Takuans:            int32(p.Takuans),
		ColorGreen:         int32(p.Color.Green),
		ColorRed:           int32(p.Color.Red),
		ColorBlue:          int32(p.Color.Blue),
		ColorYellow:        int32(p.Color.Yellow),
		EggsTotal:          p.EggsTotal,
		Version:            state.Version,
		UpdatedAt:          state.UpdatedAt,
	}
	if state.Kappa != nil {
		b, err := json.Marshal(state.Kappa)
		if err != nil {
			return model.PlayerState{}, fmt.Errorf("marshal kappa: %w", err)
		}
		m.Kappa = b
	}
	if state.Caught != nil {
		b, err := json.Marshal(state.Caught)
		if err != nil {
			return model.PlayerState{}, fmt.Errorf("marshal caught: %w", err)
		}
		m.Caught = b
	}
	return m, nil
}

func fromRow(m model.PlayerState) (kappa.CoreState, error) {
	state := kappa.CoreState{
		PlayerID: m.PlayerID,
		Player: kappa.Player{
			Coins:              m.Coins,
			WaterCountToday:    int(m.WaterCountToday),
			FeedCountToday:     int(m.FeedCountToday),
			AdRewardCountToday: int(m.AdRewardCountToday),
			LastDailyReset:     kappa.GameDay(m.LastDailyReset),
			LastLoginBonus:     kappa.GameDay(m.LastLoginBonus),
			Cucumbers:          int(m.Cucumbers),
			PremiumCucumbers:   int(m.PremiumCucumbers),
			Meats:              int(m.Meats),
			Kois:               int(m.Kois),
			Takuans:            int(m.Takuans),
			Color: kappa.ColorPoints{
				Green:  int(m.ColorGreen),
				Red:    int(m.ColorRed),
				Blue:   int(m.ColorBlue),
				Yellow: int(m.ColorYellow),
			},
			EggsTotal: m.EggsTotal,
		},
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Kappa) > 0 {
		var k kappa.Kappa
		if err := json.Unmarshal(m.Kappa, &k); err != nil {
			return kappa.CoreState{}, fmt.Errorf("unmarshal kappa: %w", err)
		}
		state.Kappa = &k
	}
	if len(m.Caught) > 0 {
		var c kappa.CatchCandidate
		if err := json.Unmarshal(m.Caught, &c); err != nil {
			return kappa.CoreState{}, fmt.Errorf("unmarshal caught: %w", err)
		}
		state.Caught = &c
	}
	return state, nil
}

// rowUpdates carries NULLable columns explicitly so a kappa death or a
// released catch actually clears the stored JSON.
func rowUpdates(m model.PlayerState) map[string]any {
	return map[string]any{
		"coins":                 m.Coins,
		"water_count_today":     m.WaterCountToday,
		"feed_count_today":      m.FeedCountToday,
		"ad_reward_count_today": m.AdRewardCountToday,
		"last_daily_reset":      m.LastDailyReset,
		"last_login_bonus":      m.LastLoginBonus,
		"cucumbers":             m.Cucumbers,
		"premium_cucumbers":     m.PremiumCucumbers,
		"meats":                 m.Meats,
		"kois":                  m.Kois,
		"takuans":               m.Takuans,
		"color_green":           m.ColorGreen,
		"color_red":             m.ColorRed,
		"color_blue":            m.ColorBlue,
		"color_yellow":          m.ColorYellow,
		"eggs_total":            m.EggsTotal,
		"kappa":                 m.Kappa,
		"caught":                m.Caught,
		"version":               m.Version,
		"updated_at":            m.UpdatedAt,
	}
}
