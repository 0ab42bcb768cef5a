package httpadapter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"kappaverse/internal/app/status"
	"kappaverse/internal/app/tick"
	"kappaverse/internal/domain/kappa"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	state := kappa.CoreState{
		PlayerID: "p1",
		Player: kappa.Player{
			Coins:          300,
			Cucumbers:      2,
			LastDailyReset: kappa.ToGameDay(now, 540),
		},
		Kappa: &kappa.Kappa{
			Stage:            kappa.StageChild,
			Health:           kappa.HealthNormal,
			Pose:             kappa.PoseSit,
			BornAt:           now,
			Satiety:          80,
			SatietyUpdatedAt: now,
			ImageState:       kappa.ImageChild,
		},
		Version:   3,
		UpdatedAt: now,
	}
	event := kappa.DomainEvent{
		Type:       "test_event",
		OccurredAt: now,
		Payload:    map[string]any{"ok": true},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "tick",
			payload: tick.Response{UpdatedState: state, Events: []kappa.DomainEvent{event}},
			want:    []string{"updated_state", "events", "player_id", "last_daily_reset", "satiety_updated_at", "image_state"},
			notWant: []string{"UpdatedState", "Events", "PlayerID"},
		},
		{
			name: "status",
			payload: status.Response{
				State: state,
				Mode:  state.Mode(),
				Pet: &status.PetView{
					WaterPercent:   50,
					SatietyPercent: 80,
					ImageState:     string(kappa.ImageChild),
				},
			},
			want:    []string{"state", "mode", "pet", "water_percent", "satiety_percent", "age_days"},
			notWant: []string{"State", "Mode", "Pet", "WaterPercent"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			body := string(raw)
			for _, key := range tc.want {
				if !strings.Contains(body, `"`+key+`"`) {
					t.Fatalf("missing key %q in %s", key, body)
				}
			}
			for _, key := range tc.notWant {
				if strings.Contains(body, `"`+key+`"`) {
					t.Fatalf("unexpected key %q in %s", key, body)
				}
			}
		})
	}
}
