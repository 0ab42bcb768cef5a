package status

import "kappaverse/internal/domain/kappa"

type Request struct {
	PlayerID string
}

type Response struct {
	State kappa.CoreState `json:"state"`
	Mode  kappa.Mode      `json:"mode"`
	Pet   *PetView        `json:"pet,omitempty"`
}

// PetView carries the bar values the presentation layer renders. The water
// bar runs 100 -> 0 over the no-water window and stays at 0 through the
// guttari countdown.
type PetView struct {
	WaterPercent   int     `json:"water_percent"`
	SatietyPercent int     `json:"satiety_percent"`
	AgeDays        int     `json:"age_days"`
	AgeYears       int     `json:"age_years"`
	Hungry         bool    `json:"hungry"`
	Danger         bool    `json:"danger"`
	ImageState     string  `json:"image_state"`
	Satiety        float64 `json:"satiety"`
}
