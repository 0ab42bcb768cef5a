package kappa

import "time"

const dayLength = 24 * time.Hour

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// ageDays is whole elapsed days since birth, floored, never negative.
func ageDays(now, bornAt time.Time) int {
	if now.Before(bornAt) {
		return 0
	}
	return int(now.Sub(bornAt) / dayLength)
}

// clone detaches the aggregate from its input. Nested optional pointers are
// re-allocated; timestamps behind pointers are never written through, only
// replaced, so a shallow struct copy is enough once the Kappa/Caught pointers
// themselves are fresh.
func (s CoreState) clone() CoreState {
	next := s
	if s.Kappa != nil {
		k := *s.Kappa
		next.Kappa = &k
	}
	if s.Caught != nil {
		c := *s.Caught
		next.Caught = &c
	}
	return next
}

// touch stamps the write so optimistic persistence can CAS on Version.
func (s *CoreState) touch(now time.Time) {
	s.Version++
	s.UpdatedAt = now
}

// refreshImageState recomputes the derived display state from stage/health.
func (s *CoreState) refreshImageState() {
	k := s.Kappa
	if k == nil {
		return
	}
	switch {
	case k.Health == HealthDead:
		k.ImageState = ImageDead
	case k.Health == HealthGuttari:
		k.ImageState = ImageGuttari
	case k.Stage == StageChild:
		k.ImageState = ImageChild
	default:
		k.ImageState = ImageNormal
	}
}
