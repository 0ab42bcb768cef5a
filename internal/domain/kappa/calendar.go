package kappa

import "time"

// GameDay identifies one calendar day (YYYY-MM-DD) under the game's fixed
// UTC offset. The zero value means "never".
type GameDay string

const gameDayLayout = "2006-01-02"

// ToGameDay maps an absolute instant to the game day it falls on, shifting by
// the fixed offset. No timezone database is involved.
func ToGameDay(now time.Time, offsetMinutes int) GameDay {
	shifted := now.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	return GameDay(shifted.Format(gameDayLayout))
}

// DayStartInstant is the inverse of ToGameDay: the absolute instant at the
// given time-of-day on the given game day. Inputs are always well-formed;
// a malformed day yields the zero time.
func DayStartInstant(day GameDay, hour, minute, offsetMinutes int) time.Time {
	d, err := time.Parse(gameDayLayout, string(day))
	if err != nil {
		return time.Time{}
	}
	naive := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
	return naive.Add(-time.Duration(offsetMinutes) * time.Minute)
}
