package component

import "time"

// TimerComponent schedules a death for an entity after a simulation delay.
// Advanced only by frame delta, never wall clock, so a paused host pauses
// every scheduled death.
type TimerComponent struct {
	Remaining time.Duration

	// Forced is copied onto the death tag at expiry: a forced death yields
	// its effects and kill count but never the kill-points path
	Forced bool
}
