package parameter

import "time"

// Multiplier Chain
const (
	// MultiplierMax is the score multiplier cap
	MultiplierMax = 15

	// MultiplierMin is the floor the multiplier never drops below
	MultiplierMin = 1

	// KillChainWindow is the maximum gap between consecutive kills that
	// still grows the multiplier
	KillChainWindow = 1500 * time.Millisecond

	// MultiplierDecayDuration is the inactivity window after which an
	// unbroken multiplier reverts to 1
	MultiplierDecayDuration = 2000 * time.Millisecond

	// MultiplierLostThreshold is the minimum multiplier at reset that
	// surfaces a distinct "multiplier lost" event
	MultiplierLostThreshold = 3
)

// Combo
const (
	// ComboWindow is the shorter-fused consecutive-kill counter window,
	// independent of the multiplier decay timer
	ComboWindow = 3000 * time.Millisecond
)
