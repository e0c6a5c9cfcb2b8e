package parameter

import "time"

// Level Progression
const (
	// LevelCount is the number of levels before the game-complete outcome
	LevelCount = 8

	// LevelDuration is the survival objective per level
	LevelDuration = 60 * time.Second

	// ClearingDuration is the fixed length of the clearing phase,
	// independent of individual staggered death timing
	ClearingDuration = 3 * time.Second

	// ClearingStaggerMax bounds the random per-enemy forced-death delay
	ClearingStaggerMax = 1 * time.Second

	// DisplayingDuration is how long the level-complete notice is shown
	DisplayingDuration = 3 * time.Second

	// DeathSequenceDuration is the player death animation length before
	// the transition to game over
	DeathSequenceDuration = 2 * time.Second
)
