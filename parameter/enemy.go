package parameter

import "time"

// Enemy Lifecycle
const (
	// EnemyDeathAnimDuration is how long a killed enemy persists visually
	// before removal; the corpse never participates in collision
	EnemyDeathAnimDuration = 600 * time.Millisecond

	// EnemySpawnInterval is the base interval between enemy spawns
	EnemySpawnInterval = 1200 * time.Millisecond

	// EnemySpawnIntervalLevelFactor shortens the interval per level index
	EnemySpawnIntervalLevelFactor = 0.9

	// EnemyMaxAlive caps concurrently alive enemies
	EnemyMaxAlive = 48
)

// Beam Emitters
const (
	// BeamHalfWidth is the beam hit corridor half-width in arena units
	BeamHalfWidth = 0.6

	// BeamSweepRate is the beam rotation speed in radians per second
	BeamSweepRate = 0.8

	// BeamActiveDuration is how long an emitter keeps its beam lit
	BeamActiveDuration = 1500 * time.Millisecond

	// BeamRestDuration is the dark period between sweeps
	BeamRestDuration = 2500 * time.Millisecond
)
