package component

import "time"

// BeamComponent is a continuous sweeping beam attached to an emitter enemy.
// It is a hit query, not a projectile: a hit damages the player without
// destroying any entity.
type BeamComponent struct {
	Angle  float64 // Current sweep angle in radians
	Damage int

	// Lit alternates with PhaseRemaining between active and rest phases
	Lit            bool
	PhaseRemaining time.Duration
}
