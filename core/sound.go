package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit            SoundType = iota // Projectile or beam impact
	SoundExplosion                       // Enemy death burst
	SoundPickup                          // Pickup collected
	SoundDenied                          // Pickup rejected at cap
	SoundMultiplierLost                  // Multiplier reset from >= 3
	SoundLevelComplete                   // Level transition chime
	SoundPlayerDeath                     // Player death sequence
	SoundTypeCount
)
