package component

// DeathComponent tags an entity for removal by the death system this frame
type DeathComponent struct {
	// Forced marks a zero-reward-path kill (player contact, level clearing)
	Forced bool
}
