package component

// PlayerComponent holds player progression and grant state
type PlayerComponent struct {
	PowerLevel int
	SpeedLevel int
	XP         int

	// ShieldActive absorbs exactly one hit, then clears
	ShieldActive bool

	// Invulnerable gates collision damage entirely. The grant is scoped
	// to the level it was collected in and is cleared on level advance.
	Invulnerable bool
}
