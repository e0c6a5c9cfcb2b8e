package parameter

// Player
const (
	PlayerMaxHealth = 100
	PlayerRadius    = 1.0

	// PowerLevelMax caps weapon power pickups; further power-ups are
	// rejected with an at-max feedback path
	PowerLevelMax = 5

	// SpeedLevelMax caps speed pickups the same way
	SpeedLevelMax = 5

	// MedPackHealAmount is health restored per med-pack
	MedPackHealAmount = 25
)
