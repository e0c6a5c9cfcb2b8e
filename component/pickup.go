package component

// PickupKind identifies a pickup variant
type PickupKind int

const (
	PickupPowerUp PickupKind = iota
	PickupSpeedUp
	PickupMedPack
	PickupShield
	PickupInvulnerable
	PickupKindCount
)

// String returns the lowercase kind name used for telemetry keys
func (k PickupKind) String() string {
	switch k {
	case PickupPowerUp:
		return "powerup"
	case PickupSpeedUp:
		return "speedup"
	case PickupMedPack:
		return "medpack"
	case PickupShield:
		return "shield"
	case PickupInvulnerable:
		return "invulnerable"
	default:
		return "unknown"
	}
}

// PickupComponent tags a collectible.
// Collection is an acceptance test on the player's state; a rejected
// pickup stays in the world.
type PickupComponent struct {
	Kind PickupKind
}
