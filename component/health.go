package component

// HealthComponent tracks hit points for damageable entities
type HealthComponent struct {
	Current int
	Max     int
}

// Depleted reports whether hit points have reached zero
func (h HealthComponent) Depleted() bool {
	return h.Current <= 0
}
