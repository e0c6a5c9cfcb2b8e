package component

// ProjectileOwner identifies which side fired a projectile
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// ProjectileComponent tags a physical projectile.
// A projectile resolves against at most one target per frame and is
// destroyed on its first hit.
type ProjectileComponent struct {
	Owner  ProjectileOwner
	Damage int
}
