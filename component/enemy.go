package component

import "github.com/lixenwraith/datastorm/core"

// EnemyType identifies an enemy archetype.
// Per-type behavior dispatches through the stats table, never on names.
type EnemyType int

const (
	EnemyDataMite EnemyType = iota
	EnemyJunkWasp
	EnemyNullShade
	EnemyForkSpider
	EnemyRootMaul
	EnemyTypeCount
)

// EnemyComponent tags an entity as an enemy
type EnemyComponent struct {
	Type EnemyType

	// KillTracked is the one-shot death-eligibility flag: set exactly once
	// when the death is first recognized, even while the corpse persists
	// through its death animation. Guards scoring and kill counting.
	KillTracked bool

	// Dying marks an enemy playing its death animation; it no longer
	// participates in collision but still occupies the world
	Dying bool
}

// Alive reports whether the enemy participates in collision
func (e EnemyComponent) Alive() bool {
	return !e.Dying
}

// EnemyStats is the per-type stat row
type EnemyStats struct {
	Name          string
	MaxHealth     int
	ContactDamage int
	BasePoints    int64
	XP            int
	Radius        float64
	Speed         float64
	DeathSound    core.SoundType
	Beam          bool // Emits a sweeping beam while alive
}

// enemyTable is the authoritative per-type stat lookup
var enemyTable = [EnemyTypeCount]EnemyStats{
	EnemyDataMite:   {Name: "DataMite", MaxHealth: 10, ContactDamage: 5, BasePoints: 100, XP: 10, Radius: 0.8, Speed: 6.0, DeathSound: core.SoundExplosion},
	EnemyJunkWasp:   {Name: "JunkWasp", MaxHealth: 20, ContactDamage: 10, BasePoints: 150, XP: 15, Radius: 0.9, Speed: 8.0, DeathSound: core.SoundExplosion},
	EnemyNullShade:  {Name: "NullShade", MaxHealth: 40, ContactDamage: 15, BasePoints: 250, XP: 25, Radius: 1.1, Speed: 4.5, DeathSound: core.SoundExplosion},
	EnemyForkSpider: {Name: "ForkSpider", MaxHealth: 60, ContactDamage: 20, BasePoints: 400, XP: 40, Radius: 1.3, Speed: 3.5, DeathSound: core.SoundExplosion},
	EnemyRootMaul:   {Name: "RootMaul", MaxHealth: 150, ContactDamage: 30, BasePoints: 1000, XP: 100, Radius: 2.0, Speed: 2.0, DeathSound: core.SoundExplosion, Beam: true},
}

// StatsFor returns the stat row for an enemy type.
// Unknown types fall back to the DataMite row.
func StatsFor(t EnemyType) EnemyStats {
	if t < 0 || t >= EnemyTypeCount {
		return enemyTable[EnemyDataMite]
	}
	return enemyTable[t]
}
