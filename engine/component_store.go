package engine

import (
	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
)

// ComponentStore holds the typed store for every component kind.
// Initialized once per world; systems access fields directly to avoid
// runtime type lookup.
type ComponentStore struct {
	// Actors
	Player     *Store[component.PlayerComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]
	Beam       *Store[component.BeamComponent]
	Pickup     *Store[component.PickupComponent]

	// Shared capability
	Collider *Store[component.ColliderComponent]
	Health   *Store[component.HealthComponent]
	Kinetic  *Store[component.KineticComponent]

	// Lifecycle
	Timer *Store[component.TimerComponent]
	Death *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Player:     NewStore[component.PlayerComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Beam:       NewStore[component.BeamComponent](),
		Pickup:     NewStore[component.PickupComponent](),

		Collider: NewStore[component.ColliderComponent](),
		Health:   NewStore[component.HealthComponent](),
		Kinetic:  NewStore[component.KineticComponent](),

		Timer: NewStore[component.TimerComponent](),
		Death: NewStore[component.DeathComponent](),
	}
}

// removeFromAllStores strips an entity from every typed store
func (cs *ComponentStore) removeFromAllStores(e core.Entity) {
	cs.Player.RemoveEntity(e)
	cs.Enemy.RemoveEntity(e)
	cs.Projectile.RemoveEntity(e)
	cs.Beam.RemoveEntity(e)
	cs.Pickup.RemoveEntity(e)

	cs.Collider.RemoveEntity(e)
	cs.Health.RemoveEntity(e)
	cs.Kinetic.RemoveEntity(e)

	cs.Timer.RemoveEntity(e)
	cs.Death.RemoveEntity(e)
}

// clearAllStores empties every typed store
func (cs *ComponentStore) clearAllStores() {
	cs.Player.ClearAllComponents()
	cs.Enemy.ClearAllComponents()
	cs.Projectile.ClearAllComponents()
	cs.Beam.ClearAllComponents()
	cs.Pickup.ClearAllComponents()

	cs.Collider.ClearAllComponents()
	cs.Health.ClearAllComponents()
	cs.Kinetic.ClearAllComponents()

	cs.Timer.ClearAllComponents()
	cs.Death.ClearAllComponents()
}
