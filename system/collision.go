package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/vmath"
)

// CollisionSystem resolves actor overlap each frame in a fixed pass order:
// player/enemy contact, enemy projectiles, beams, player projectiles, then
// pickups. Invulnerability gates the first three passes only.
type CollisionSystem struct {
	world   *engine.World
	enabled bool

	// Telemetry
	contactHits    *atomic.Int64
	projectileHits *atomic.Int64
	beamHits       *atomic.Int64
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{
		world:   world,
		enabled: true,
	}
}

func (s *CollisionSystem) Init() {
	st := s.world.Resources.Status
	s.contactHits = st.Ints.Get("collision.contact_hits")
	s.projectileHits = st.Ints.Get("collision.projectile_hits")
	s.beamHits = st.Ints.Get("collision.beam_hits")
	s.contactHits.Store(0)
	s.projectileHits.Store(0)
	s.beamHits.Store(0)
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update runs the five resolution passes. Collision only exists while
// Playing; transitions and death animations freeze it entirely.
func (s *CollisionSystem) Update() {
	if !s.enabled || s.world.Resources.Game.Phase() != engine.PhasePlaying {
		return
	}

	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok {
		return
	}
	playerPos, ok := s.world.Positions.GetPosition(player)
	if !ok {
		return
	}
	playerCol, _ := s.world.Components.Collider.GetComponent(player)

	if !pc.Invulnerable {
		s.resolvePlayerEnemyContact(player, playerPos, playerCol.Radius)
		s.resolveEnemyProjectiles(playerPos, playerCol.Radius)
		s.resolveBeams(playerPos, playerCol.Radius)
	}
	s.resolvePlayerProjectiles()
	s.resolvePickups(playerPos, playerCol.Radius)
}

// resolvePlayerEnemyContact handles pass 1: touching an alive enemy damages
// the player and force-kills the enemy. Forced kills count but never score.
func (s *CollisionSystem) resolvePlayerEnemyContact(player core.Entity, playerPos vmath.Vec2, playerRadius float64) {
	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		ec, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok || !ec.Alive() {
			continue
		}
		pos, ok := s.world.Positions.GetPosition(e)
		if !ok {
			continue
		}
		col, _ := s.world.Components.Collider.GetComponent(e)
		if !vmath.CirclesOverlap(playerPos, playerRadius, pos, col.Radius) {
			continue
		}

		stats := component.StatsFor(ec.Type)
		s.contactHits.Add(1)
		s.world.PushEvent(event.EventPlayerDamageRequest, &event.PlayerDamagePayload{
			Amount: stats.ContactDamage,
			Source: event.DamageSourceContact,
		})
		s.recognizeKill(e, &ec, true)
	}
}

// resolveEnemyProjectiles handles pass 2: enemy shots hitting the player
func (s *CollisionSystem) resolveEnemyProjectiles(playerPos vmath.Vec2, playerRadius float64) {
	for _, p := range s.world.Components.Projectile.GetAllEntities() {
		proj, ok := s.world.Components.Projectile.GetComponent(p)
		if !ok || proj.Owner != component.OwnerEnemy {
			continue
		}
		pos, ok := s.world.Positions.GetPosition(p)
		if !ok {
			continue
		}
		col, _ := s.world.Components.Collider.GetComponent(p)
		if !vmath.CirclesOverlap(playerPos, playerRadius, pos, col.Radius) {
			continue
		}

		s.world.PushEvent(event.EventPlayerDamageRequest, &event.PlayerDamagePayload{
			Amount: proj.Damage,
			Source: event.DamageSourceProjectile,
		})
		event.EmitDeathOne(s.world.EventQueue(), p, true, s.world.FrameNumber())
	}
}

// resolveBeams handles pass 3: continuous sweeping beams are a hit query,
// damaging the player without any entity to destroy
func (s *CollisionSystem) resolveBeams(playerPos vmath.Vec2, playerRadius float64) {
	for _, b := range s.world.Components.Beam.GetAllEntities() {
		// An emitter corpse goes dark for its whole death animation
		if ec, ok := s.world.Components.Enemy.GetComponent(b); ok && !ec.Alive() {
			continue
		}
		beam, ok := s.world.Components.Beam.GetComponent(b)
		if !ok || !beam.Lit {
			continue
		}
		origin, ok := s.world.Positions.GetPosition(b)
		if !ok {
			continue
		}
		dir := vmath.Vec2{X: math.Cos(beam.Angle), Y: math.Sin(beam.Angle)}
		if !vmath.BeamHit(origin, dir, parameter.BeamHalfWidth, playerPos, playerRadius) {
			continue
		}

		s.beamHits.Add(1)
		s.world.PushEvent(event.EventPlayerDamageRequest, &event.PlayerDamagePayload{
			Amount: beam.Damage,
			Source: event.DamageSourceBeam,
		})
	}
}

// resolvePlayerProjectiles handles pass 4: each player projectile damages at
// most the first overlapping enemy found, then is destroyed. Never gated by
// invulnerability.
func (s *CollisionSystem) resolvePlayerProjectiles() {
	enemies := s.world.Components.Enemy.GetAllEntities()

	for _, p := range s.world.Components.Projectile.GetAllEntities() {
		proj, ok := s.world.Components.Projectile.GetComponent(p)
		if !ok || proj.Owner != component.OwnerPlayer {
			continue
		}
		projPos, ok := s.world.Positions.GetPosition(p)
		if !ok {
			continue
		}
		projCol, _ := s.world.Components.Collider.GetComponent(p)

		for _, e := range enemies {
			ec, ok := s.world.Components.Enemy.GetComponent(e)
			if !ok || !ec.Alive() {
				continue
			}
			pos, ok := s.world.Positions.GetPosition(e)
			if !ok {
				continue
			}
			col, _ := s.world.Components.Collider.GetComponent(e)
			if !vmath.CirclesOverlap(projPos, projCol.Radius, pos, col.Radius) {
				continue
			}

			s.projectileHits.Add(1)
			s.damageEnemy(e, &ec, proj.Damage)
			event.EmitDeathOne(s.world.EventQueue(), p, true, s.world.FrameNumber())
			break // First hit wins; one enemy per projectile per frame
		}
	}
}

// resolvePickups handles pass 5: overlap raises a collection attempt; the
// acceptance test lives in the player system. Never gated by invulnerability.
func (s *CollisionSystem) resolvePickups(playerPos vmath.Vec2, playerRadius float64) {
	for _, e := range s.world.Components.Pickup.GetAllEntities() {
		pk, ok := s.world.Components.Pickup.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.world.Positions.GetPosition(e)
		if !ok {
			continue
		}
		col, _ := s.world.Components.Collider.GetComponent(e)
		if !vmath.CirclesOverlap(playerPos, playerRadius, pos, col.Radius) {
			continue
		}

		s.world.PushEvent(event.EventPickupTouched, &event.PickupTouchedPayload{
			Entity: e,
			Kind:   pk.Kind,
		})
	}
}

// damageEnemy applies damage and performs kill handling when health is
// newly depleted
func (s *CollisionSystem) damageEnemy(e core.Entity, ec *component.EnemyComponent, amount int) {
	hp, ok := s.world.Components.Health.GetComponent(e)
	if !ok {
		return
	}
	hp.Current -= amount
	s.world.Components.Health.SetComponent(e, hp)

	if hp.Depleted() {
		s.recognizeKill(e, ec, false)
	}
}

// recognizeKill performs one-shot kill handling: the kill-tracked flag
// guards scoring and counting exactly once, while the corpse persists
// through its death animation before removal.
func (s *CollisionSystem) recognizeKill(e core.Entity, ec *component.EnemyComponent, forced bool) {
	if ec.KillTracked {
		return
	}
	ec.KillTracked = true
	ec.Dying = true
	s.world.Components.Enemy.SetComponent(e, *ec)
	// Dying emitters keep no beam; nothing may relight it mid-animation
	s.world.Components.Beam.RemoveEntity(e)

	stats := component.StatsFor(ec.Type)
	s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Entity: e,
		Type:   ec.Type,
		Forced: forced,
	})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: stats.DeathSound})
	s.world.PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   e,
		Duration: parameter.EnemyDeathAnimDuration,
	})
}
