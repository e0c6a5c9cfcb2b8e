package system

import (
	"testing"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/vmath"
)

func newCollisionHarness() *harness {
	return newHarness(
		func(w *engine.World) engine.System { return NewCollisionSystem(w) },
		func(w *engine.World) engine.System { return NewScoreSystem(w) },
		func(w *engine.World) engine.System { return NewPlayerSystem(w) },
		func(w *engine.World) engine.System { return NewTimerSystem(w) },
		func(w *engine.World) engine.System { return NewDeathSystem(w) },
	)
}

func TestProjectileFirstHitWins(t *testing.T) {
	h := newCollisionHarness()

	// Two enemies overlapping the same projectile far from the player
	pos := vmath.Vec2{X: 20, Y: 20}
	a := h.spawnEnemy(component.EnemyDataMite, pos)
	b := h.spawnEnemy(component.EnemyDataMite, pos)
	h.spawnProjectile(pos, 5, component.OwnerPlayer)

	h.tick()

	hpA, _ := h.world().Components.Health.GetComponent(a)
	hpB, _ := h.world().Components.Health.GetComponent(b)
	damaged := 0
	if hpA.Current < hpA.Max {
		damaged++
	}
	if hpB.Current < hpB.Max {
		damaged++
	}
	if damaged != 1 {
		t.Errorf("projectile damaged %d enemies, want exactly 1", damaged)
	}
	if h.world().Components.Projectile.CountEntities() != 0 {
		t.Error("projectile must be destroyed on first hit")
	}
}

func TestTangencyIsNotCollision(t *testing.T) {
	h := newCollisionHarness()

	// Enemy exactly at the sum of radii: strict comparison, no contact
	row := component.StatsFor(component.EnemyDataMite)
	pos := h.playerPos().Add(vmath.Vec2{X: parameter.PlayerRadius + row.Radius})
	e := h.spawnEnemy(component.EnemyDataMite, pos)

	h.tick()

	hp, _ := h.world().Components.Health.GetComponent(h.ctx.PlayerEntity())
	if hp.Current != parameter.PlayerMaxHealth {
		t.Errorf("player health = %d after tangent contact, want %d", hp.Current, parameter.PlayerMaxHealth)
	}
	ec, _ := h.world().Components.Enemy.GetComponent(e)
	if ec.KillTracked {
		t.Error("tangent enemy must not be force-killed")
	}
}

func TestContactKillIsForcedZeroReward(t *testing.T) {
	h := newCollisionHarness()

	row := component.StatsFor(component.EnemyDataMite)
	e := h.spawnEnemy(component.EnemyDataMite, h.playerPos())

	h.tick()

	hp, _ := h.world().Components.Health.GetComponent(h.ctx.PlayerEntity())
	if got := hp.Current; got != parameter.PlayerMaxHealth-row.ContactDamage {
		t.Errorf("player health = %d, want %d", got, parameter.PlayerMaxHealth-row.ContactDamage)
	}

	ec, ok := h.world().Components.Enemy.GetComponent(e)
	if !ok || !ec.KillTracked || !ec.Dying {
		t.Error("contact enemy must be tracked and dying")
	}
	if got := h.stats().Score.Load(); got != 0 {
		t.Errorf("contact kill score = %d, want 0", got)
	}
	if got := h.stats().Kills(component.EnemyDataMite); got != 1 {
		t.Errorf("contact kill count = %d, want 1", got)
	}
}

func TestKillAttributedExactlyOnce(t *testing.T) {
	h := newCollisionHarness()

	// Kill via projectile, then let the corpse persist through its death
	// animation; the kill must be scored exactly once
	pos := vmath.Vec2{X: 20, Y: 20}
	h.spawnEnemy(component.EnemyDataMite, pos)
	h.spawnProjectile(pos, 100, component.OwnerPlayer)

	h.step(parameter.EnemyDeathAnimDuration * 2)

	if got := h.stats().Score.Load(); got != 100 {
		t.Errorf("score = %d, want exactly one 100-point award", got)
	}
	if got := h.stats().Kills(component.EnemyDataMite); got != 1 {
		t.Errorf("kill count = %d, want 1", got)
	}
	if h.world().Components.Enemy.CountEntities() != 0 {
		t.Error("corpse must be removed after the death animation")
	}
}

func TestDyingEnemyExcludedFromCollision(t *testing.T) {
	h := newCollisionHarness()

	pos := vmath.Vec2{X: 20, Y: 20}
	e := h.spawnEnemy(component.EnemyDataMite, pos)
	h.spawnProjectile(pos, 100, component.OwnerPlayer)
	h.tick() // Kill; corpse enters death animation

	// A second projectile overlapping the corpse passes through
	h.spawnProjectile(pos, 100, component.OwnerPlayer)
	h.tick()

	if h.world().Components.Projectile.CountEntities() != 1 {
		t.Error("projectile must not resolve against a dying corpse")
	}
	_ = e
}

func TestInvulnerabilityGatesDamageOnly(t *testing.T) {
	h := newCollisionHarness()

	player := h.ctx.PlayerEntity()
	pc, _ := h.world().Components.Player.GetComponent(player)
	pc.Invulnerable = true
	h.world().Components.Player.SetComponent(player, pc)

	// Contact enemy: no damage, no forced kill while invulnerable
	e := h.spawnEnemy(component.EnemyDataMite, h.playerPos())
	h.tick()

	hp, _ := h.world().Components.Health.GetComponent(player)
	if hp.Current != parameter.PlayerMaxHealth {
		t.Errorf("invulnerable player took damage: health %d", hp.Current)
	}
	ec, _ := h.world().Components.Enemy.GetComponent(e)
	if ec.KillTracked {
		t.Error("invulnerability must gate the contact pass entirely")
	}

	// Player projectiles are never gated by invulnerability
	pos, _ := h.world().Positions.GetPosition(e)
	h.spawnProjectile(pos, 100, component.OwnerPlayer)
	h.tick()

	ec, _ = h.world().Components.Enemy.GetComponent(e)
	if !ec.KillTracked {
		t.Error("projectile kill must work while invulnerable")
	}
}

func TestEnemyProjectileHitsAndIsDestroyed(t *testing.T) {
	h := newCollisionHarness()

	h.spawnProjectile(h.playerPos(), 15, component.OwnerEnemy)
	h.tick()

	hp, _ := h.world().Components.Health.GetComponent(h.ctx.PlayerEntity())
	if got := hp.Current; got != parameter.PlayerMaxHealth-15 {
		t.Errorf("player health = %d, want %d", got, parameter.PlayerMaxHealth-15)
	}
	if h.world().Components.Projectile.CountEntities() != 0 {
		t.Error("enemy projectile must be destroyed on hit")
	}
}

func TestPickupCollectionAndRejection(t *testing.T) {
	h := newCollisionHarness()

	player := h.ctx.PlayerEntity()

	// Accepted: power level below cap
	h.spawnPickup(component.PickupPowerUp, h.playerPos())
	h.tick()

	pc, _ := h.world().Components.Player.GetComponent(player)
	if pc.PowerLevel != 1 {
		t.Errorf("power level = %d, want 1", pc.PowerLevel)
	}
	if h.world().Components.Pickup.CountEntities() != 0 {
		t.Error("collected pickup must be removed")
	}

	// Rejected: at cap the pickup stays in the world
	pc.PowerLevel = parameter.PowerLevelMax
	h.world().Components.Player.SetComponent(player, pc)
	h.spawnPickup(component.PickupPowerUp, h.playerPos())
	h.tick()

	pc, _ = h.world().Components.Player.GetComponent(player)
	if pc.PowerLevel != parameter.PowerLevelMax {
		t.Errorf("power level = %d, want unchanged %d", pc.PowerLevel, parameter.PowerLevelMax)
	}
	if h.world().Components.Pickup.CountEntities() != 1 {
		t.Error("rejected pickup must remain in the world")
	}
}

func TestDyingEmitterBeamGoesDark(t *testing.T) {
	h := newCollisionHarness()
	player := h.ctx.PlayerEntity()

	// Emitter well clear of contact range, beam aimed straight at the player
	pos := h.playerPos().Add(vmath.Vec2{X: -20})
	e := h.spawnEnemy(component.EnemyRootMaul, pos)
	h.world().Components.Beam.SetComponent(e, component.BeamComponent{
		Angle:          0,
		Damage:         30,
		Lit:            true,
		PhaseRemaining: parameter.BeamActiveDuration,
	})

	h.tick()
	hp, _ := h.world().Components.Health.GetComponent(player)
	if hp.Current >= parameter.PlayerMaxHealth {
		t.Fatal("lit beam must damage the player")
	}

	// The killing shot lands after the beam pass, so the beam hits once
	// more this frame and never again
	row := component.StatsFor(component.EnemyRootMaul)
	h.spawnProjectile(pos, row.MaxHealth, component.OwnerPlayer)
	h.tick()

	ec, _ := h.world().Components.Enemy.GetComponent(e)
	if !ec.Dying {
		t.Fatal("emitter must be dying after the killing shot")
	}
	hp, _ = h.world().Components.Health.GetComponent(player)
	afterKill := hp.Current

	h.step(parameter.EnemyDeathAnimDuration / 2)

	hp, _ = h.world().Components.Health.GetComponent(player)
	if hp.Current != afterKill {
		t.Errorf("dying emitter's beam damaged player: %d -> %d", afterKill, hp.Current)
	}
}

func TestMedPackRejectedAtFullHealth(t *testing.T) {
	h := newCollisionHarness()

	player := h.ctx.PlayerEntity()
	h.spawnPickup(component.PickupMedPack, h.playerPos())
	h.tick()

	if h.world().Components.Pickup.CountEntities() != 1 {
		t.Error("med-pack at full health must remain in the world")
	}

	hp, _ := h.world().Components.Health.GetComponent(player)
	hp.Current = hp.Max - 1
	h.world().Components.Health.SetComponent(player, hp)
	h.tick()

	hp, _ = h.world().Components.Health.GetComponent(player)
	if hp.Current != hp.Max {
		t.Errorf("healed to %d, want clamped at %d", hp.Current, hp.Max)
	}
	if h.world().Components.Pickup.CountEntities() != 0 {
		t.Error("accepted med-pack must be removed")
	}
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	h := newCollisionHarness()

	player := h.ctx.PlayerEntity()
	h.spawnPickup(component.PickupShield, h.playerPos())
	h.tick()

	pc, _ := h.world().Components.Player.GetComponent(player)
	if !pc.ShieldActive {
		t.Fatal("shield grant not applied")
	}

	// First hit absorbed, second lands
	h.spawnProjectile(h.playerPos(), 15, component.OwnerEnemy)
	h.tick()
	hp, _ := h.world().Components.Health.GetComponent(player)
	if hp.Current != parameter.PlayerMaxHealth {
		t.Errorf("shielded hit reduced health to %d", hp.Current)
	}

	h.spawnProjectile(h.playerPos(), 15, component.OwnerEnemy)
	h.tick()
	hp, _ = h.world().Components.Health.GetComponent(player)
	if hp.Current != parameter.PlayerMaxHealth-15 {
		t.Errorf("post-shield hit health = %d, want %d", hp.Current, parameter.PlayerMaxHealth-15)
	}
}
