package system

import (
	"sync/atomic"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// PlayerSystem owns mutation of player state: damage application with the
// shield absorb, pickup acceptance, and level-scoped grant expiry.
type PlayerSystem struct {
	world   *engine.World
	enabled bool
	dead    bool

	// Telemetry
	healthGauge *atomic.Int64
	powerGauge  *atomic.Int64
	speedGauge  *atomic.Int64
	xpGauge     *atomic.Int64
}

func NewPlayerSystem(world *engine.World) *PlayerSystem {
	return &PlayerSystem{
		world:   world,
		enabled: true,
	}
}

func (s *PlayerSystem) Init() {
	s.dead = false

	st := s.world.Resources.Status
	s.healthGauge = st.Ints.Get("player.health")
	s.powerGauge = st.Ints.Get("player.power_level")
	s.speedGauge = st.Ints.Get("player.speed_level")
	s.xpGauge = st.Ints.Get("player.xp")
	s.healthGauge.Store(parameter.PlayerMaxHealth)
	s.powerGauge.Store(0)
	s.speedGauge.Store(0)
	s.xpGauge.Store(0)
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventPlayerDamageRequest,
		event.EventPickupTouched,
		event.EventLevelAdvance,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventPlayerDamageRequest:
		if p, ok := ev.Payload.(*event.PlayerDamagePayload); ok {
			s.applyDamage(p)
		}
	case event.EventPickupTouched:
		if p, ok := ev.Payload.(*event.PickupTouchedPayload); ok {
			s.attemptCollection(p)
		}
	case event.EventLevelAdvance:
		s.expireLevelGrants()
	}
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}
	player := s.world.Resources.Player.Entity
	if pc, ok := s.world.Components.Player.GetComponent(player); ok {
		s.powerGauge.Store(int64(pc.PowerLevel))
		s.speedGauge.Store(int64(pc.SpeedLevel))
		s.xpGauge.Store(int64(pc.XP))
	}
	if hp, ok := s.world.Components.Health.GetComponent(player); ok {
		s.healthGauge.Store(int64(hp.Current))
	}
}

// applyDamage runs the absorb chain: invulnerability swallows the hit,
// an active shield absorbs exactly one and clears, otherwise health drops
// and a damaged event fires for the multiplier reset and screen shake.
func (s *PlayerSystem) applyDamage(p *event.PlayerDamagePayload) {
	if s.dead || s.world.Resources.Game.Phase() != engine.PhasePlaying {
		return
	}

	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok || pc.Invulnerable {
		return
	}

	if pc.ShieldActive {
		pc.ShieldActive = false
		s.world.Components.Player.SetComponent(player, pc)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})
		return
	}

	hp, ok := s.world.Components.Health.GetComponent(player)
	if !ok {
		return
	}
	hp.Current -= p.Amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	s.world.Components.Health.SetComponent(player, hp)
	s.world.Resources.Stats.DamageTaken.Add(int64(p.Amount))

	s.world.PushEvent(event.EventPlayerDamaged, p)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})
	s.world.PushEvent(event.EventScreenShakeRequest, &event.ScreenShakePayload{Magnitude: 0.5})

	if hp.Depleted() && !s.dead {
		s.dead = true
		s.world.PushEvent(event.EventPlayerDied, nil)
	}
}

// attemptCollection runs the per-kind acceptance test. Capped upgrades at
// max are rejected with an at-max feedback path and the pickup remains in
// the world; everything else consumes the pickup.
func (s *PlayerSystem) attemptCollection(p *event.PickupTouchedPayload) {
	// Stale touch from an earlier pass this frame
	if !s.world.Components.Pickup.HasEntity(p.Entity) {
		return
	}

	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok {
		return
	}

	accepted := false
	switch p.Kind {
	case component.PickupPowerUp:
		if pc.PowerLevel < parameter.PowerLevelMax {
			pc.PowerLevel++
			accepted = true
		}
	case component.PickupSpeedUp:
		if pc.SpeedLevel < parameter.SpeedLevelMax {
			pc.SpeedLevel++
			accepted = true
		}
	case component.PickupMedPack:
		// At full health the med-pack is rejected like a capped upgrade
		if hp, ok := s.world.Components.Health.GetComponent(player); ok && hp.Current < hp.Max {
			hp.Current += parameter.MedPackHealAmount
			if hp.Current > hp.Max {
				hp.Current = hp.Max
			}
			s.world.Components.Health.SetComponent(player, hp)
			accepted = true
		}
	case component.PickupShield:
		pc.ShieldActive = true
		accepted = true
	case component.PickupInvulnerable:
		pc.Invulnerable = true
		accepted = true
	}

	if !accepted {
		s.world.PushEvent(event.EventPickupDenied, &event.PickupResultPayload{Kind: p.Kind})
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDenied})
		return
	}

	s.world.Components.Player.SetComponent(player, pc)
	event.EmitDeathOne(s.world.EventQueue(), p.Entity, true, s.world.FrameNumber())
	s.world.PushEvent(event.EventPickupCollected, &event.PickupResultPayload{Kind: p.Kind})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundPickup})
}

// expireLevelGrants clears the invulnerable grant on level advance; the
// grant is scoped to the level it was collected in
func (s *PlayerSystem) expireLevelGrants() {
	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok || !pc.Invulnerable {
		return
	}
	pc.Invulnerable = false
	s.world.Components.Player.SetComponent(player, pc)
}
