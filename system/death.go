package system

import (
	"sync/atomic"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// DeathSystem is the single point of entity removal. It consumes death
// tags and death request events, performs late kill recognition for forced
// deaths, and destroys idempotently: a request against an entity already
// removed by other means is a silent no-op.
type DeathSystem struct {
	world   *engine.World
	enabled bool

	// Telemetry
	destroyed *atomic.Int64
}

func NewDeathSystem(world *engine.World) *DeathSystem {
	return &DeathSystem{
		world:   world,
		enabled: true,
	}
}

func (s *DeathSystem) Init() {
	s.destroyed = s.world.Resources.Status.Ints.Get("death.destroyed")
	s.destroyed.Store(0)
}

func (s *DeathSystem) Name() string { return "death" }

func (s *DeathSystem) Priority() int { return parameter.PriorityDeath }

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventDeathOne,
		event.EventDeathBatch,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventDeathOne:
		switch p := ev.Payload.(type) {
		case uint64:
			e, forced := event.UnpackDeathOne(p)
			s.destroy(e, forced)
		case core.Entity:
			s.destroy(p, false)
		}
	case event.EventDeathBatch:
		if p, ok := ev.Payload.(*event.DeathRequestPayload); ok {
			for _, e := range p.Entities {
				s.destroy(e, p.Forced)
			}
			event.ReleaseDeathRequest(p)
		}
	}
}

// Update sweeps death-tagged entities written by the timer system
func (s *DeathSystem) Update() {
	if !s.enabled {
		return
	}
	for _, e := range s.world.Components.Death.GetAllEntities() {
		dc, ok := s.world.Components.Death.GetComponent(e)
		if !ok {
			continue
		}
		s.destroy(e, dc.Forced)
	}
}

// destroy removes an entity, first recognizing an enemy kill if its death
// was never tracked. The kill-tracked flag keeps recognition one-shot even
// when multiple removal paths race within a frame.
func (s *DeathSystem) destroy(e core.Entity, forced bool) {
	if !s.world.Positions.HasEntity(e) {
		return
	}

	if ec, ok := s.world.Components.Enemy.GetComponent(e); ok && !ec.KillTracked {
		ec.KillTracked = true
		ec.Dying = true
		s.world.Components.Enemy.SetComponent(e, ec)

		row := component.StatsFor(ec.Type)
		s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
			Entity: e,
			Type:   ec.Type,
			Forced: forced,
		})
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: row.DeathSound})
	}

	s.world.DestroyEntity(e)
	s.destroyed.Add(1)
}
