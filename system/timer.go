package system

import (
	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// TimerSystem advances per-entity death timers by frame delta and tags
// expired entities for removal. Timers model all delayed deaths: death
// animation holds and the staggered level-clearing kills. Simulation-time
// only, so pausing the host pauses every scheduled death.
type TimerSystem struct {
	world   *engine.World
	enabled bool
}

func NewTimerSystem(world *engine.World) *TimerSystem {
	return &TimerSystem{
		world:   world,
		enabled: true,
	}
}

func (s *TimerSystem) Init() {}

func (s *TimerSystem) Name() string { return "timer" }

func (s *TimerSystem) Priority() int { return parameter.PriorityTimer }

func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventTimerStart,
	}
}

func (s *TimerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventTimerStart:
		if p, ok := ev.Payload.(*event.TimerStartPayload); ok {
			s.schedule(p)
		}
	}
}

// schedule arms a death timer. Scheduling against an entity that is
// already gone is a no-op; the store write would only resurrect a timer
// nothing will ever observe, so presence is checked first.
func (s *TimerSystem) schedule(p *event.TimerStartPayload) {
	if !s.world.Positions.HasEntity(p.Entity) {
		return
	}
	s.world.Components.Timer.SetComponent(p.Entity, component.TimerComponent{
		Remaining: p.Duration,
		Forced:    p.Forced,
	})
}

func (s *TimerSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Timer.GetAllEntities() {
		tc, ok := s.world.Components.Timer.GetComponent(e)
		if !ok {
			continue
		}
		tc.Remaining -= dt
		if tc.Remaining > 0 {
			s.world.Components.Timer.SetComponent(e, tc)
			continue
		}

		s.world.Components.Timer.RemoveEntity(e)
		s.world.Components.Death.SetComponent(e, component.DeathComponent{Forced: tc.Forced})
	}
}
