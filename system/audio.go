package system

import (
	"sync/atomic"

	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// AudioSystem bridges sound request events to the host audio service.
// Observes only; runs last and never mutates game state. A missing or
// muted service drops requests silently.
type AudioSystem struct {
	world   *engine.World
	enabled bool

	// Telemetry
	played  *atomic.Int64
	dropped *atomic.Int64
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{
		world:   world,
		enabled: true,
	}
}

func (s *AudioSystem) Init() {
	st := s.world.Resources.Status
	s.played = st.Ints.Get("audio.played")
	s.dropped = st.Ints.Get("audio.dropped")
	s.played.Store(0)
	s.dropped.Store(0)
}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSoundRequest:
		p, ok := ev.Payload.(*event.SoundRequestPayload)
		if !ok {
			return
		}
		audio := s.world.Resources.Audio
		if audio == nil || !audio.Play(p.Sound) {
			s.dropped.Add(1)
			return
		}
		s.played.Add(1)
	}
}

func (s *AudioSystem) Update() {}
