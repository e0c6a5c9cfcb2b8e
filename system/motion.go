package system

import (
	"math"
	"time"

	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// MotionSystem integrates velocities into positions and advances beam
// emitter sweep phases. Pure time integration; steering and firing
// patterns live outside the core.
type MotionSystem struct {
	world   *engine.World
	enabled bool
}

func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{
		world:   world,
		enabled: true,
	}
}

func (s *MotionSystem) Init() {}

func (s *MotionSystem) Name() string { return "motion" }

func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *MotionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update integrates while the simulation is live. Entities keep drifting
// through the level transition so the staggered clearing reads naturally.
func (s *MotionSystem) Update() {
	if !s.enabled {
		return
	}
	phase := s.world.Resources.Game.Phase()
	if phase != engine.PhasePlaying && phase != engine.PhaseLevelTransition {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	dtSec := dt.Seconds()
	cfg := s.world.Resources.Config

	for _, e := range s.world.Components.Kinetic.GetAllEntities() {
		kc, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.world.Positions.GetPosition(e)
		if !ok {
			continue
		}

		pos = pos.Add(kc.Vel.Scale(dtSec))

		// Projectiles leave the arena instead of clamping to its edge
		if s.world.Components.Projectile.HasEntity(e) {
			if pos.X < 0 || pos.X > cfg.ArenaWidth || pos.Y < 0 || pos.Y > cfg.ArenaHeight {
				event.EmitDeathOne(s.world.EventQueue(), e, true, s.world.FrameNumber())
				continue
			}
			s.world.Positions.SetPosition(e, pos)
			continue
		}

		if pos.X < 0 {
			pos.X = 0
		}
		if pos.X > cfg.ArenaWidth {
			pos.X = cfg.ArenaWidth
		}
		if pos.Y < 0 {
			pos.Y = 0
		}
		if pos.Y > cfg.ArenaHeight {
			pos.Y = cfg.ArenaHeight
		}
		s.world.Positions.SetPosition(e, pos)
	}

	s.advanceBeams(dt)
}

// advanceBeams rotates lit beams and toggles the active/rest phase
func (s *MotionSystem) advanceBeams(dt time.Duration) {
	for _, e := range s.world.Components.Beam.GetAllEntities() {
		bc, ok := s.world.Components.Beam.GetComponent(e)
		if !ok {
			continue
		}

		if bc.Lit {
			bc.Angle += parameter.BeamSweepRate * dt.Seconds()
			if bc.Angle > 2*math.Pi {
				bc.Angle -= 2 * math.Pi
			}
		}

		bc.PhaseRemaining -= dt
		if bc.PhaseRemaining <= 0 {
			bc.Lit = !bc.Lit
			if bc.Lit {
				bc.PhaseRemaining = parameter.BeamActiveDuration
			} else {
				bc.PhaseRemaining = parameter.BeamRestDuration
			}
		}

		s.world.Components.Beam.SetComponent(e, bc)
	}
}
