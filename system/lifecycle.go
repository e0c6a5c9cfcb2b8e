package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/status"
	"github.com/lixenwraith/datastorm/vmath"
)

// LifecycleSystem drives the match phase machine: the playing clock, the
// player death sequence, and the level transition with its clearing,
// displaying, and completion stages. All timing accumulates frame delta
// only, so pausing the host loop pauses every transition.
type LifecycleSystem struct {
	world   *engine.World
	enabled bool
	rand    *vmath.FastRand

	levelTimer      core.Countdown
	clearingTimer   core.Countdown
	displayingTimer core.Countdown
	deathTimer      core.Countdown

	// Telemetry
	levelGauge *atomic.Int64
	phaseLabel *status.AtomicString
}

func NewLifecycleSystem(world *engine.World) *LifecycleSystem {
	return &LifecycleSystem{
		world:   world,
		enabled: true,
		rand:    vmath.NewFastRand(world.Resources.Config.Seed),
	}
}

func (s *LifecycleSystem) Init() {
	s.levelTimer = core.NewCountdown(parameter.LevelDuration)
	s.clearingTimer = core.NewCountdown(parameter.ClearingDuration)
	s.displayingTimer = core.NewCountdown(parameter.DisplayingDuration)
	s.deathTimer = core.NewCountdown(parameter.DeathSequenceDuration)

	st := s.world.Resources.Status
	s.levelGauge = st.Ints.Get("lifecycle.level")
	s.phaseLabel = st.Strings.Get("lifecycle.phase")
	s.levelGauge.Store(0)
	s.phaseLabel.Store(s.world.Resources.Game.Phase().String())
}

func (s *LifecycleSystem) Name() string { return "lifecycle" }

func (s *LifecycleSystem) Priority() int { return parameter.PriorityLifecycle }

func (s *LifecycleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventPlayerDied,
	}
}

func (s *LifecycleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventPlayerDied:
		s.onPlayerDied()
	}
}

func (s *LifecycleSystem) Update() {
	if !s.enabled {
		return
	}

	game := s.world.Resources.Game
	dt := s.world.Resources.Time.DeltaTime

	switch game.Phase() {
	case engine.PhasePlaying:
		s.world.Resources.Stats.AddSurvival(dt)
		if !s.levelTimer.Active() {
			s.levelTimer.Start()
		}
		if s.levelTimer.Advance(dt) {
			s.beginLevelTransition()
		}

	case engine.PhaseLevelTransition:
		s.updateTransition(dt)

	case engine.PhaseDeathAnimation:
		if s.deathTimer.Advance(dt) {
			if game.TransitionPhase(engine.PhaseGameOver, s.world.Resources.Time.GameTime) {
				s.world.PushEvent(event.EventGameOver, nil)
			}
		}
	}

	s.phaseLabel.Store(game.Phase().String())
}

// onPlayerDied enters the death sequence. The validated transition makes a
// re-raised trigger a silent no-op while the animation is already playing.
func (s *LifecycleSystem) onPlayerDied() {
	game := s.world.Resources.Game
	if !game.TransitionPhase(engine.PhaseDeathAnimation, s.world.Resources.Time.GameTime) {
		return
	}
	s.levelTimer.Stop()
	s.deathTimer.Start()
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundPlayerDeath})
	s.world.PushEvent(event.EventScreenShakeRequest, &event.ScreenShakePayload{Magnitude: 1.0})
}

// beginLevelTransition stops spawning and schedules a randomly staggered
// forced death for every alive enemy, so the clearing reads as organic
// rather than simultaneous. The clearing stage has a fixed duration
// independent of individual stagger timing.
func (s *LifecycleSystem) beginLevelTransition() {
	game := s.world.Resources.Game
	if !game.TransitionPhase(engine.PhaseLevelTransition, s.world.Resources.Time.GameTime) {
		return
	}

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		ec, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok || !ec.Alive() {
			continue
		}
		s.world.PushEvent(event.EventTimerStart, &event.TimerStartPayload{
			Entity:   e,
			Duration: s.rand.Duration(parameter.ClearingStaggerMax),
			Forced:   true,
		})
	}

	s.clearingTimer.Start()
}

func (s *LifecycleSystem) updateTransition(dt time.Duration) {
	game := s.world.Resources.Game

	switch game.Stage() {
	case engine.StageClearing:
		if s.clearingTimer.Advance(dt) {
			if game.Level() >= parameter.LevelCount-1 {
				// Final level short-circuits past Displaying
				game.SetGameComplete()
				s.world.PushEvent(event.EventGameCompleted, nil)
				if game.TransitionPhase(engine.PhaseGameOver, s.world.Resources.Time.GameTime) {
					s.world.PushEvent(event.EventGameOver, nil)
				}
				return
			}
			game.AdvanceStage()
			s.displayingTimer.Start()
			s.world.PushEvent(event.EventLevelCompleted, &event.LevelPayload{Level: game.Level()})
			s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundLevelComplete})
		}

	case engine.StageDisplaying:
		if s.displayingTimer.Advance(dt) {
			game.AdvanceStage()
		}

	case engine.StageComplete:
		s.completeTransition()
	}
}

// completeTransition performs the advance cleanup: force-remove anything
// that survived the staggered clearing (defensive, not expected in normal
// operation), advance the level index, and resume play. Level-scoped
// grants and spawn managers reset through EventLevelAdvance.
func (s *LifecycleSystem) completeTransition() {
	game := s.world.Resources.Game

	leftovers := s.world.Components.Enemy.GetAllEntities()
	leftovers = append(leftovers, s.world.Components.Projectile.GetAllEntities()...)
	if len(leftovers) > 0 {
		event.EmitDeathBatch(s.world.EventQueue(), true, leftovers, s.world.FrameNumber())
	}

	level := game.AdvanceLevel()
	s.levelGauge.Store(int64(level))
	s.world.PushEvent(event.EventLevelAdvance, &event.LevelPayload{Level: level})

	if game.TransitionPhase(engine.PhasePlaying, s.world.Resources.Time.GameTime) {
		s.levelTimer.Start()
	}
}
