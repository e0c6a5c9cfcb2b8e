package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/status"
	"github.com/lixenwraith/datastorm/vmath"
)

// GameContext owns the ECS world, the frame clock, and event routing.
// The host calls Advance once per rendered frame; everything the core does
// happens synchronously inside that call.
type GameContext struct {
	World *World
	Clock *PausableClock

	eventQueue *event.EventQueue
	handlers   map[event.EventType][]System

	FrameNumber atomic.Int64
}

// NewGameContext creates a context with an initialized world and resources
func NewGameContext(cfg ConfigResource) *GameContext {
	world := NewWorld()
	clock := NewPausableClock()

	ctx := &GameContext{
		World:      world,
		Clock:      clock,
		eventQueue: event.NewEventQueue(),
		handlers:   make(map[event.EventType][]System),
	}

	world.SetEventMetadata(ctx.eventQueue, &ctx.FrameNumber)

	// Status registry first; other resources may register metrics
	world.Resources.Status = status.NewRegistry()

	world.Resources.Config = &cfg

	world.Resources.Time = &TimeResource{
		GameTime:    clock.Now(),
		SessionTime: clock.Now(),
		DeltaTime:   parameter.GameUpdateInterval,
		FrameNumber: 0,
	}

	world.Resources.Event = &EventQueueResource{Queue: ctx.eventQueue}
	world.Resources.Game = NewGameState()
	world.Resources.Stats = NewGameStats()
	world.Resources.Player = &PlayerResource{}

	ctx.createPlayerEntity()

	return ctx
}

// SetAudio bridges the host audio service into system resources
func (ctx *GameContext) SetAudio(player AudioPlayer) {
	ctx.World.Resources.Audio = player
}

// RegisterSystems adds systems to the world and routes their event types
func (ctx *GameContext) RegisterSystems(systems ...System) {
	for _, s := range systems {
		ctx.World.AddSystem(s)
		for _, t := range s.EventTypes() {
			ctx.handlers[t] = append(ctx.handlers[t], s)
		}
	}
}

// PlayerEntity returns the singleton player entity ID
func (ctx *GameContext) PlayerEntity() core.Entity {
	return ctx.World.Resources.Player.Entity
}

// Advance steps the simulation by dt: time update, systems in priority
// order, then bounded event dispatch so same-frame cascades (collision ->
// kill -> score -> lifecycle) settle before the call returns.
func (ctx *GameContext) Advance(dt time.Duration) {
	if ctx.Clock.IsPaused() || dt <= 0 {
		return
	}
	if dt > parameter.MaxDeltaTime {
		dt = parameter.MaxDeltaTime
	}

	frame := ctx.FrameNumber.Add(1)
	tr := ctx.World.Resources.Time

	ctx.World.RunSafe(func() {
		tr.Update(tr.GameTime.Add(dt), ctx.Clock.Now(), dt, frame)
		ctx.World.UpdateLocked()
		ctx.dispatchPending()
	})
}

// Pause halts the simulation: Advance becomes a no-op and the clock
// stops accumulating session time
func (ctx *GameContext) Pause() { ctx.Clock.Pause() }

// Resume continues the simulation after a pause
func (ctx *GameContext) Resume() { ctx.Clock.Resume() }

// TogglePause flips the pause state and reports the new state
func (ctx *GameContext) TogglePause() bool {
	if ctx.Clock.IsPaused() {
		ctx.Clock.Resume()
		return false
	}
	ctx.Clock.Pause()
	return true
}

// Paused reports whether the simulation is paused
func (ctx *GameContext) Paused() bool { return ctx.Clock.IsPaused() }

// dispatchPending drains the queue and routes events to registered
// handlers. Handlers may emit further events; passes are bounded so a
// cyclic emitter cannot wedge the frame.
func (ctx *GameContext) dispatchPending() {
	for pass := 0; pass < parameter.EventDispatchMaxPasses; pass++ {
		events := ctx.eventQueue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			for _, sys := range ctx.handlers[ev.Type] {
				sys.HandleEvent(ev)
			}
		}
	}
}

// StartMatch moves the lifecycle out of the start screen
func (ctx *GameContext) StartMatch() bool {
	return ctx.World.Resources.Game.TransitionPhase(PhasePlaying, ctx.World.Resources.Time.GameTime)
}

// ResetMatch clears the world, resets stats and lifecycle, recreates the
// player, and notifies all systems via EventGameReset.
func (ctx *GameContext) ResetMatch() {
	ctx.World.RunSafe(func() {
		ctx.World.Clear()
		ctx.World.Resources.Stats.Reset()
		ctx.World.Resources.Game.Reset()
		ctx.createPlayerEntity()

		ctx.eventQueue.Push(event.GameEvent{
			Type:  event.EventGameReset,
			Frame: ctx.FrameNumber.Load(),
		})
		ctx.dispatchPending()
	})
}

// createPlayerEntity places the player at arena center with full health
func (ctx *GameContext) createPlayerEntity() {
	w := ctx.World
	cfg := w.Resources.Config

	e := w.CreateEntity()
	w.Positions.SetPosition(e, vmath.Vec2{X: cfg.ArenaWidth / 2, Y: cfg.ArenaHeight / 2})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: parameter.PlayerRadius})
	w.Components.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.PlayerMaxHealth,
		Max:     parameter.PlayerMaxHealth,
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{})
	w.Components.Player.SetComponent(e, component.PlayerComponent{})

	w.Resources.Player.Entity = e
}
