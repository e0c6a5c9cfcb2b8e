package engine

import (
	"time"

	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/status"
)

// Resource holds singleton game resources, initialized during GameContext
// creation, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Player *PlayerResource
	Game   *GameState
	Stats  *GameStats
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged from host services
	Audio AudioPlayer
}

// TimeResource wraps simulation time for systems.
// Updated by GameContext at the start of each frame; systems only read it.
type TimeResource struct {
	// GameTime is simulation time accumulated from frame deltas
	GameTime time.Time

	// SessionTime is pause-adjusted wall time from the pausable clock;
	// paused spans are excluded
	SessionTime time.Time

	// DeltaTime is the duration of the current step
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation).
// Must be called under the world update lock.
func (tr *TimeResource) Update(gameTime, sessionTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.SessionTime = sessionTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource holds static configuration data
type ConfigResource struct {
	ArenaWidth  float64
	ArenaHeight float64

	// Seed feeds per-system RNGs; a fixed seed gives deterministic runs
	Seed uint64
}

// PlayerResource holds the singleton player entity reference
type PlayerResource struct {
	Entity core.Entity
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer is the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}
