package engine

import (
	"sync"
	"time"
)

// GamePhase is the coarse match state
type GamePhase int

const (
	PhaseStartScreen GamePhase = iota
	PhasePlaying
	PhaseDeathAnimation
	PhaseGameOver
	PhaseLevelTransition
)

// String returns the phase name for telemetry
func (p GamePhase) String() string {
	switch p {
	case PhaseStartScreen:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseDeathAnimation:
		return "death"
	case PhaseGameOver:
		return "gameover"
	case PhaseLevelTransition:
		return "transition"
	default:
		return "unknown"
	}
}

// TransitionStage is the level-transition sub-state
type TransitionStage int

const (
	StageNone TransitionStage = iota
	StageClearing
	StageDisplaying
	StageComplete
)

// GameState centralizes match lifecycle state with validated transitions.
// Exactly one top-level phase is active; collision and multiplier decay are
// only evaluated while Playing.
type GameState struct {
	mu sync.RWMutex

	currentPhase   GamePhase
	stage          TransitionStage
	phaseStartTime time.Time

	level        int
	spawnEnabled bool
	gameComplete bool
}

// NewGameState creates a state machine at the start screen
func NewGameState() *GameState {
	return &GameState{
		currentPhase: PhaseStartScreen,
		stage:        StageNone,
		spawnEnabled: false,
	}
}

// phaseTransitions is the validity map for top-level transitions
var phaseTransitions = map[GamePhase][]GamePhase{
	PhaseStartScreen:     {PhasePlaying},
	PhasePlaying:         {PhaseDeathAnimation, PhaseLevelTransition},
	PhaseDeathAnimation:  {PhaseGameOver},
	PhaseGameOver:        {PhasePlaying},
	PhaseLevelTransition: {PhasePlaying, PhaseGameOver},
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range phaseTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts a validated transition.
// Returns false on invalid transitions, which makes re-entrant triggers
// (a condition re-evaluated every frame) a silent no-op.
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.CanTransition(gs.currentPhase, to) {
		return false
	}

	gs.currentPhase = to
	gs.phaseStartTime = now

	switch to {
	case PhaseLevelTransition:
		gs.stage = StageClearing
		gs.spawnEnabled = false
	case PhaseDeathAnimation:
		gs.spawnEnabled = false
	case PhasePlaying:
		gs.stage = StageNone
		gs.spawnEnabled = true
	default:
		gs.stage = StageNone
	}
	return true
}

// AdvanceStage moves the transition sub-state forward.
// Only Clearing -> Displaying -> Complete is valid; anything else no-ops.
func (gs *GameState) AdvanceStage() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.currentPhase != PhaseLevelTransition {
		return false
	}
	switch gs.stage {
	case StageClearing:
		gs.stage = StageDisplaying
	case StageDisplaying:
		gs.stage = StageComplete
	default:
		return false
	}
	return true
}

// Phase returns the current top-level phase
func (gs *GameState) Phase() GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.currentPhase
}

// Stage returns the current transition sub-state
func (gs *GameState) Stage() TransitionStage {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.stage
}

// Level returns the zero-based level index
func (gs *GameState) Level() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.level
}

// AdvanceLevel increments the level index and returns the new value
func (gs *GameState) AdvanceLevel() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.level++
	return gs.level
}

// SpawnEnabled reports whether spawning is active
func (gs *GameState) SpawnEnabled() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.spawnEnabled
}

// SetSpawnEnabled toggles spawning
func (gs *GameState) SetSpawnEnabled(enabled bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.spawnEnabled = enabled
}

// SetGameComplete marks the final-level short-circuit outcome
func (gs *GameState) SetGameComplete() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.gameComplete = true
}

// GameComplete reports whether the final level was cleared
func (gs *GameState) GameComplete() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.gameComplete
}

// Reset returns the state machine to a fresh match at level zero
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.currentPhase = PhaseStartScreen
	gs.stage = StageNone
	gs.level = 0
	gs.spawnEnabled = false
	gs.gameComplete = false
}
