package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/vmath"
)

func newLifecycleHarness() *harness {
	return newHarness(
		func(w *engine.World) engine.System { return NewScoreSystem(w) },
		func(w *engine.World) engine.System { return NewLifecycleSystem(w) },
		func(w *engine.World) engine.System { return NewPlayerSystem(w) },
		func(w *engine.World) engine.System { return NewTimerSystem(w) },
		func(w *engine.World) engine.System { return NewDeathSystem(w) },
	)
}

func TestClearingRemovesAllEnemiesWithinDuration(t *testing.T) {
	h := newLifecycleHarness()

	for i := 0; i < 10; i++ {
		h.spawnEnemy(component.EnemyDataMite, vmath.Vec2{X: float64(5 + i*8), Y: 10})
	}

	// Survive the level; the transition begins on expiry
	h.step(parameter.LevelDuration + testStep)

	game := h.world().Resources.Game
	if game.Phase() != engine.PhaseLevelTransition {
		t.Fatalf("phase = %v, want level transition", game.Phase())
	}
	if game.Stage() != engine.StageClearing {
		t.Fatalf("stage = %v, want clearing", game.Stage())
	}
	if game.SpawnEnabled() {
		t.Error("spawning must stop when clearing begins")
	}

	// The fixed clearing duration outlasts every staggered death
	h.step(parameter.ClearingDuration + testStep)

	if game.Stage() != engine.StageDisplaying {
		t.Errorf("stage = %v, want displaying", game.Stage())
	}
	if got := h.world().Components.Enemy.CountEntities(); got != 0 {
		t.Errorf("%d enemies remain after clearing, want 0", got)
	}

	// Staggered clearing kills are forced: counted, never scored
	if got := h.stats().Score.Load(); got != 0 {
		t.Errorf("clearing awarded %d points, want 0", got)
	}
	if got := h.stats().Kills(component.EnemyDataMite); got != 10 {
		t.Errorf("clearing kill count = %d, want 10", got)
	}
}

func TestLevelAdvanceClearsInvulnerableGrant(t *testing.T) {
	h := newLifecycleHarness()

	player := h.ctx.PlayerEntity()
	pc, _ := h.world().Components.Player.GetComponent(player)
	pc.Invulnerable = true
	h.world().Components.Player.SetComponent(player, pc)

	// Run the full transition: clearing, displaying, advance
	h.step(parameter.LevelDuration + parameter.ClearingDuration + parameter.DisplayingDuration + 5*testStep)

	game := h.world().Resources.Game
	if game.Phase() != engine.PhasePlaying {
		t.Fatalf("phase = %v, want playing in next level", game.Phase())
	}
	if game.Level() != 1 {
		t.Fatalf("level = %d, want 1", game.Level())
	}

	pc, _ = h.world().Components.Player.GetComponent(player)
	if pc.Invulnerable {
		t.Error("invulnerable grant must not carry into the next level")
	}
}

func TestPlayerDeathSequenceToGameOver(t *testing.T) {
	h := newLifecycleHarness()

	h.world().PushEvent(event.EventPlayerDamageRequest, &event.PlayerDamagePayload{
		Amount: parameter.PlayerMaxHealth,
	})
	h.tick()

	game := h.world().Resources.Game
	if game.Phase() != engine.PhaseDeathAnimation {
		t.Fatalf("phase = %v, want death animation", game.Phase())
	}

	// Partway through the animation nothing transitions
	h.step(parameter.DeathSequenceDuration / 2)
	if game.Phase() != engine.PhaseDeathAnimation {
		t.Errorf("phase = %v mid-animation, want death animation", game.Phase())
	}

	h.step(parameter.DeathSequenceDuration)
	if game.Phase() != engine.PhaseGameOver {
		t.Errorf("phase = %v after animation, want game over", game.Phase())
	}
}

func TestDeathTriggerReentrancyIsNoOp(t *testing.T) {
	h := newLifecycleHarness()

	h.world().PushEvent(event.EventPlayerDied, nil)
	h.tick()
	game := h.world().Resources.Game
	if game.Phase() != engine.PhaseDeathAnimation {
		t.Fatalf("phase = %v, want death animation", game.Phase())
	}

	// Re-raised trigger while the animation plays must not restart it
	h.step(parameter.DeathSequenceDuration - 200*time.Millisecond)
	h.world().PushEvent(event.EventPlayerDied, nil)
	h.step(400 * time.Millisecond)

	if game.Phase() != engine.PhaseGameOver {
		t.Errorf("phase = %v, want game over on original schedule", game.Phase())
	}
}

func TestFinalLevelShortCircuitsToGameComplete(t *testing.T) {
	h := newLifecycleHarness()
	game := h.world().Resources.Game

	// Fast-forward the level index to the final level
	for game.Level() < parameter.LevelCount-1 {
		game.AdvanceLevel()
	}

	h.step(parameter.LevelDuration + parameter.ClearingDuration + 5*testStep)

	if game.Phase() != engine.PhaseGameOver {
		t.Errorf("phase = %v, want game over", game.Phase())
	}
	if !game.GameComplete() {
		t.Error("clearing the final level must mark the game complete")
	}
}

func TestSurvivalTimeAccumulatesOnlyWhilePlaying(t *testing.T) {
	h := newLifecycleHarness()

	h.step(2 * time.Second)
	played := h.stats().Survival()
	if played < 1900*time.Millisecond || played > 2100*time.Millisecond {
		t.Fatalf("survival = %v, want about 2s", played)
	}

	h.world().PushEvent(event.EventPlayerDied, nil)
	h.tick()
	h.step(1 * time.Second)

	after := h.stats().Survival()
	if after-played > 50*time.Millisecond {
		t.Errorf("survival advanced %v during death animation, want none", after-played)
	}
}
