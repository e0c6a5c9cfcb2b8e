package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/vmath"
)

func newTimerHarness() *harness {
	return newHarness(
		func(w *engine.World) engine.System { return NewScoreSystem(w) },
		func(w *engine.World) engine.System { return NewTimerSystem(w) },
		func(w *engine.World) engine.System { return NewDeathSystem(w) },
	)
}

func TestScheduledDeathFiresAtExpiry(t *testing.T) {
	h := newTimerHarness()

	e := h.spawnEnemy(component.EnemyDataMite, vmath.Vec2{X: 10, Y: 10})
	h.world().PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   e,
		Duration: 100 * time.Millisecond,
		Forced:   true,
	})

	h.step(80 * time.Millisecond)
	if !h.world().Components.Enemy.HasEntity(e) {
		t.Fatal("entity removed before its timer expired")
	}

	h.step(40 * time.Millisecond)
	if h.world().Components.Enemy.HasEntity(e) {
		t.Error("entity must be removed after timer expiry")
	}

	// Forced late recognition: counted, not scored
	if got := h.stats().Kills(component.EnemyDataMite); got != 1 {
		t.Errorf("kill count = %d, want 1", got)
	}
	if got := h.stats().Score.Load(); got != 0 {
		t.Errorf("score = %d, want 0 for forced death", got)
	}
}

func TestTimerOnRemovedEntityNoOps(t *testing.T) {
	h := newTimerHarness()

	e := h.spawnEnemy(component.EnemyDataMite, vmath.Vec2{X: 10, Y: 10})
	h.world().PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   e,
		Duration: 50 * time.Millisecond,
		Forced:   true,
	})
	h.tick()

	// Removed by other means before the timer fires
	h.world().DestroyEntity(e)

	h.step(100 * time.Millisecond)
	if got := h.stats().Kills(component.EnemyDataMite); got != 0 {
		t.Errorf("kill count = %d for pre-removed entity, want 0", got)
	}
}

func TestTimerScheduleAgainstMissingEntityIgnored(t *testing.T) {
	h := newTimerHarness()

	h.world().PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   9999,
		Duration: 10 * time.Millisecond,
		Forced:   true,
	})
	h.step(50 * time.Millisecond)

	if got := h.world().Components.Timer.CountEntities(); got != 0 {
		t.Errorf("%d timers armed for a missing entity, want 0", got)
	}
}
