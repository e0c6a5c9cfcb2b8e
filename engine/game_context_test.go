package engine

import (
	"testing"
	"time"
)

func TestAdvanceIsNoOpWhilePaused(t *testing.T) {
	ctx := NewTestGameContext()
	ctx.StartMatch()

	ctx.Advance(16 * time.Millisecond)
	frame := ctx.FrameNumber.Load()
	gameTime := ctx.World.Resources.Time.GameTime

	ctx.Pause()
	if !ctx.Paused() {
		t.Fatal("context not paused")
	}
	for i := 0; i < 5; i++ {
		ctx.Advance(16 * time.Millisecond)
	}

	if got := ctx.FrameNumber.Load(); got != frame {
		t.Errorf("frame advanced to %d while paused, want %d", got, frame)
	}
	if !ctx.World.Resources.Time.GameTime.Equal(gameTime) {
		t.Error("game time advanced while paused")
	}

	ctx.Resume()
	ctx.Advance(16 * time.Millisecond)
	if got := ctx.FrameNumber.Load(); got != frame+1 {
		t.Errorf("frame after resume = %d, want %d", got, frame+1)
	}
}

func TestTogglePauseReportsState(t *testing.T) {
	ctx := NewTestGameContext()

	if !ctx.TogglePause() {
		t.Error("first toggle must report paused")
	}
	if ctx.TogglePause() {
		t.Error("second toggle must report resumed")
	}
	if ctx.Paused() {
		t.Error("context paused after an even number of toggles")
	}
}

func TestSessionTimeFrozenAcrossPause(t *testing.T) {
	ctx := NewTestGameContext()
	ctx.StartMatch()

	ctx.Advance(16 * time.Millisecond)
	before := ctx.World.Resources.Time.SessionTime

	ctx.Pause()
	time.Sleep(50 * time.Millisecond)
	ctx.Resume()
	ctx.Advance(16 * time.Millisecond)

	after := ctx.World.Resources.Time.SessionTime
	// Only the instants outside the pause land in session time; the
	// paused sleep is excluded entirely
	if after.Sub(before) >= 25*time.Millisecond {
		t.Errorf("session time absorbed the paused span: advanced %v", after.Sub(before))
	}
}
