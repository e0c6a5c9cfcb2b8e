package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/parameter"
)

func newSpawnHarness() *harness {
	return newHarness(
		func(w *engine.World) engine.System { return NewSpawnSystem(w) },
	)
}

func TestEnemiesSpawnOnInterval(t *testing.T) {
	h := newSpawnHarness()

	h.step(parameter.EnemySpawnInterval + testStep)
	if got := h.world().Components.Enemy.CountEntities(); got != 1 {
		t.Errorf("enemies after one interval = %d, want 1", got)
	}

	h.step(parameter.EnemySpawnInterval)
	if got := h.world().Components.Enemy.CountEntities(); got != 2 {
		t.Errorf("enemies after two intervals = %d, want 2", got)
	}
}

func TestSpawnStopsWhenDisabled(t *testing.T) {
	h := newSpawnHarness()

	h.world().Resources.Game.SetSpawnEnabled(false)
	h.step(5 * parameter.EnemySpawnInterval)

	if got := h.world().Components.Enemy.CountEntities(); got != 0 {
		t.Errorf("enemies spawned while disabled = %d, want 0", got)
	}
}

func TestEnemyCapHolds(t *testing.T) {
	h := newSpawnHarness()

	// Nothing removes enemies in this harness; the cap is the ceiling
	h.step(time.Duration(parameter.EnemyMaxAlive+10) * parameter.EnemySpawnInterval)

	if got := h.world().Components.Enemy.CountEntities(); got > parameter.EnemyMaxAlive {
		t.Errorf("alive enemies = %d, want at most %d", got, parameter.EnemyMaxAlive)
	}
}

func TestOnlyFirstTypeSpawnsAtLevelZero(t *testing.T) {
	h := newSpawnHarness()

	h.step(4 * parameter.EnemySpawnInterval)

	for _, e := range h.world().Components.Enemy.GetAllEntities() {
		ec, _ := h.world().Components.Enemy.GetComponent(e)
		if ec.Type != 0 {
			t.Errorf("level 0 spawned enemy type %v, want only the first type", ec.Type)
		}
	}
}
