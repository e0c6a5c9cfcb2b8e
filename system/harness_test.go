package system

import (
	"sync"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/vmath"
)

const testStep = 16 * time.Millisecond

// fakeAudio records played sounds for assertions
type fakeAudio struct {
	mu     sync.Mutex
	played []core.SoundType
}

func (f *fakeAudio) Play(st core.SoundType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, st)
	return true
}

func (f *fakeAudio) ToggleMute() bool { return true }
func (f *fakeAudio) IsMuted() bool    { return false }

func (f *fakeAudio) count(st core.SoundType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.played {
		if s == st {
			n++
		}
	}
	return n
}

// harness drives a context with a chosen system subset at a fixed step
type harness struct {
	ctx   *engine.GameContext
	audio *fakeAudio
}

func newHarness(build ...func(*engine.World) engine.System) *harness {
	ctx := engine.NewTestGameContext()
	h := &harness{ctx: ctx, audio: &fakeAudio{}}
	ctx.SetAudio(h.audio)

	systems := make([]engine.System, 0, len(build)+1)
	for _, b := range build {
		systems = append(systems, b(ctx.World))
	}
	systems = append(systems, NewAudioSystem(ctx.World))
	ctx.RegisterSystems(systems...)
	for _, s := range systems {
		s.Init()
	}

	ctx.StartMatch()
	return h
}

// step advances simulation time in fixed increments
func (h *harness) step(d time.Duration) {
	for d > 0 {
		dt := testStep
		if d < dt {
			dt = d
		}
		h.ctx.Advance(dt)
		d -= dt
	}
}

// tick advances a single minimal frame, enough to dispatch pending events
func (h *harness) tick() {
	h.ctx.Advance(time.Millisecond)
}

func (h *harness) world() *engine.World { return h.ctx.World }

func (h *harness) stats() *engine.GameStats { return h.ctx.World.Resources.Stats }

// spawnEnemy places a static enemy at the given position
func (h *harness) spawnEnemy(t component.EnemyType, pos vmath.Vec2) core.Entity {
	w := h.ctx.World
	row := component.StatsFor(t)

	e := w.CreateEntity()
	w.Positions.SetPosition(e, pos)
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Type: t})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: row.Radius})
	w.Components.Health.SetComponent(e, component.HealthComponent{Current: row.MaxHealth, Max: row.MaxHealth})
	return e
}

// spawnProjectile places a static player projectile
func (h *harness) spawnProjectile(pos vmath.Vec2, damage int, owner component.ProjectileOwner) core.Entity {
	w := h.ctx.World

	e := w.CreateEntity()
	w.Positions.SetPosition(e, pos)
	w.Components.Projectile.SetComponent(e, component.ProjectileComponent{Owner: owner, Damage: damage})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: 0.3})
	return e
}

// spawnPickup places a pickup at the given position
func (h *harness) spawnPickup(kind component.PickupKind, pos vmath.Vec2) core.Entity {
	w := h.ctx.World

	e := w.CreateEntity()
	w.Positions.SetPosition(e, pos)
	w.Components.Pickup.SetComponent(e, component.PickupComponent{Kind: kind})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: 0.8})
	return e
}

// reportKill injects a recognized kill event, as the collision system
// would after depleting an enemy's health
func (h *harness) reportKill(t component.EnemyType, forced bool) {
	h.ctx.World.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Type:   t,
		Forced: forced,
	})
	h.tick()
}

func (h *harness) playerPos() vmath.Vec2 {
	pos, _ := h.ctx.World.Positions.GetPosition(h.ctx.PlayerEntity())
	return pos
}

func newScoreHarness() (*harness, *ScoreSystem) {
	var score *ScoreSystem
	h := newHarness(func(w *engine.World) engine.System {
		score = NewScoreSystem(w)
		return score
	})
	return h, score
}
