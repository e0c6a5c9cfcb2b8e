package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/vmath"
)

// SpawnSystem manages enemy and pickup populations. Both spawners run on
// interval countdowns gated by the lifecycle spawn flag, and reset their
// managers on level advance.
type SpawnSystem struct {
	world   *engine.World
	enabled bool
	rand    *vmath.FastRand

	enemyTimer  core.Countdown
	pickupTimer core.Countdown

	// Telemetry
	enemiesAlive *atomic.Int64
	pickupsAlive *atomic.Int64
	enemiesTotal *atomic.Int64
	pickupsTotal *atomic.Int64
}

func NewSpawnSystem(world *engine.World) *SpawnSystem {
	return &SpawnSystem{
		world:   world,
		enabled: true,
		rand:    vmath.NewFastRand(world.Resources.Config.Seed ^ 0x9E3779B97F4A7C15),
	}
}

func (s *SpawnSystem) Init() {
	s.enemyTimer = core.NewCountdown(s.enemyInterval(0))
	s.enemyTimer.Start()
	s.pickupTimer = core.NewCountdown(parameter.PickupSpawnInterval)
	s.pickupTimer.Start()

	st := s.world.Resources.Status
	s.enemiesAlive = st.Ints.Get("spawn.enemies_alive")
	s.pickupsAlive = st.Ints.Get("spawn.pickups_alive")
	s.enemiesTotal = st.Ints.Get("spawn.enemies_total")
	s.pickupsTotal = st.Ints.Get("spawn.pickups_total")
	s.enemiesAlive.Store(0)
	s.pickupsAlive.Store(0)
	s.enemiesTotal.Store(0)
	s.pickupsTotal.Store(0)
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventLevelAdvance,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventLevelAdvance:
		if p, ok := ev.Payload.(*event.LevelPayload); ok {
			s.resetForLevel(p.Level)
		}
	}
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}
	game := s.world.Resources.Game

	s.enemiesAlive.Store(int64(s.world.Components.Enemy.CountEntities()))
	s.pickupsAlive.Store(int64(s.world.Components.Pickup.CountEntities()))

	if game.Phase() != engine.PhasePlaying || !game.SpawnEnabled() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	if s.enemyTimer.Advance(dt) {
		s.enemyTimer.Start()
		if s.world.Components.Enemy.CountEntities() < parameter.EnemyMaxAlive {
			s.spawnEnemy(game.Level())
		}
	}

	if s.pickupTimer.Advance(dt) {
		s.pickupTimer.Start()
		s.spawnPickup()
	}
}

// resetForLevel restarts both spawn managers for a new level; the enemy
// interval tightens per level index
func (s *SpawnSystem) resetForLevel(level int) {
	s.enemyTimer = core.NewCountdown(s.enemyInterval(level))
	s.enemyTimer.Start()
	s.pickupTimer = core.NewCountdown(parameter.PickupSpawnInterval)
	s.pickupTimer.Start()
}

func (s *SpawnSystem) enemyInterval(level int) time.Duration {
	interval := float64(parameter.EnemySpawnInterval)
	for i := 0; i < level; i++ {
		interval *= parameter.EnemySpawnIntervalLevelFactor
	}
	return time.Duration(interval)
}

// spawnEnemy creates one enemy of a level-unlocked type at a random arena
// edge, drifting toward the player
func (s *SpawnSystem) spawnEnemy(level int) {
	unlocked := level + 1
	if unlocked > int(component.EnemyTypeCount) {
		unlocked = int(component.EnemyTypeCount)
	}
	t := component.EnemyType(s.rand.Intn(unlocked))
	row := component.StatsFor(t)

	pos := s.edgePosition()
	target, ok := s.world.Positions.GetPosition(s.world.Resources.Player.Entity)
	if !ok {
		cfg := s.world.Resources.Config
		target = vmath.Vec2{X: cfg.ArenaWidth / 2, Y: cfg.ArenaHeight / 2}
	}
	vel := target.Sub(pos).Normalized().Scale(row.Speed)

	e := s.world.CreateEntity()
	s.world.Positions.SetPosition(e, pos)
	s.world.Components.Enemy.SetComponent(e, component.EnemyComponent{Type: t})
	s.world.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: row.Radius})
	s.world.Components.Health.SetComponent(e, component.HealthComponent{Current: row.MaxHealth, Max: row.MaxHealth})
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{Vel: vel})

	if row.Beam {
		s.world.Components.Beam.SetComponent(e, component.BeamComponent{
			Angle:          s.rand.Range(0, 6.28318530717958647692),
			Damage:         row.ContactDamage,
			Lit:            false,
			PhaseRemaining: parameter.BeamRestDuration,
		})
	}

	s.enemiesTotal.Add(1)
}

// spawnPickup creates one pickup of a random kind at a random interior
// point, respecting the per-kind alive cap
func (s *SpawnSystem) spawnPickup() {
	kind := component.PickupKind(s.rand.Intn(int(component.PickupKindCount)))

	alive := 0
	for _, e := range s.world.Components.Pickup.GetAllEntities() {
		if pk, ok := s.world.Components.Pickup.GetComponent(e); ok && pk.Kind == kind {
			alive++
		}
	}
	if alive >= parameter.PickupMaxAlive {
		return
	}

	cfg := s.world.Resources.Config
	pos := vmath.Vec2{
		X: s.rand.Range(parameter.PickupRadius, cfg.ArenaWidth-parameter.PickupRadius),
		Y: s.rand.Range(parameter.PickupRadius, cfg.ArenaHeight-parameter.PickupRadius),
	}

	e := s.world.CreateEntity()
	s.world.Positions.SetPosition(e, pos)
	s.world.Components.Pickup.SetComponent(e, component.PickupComponent{Kind: kind})
	s.world.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: parameter.PickupRadius})

	s.pickupsTotal.Add(1)
}

// edgePosition picks a random point on one of the four arena edges
func (s *SpawnSystem) edgePosition() vmath.Vec2 {
	cfg := s.world.Resources.Config
	switch s.rand.Intn(4) {
	case 0:
		return vmath.Vec2{X: s.rand.Range(0, cfg.ArenaWidth), Y: 0}
	case 1:
		return vmath.Vec2{X: s.rand.Range(0, cfg.ArenaWidth), Y: cfg.ArenaHeight}
	case 2:
		return vmath.Vec2{X: 0, Y: s.rand.Range(0, cfg.ArenaHeight)}
	default:
		return vmath.Vec2{X: cfg.ArenaWidth, Y: s.rand.Range(0, cfg.ArenaHeight)}
	}
}
