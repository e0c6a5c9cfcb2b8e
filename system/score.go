package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/event"
	"github.com/lixenwraith/datastorm/parameter"
)

// ScoreSystem converts kill events into points through the multiplier
// chain, and decays multiplier and combo on inactivity or player damage.
// Multiplier and combo are decoupled counters with independent timers and
// different reset triggers.
type ScoreSystem struct {
	world   *engine.World
	enabled bool

	multiplier   int
	comboCount   int
	lastKillTime time.Time
	comboTimer   core.Countdown

	// Telemetry
	multiplierGauge *atomic.Int64
	comboGauge      *atomic.Int64
	scoreGauge      *atomic.Int64
}

func NewScoreSystem(world *engine.World) *ScoreSystem {
	return &ScoreSystem{
		world:   world,
		enabled: true,
	}
}

func (s *ScoreSystem) Init() {
	s.multiplier = parameter.MultiplierMin
	s.comboCount = 0
	s.lastKillTime = time.Time{}
	s.comboTimer = core.NewCountdown(parameter.ComboWindow)

	st := s.world.Resources.Status
	s.multiplierGauge = st.Ints.Get("score.multiplier")
	s.comboGauge = st.Ints.Get("score.combo")
	s.scoreGauge = st.Ints.Get("score.total")
	s.multiplierGauge.Store(int64(s.multiplier))
	s.comboGauge.Store(0)
	s.scoreGauge.Store(0)
}

func (s *ScoreSystem) Name() string { return "score" }

func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemyKilled,
		event.EventPlayerDamaged,
	}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.onKill(p)
		}
	case event.EventPlayerDamaged:
		s.onPlayerDamaged()
	}
}

// Update runs the per-frame decay checks, only while Playing. It executes
// before this frame's kill events dispatch, so an expired streak resets
// before the kill that follows it is awarded.
func (s *ScoreSystem) Update() {
	if !s.enabled || s.world.Resources.Game.Phase() != engine.PhasePlaying {
		return
	}

	now := s.world.Resources.Time.GameTime
	dt := s.world.Resources.Time.DeltaTime

	// Inactivity is the sole non-damage path by which multiplier decays
	if !s.lastKillTime.IsZero() &&
		now.Sub(s.lastKillTime) > parameter.MultiplierDecayDuration &&
		s.multiplier > parameter.MultiplierMin {
		s.multiplier = parameter.MultiplierMin
		s.multiplierGauge.Store(int64(s.multiplier))
	}

	if s.comboTimer.Advance(dt) {
		s.comboCount = 0
		s.comboGauge.Store(0)
	}
}

// onKill awards points through the chain rules. Forced kills (player
// contact, level clearing) count toward kill statistics and XP-free death
// effects but never the points path.
func (s *ScoreSystem) onKill(p *event.EnemyKilledPayload) {
	stats := s.world.Resources.Stats
	stats.RecordKill(p.Type)

	if p.Forced {
		return
	}

	now := s.world.Resources.Time.GameTime
	row := component.StatsFor(p.Type)

	// The very first kill of a run never chains; a chain needs a previous
	// kill to compare against. Missing the window leaves the multiplier
	// unchanged rather than resetting it.
	if !s.lastKillTime.IsZero() && now.Sub(s.lastKillTime) <= parameter.KillChainWindow {
		if s.multiplier < parameter.MultiplierMax {
			s.multiplier++
		}
	}

	points := row.BasePoints * int64(s.multiplier)
	total := stats.AddScore(points)
	stats.ObserveMultiplier(s.multiplier)

	s.comboCount++
	s.comboTimer.Start()
	stats.ObserveCombo(s.comboCount)

	s.lastKillTime = now
	s.grantXP(row.XP)

	s.multiplierGauge.Store(int64(s.multiplier))
	s.comboGauge.Store(int64(s.comboCount))
	s.scoreGauge.Store(total)
}

// onPlayerDamaged resets multiplier and combo immediately, regardless of
// timer state. A reset from at or above the loss threshold surfaces a
// distinct event for presentation.
func (s *ScoreSystem) onPlayerDamaged() {
	lost := s.multiplier
	s.multiplier = parameter.MultiplierMin
	s.comboCount = 0
	s.comboTimer.Stop()

	s.multiplierGauge.Store(int64(s.multiplier))
	s.comboGauge.Store(0)

	if lost >= parameter.MultiplierLostThreshold {
		s.world.PushEvent(event.EventMultiplierLost, &event.MultiplierLostPayload{Multiplier: lost})
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundMultiplierLost})
	}
}

// grantXP credits the player for a scored kill
func (s *ScoreSystem) grantXP(xp int) {
	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok {
		return
	}
	pc.XP += xp
	s.world.Components.Player.SetComponent(player, pc)
}

// Multiplier exposes the current multiplier for presentation
func (s *ScoreSystem) Multiplier() int { return s.multiplier }

// Combo exposes the current combo count for presentation
func (s *ScoreSystem) Combo() int { return s.comboCount }
