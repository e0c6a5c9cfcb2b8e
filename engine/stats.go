package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/datastorm/component"
)

// GameStats accumulates match statistics. Mutated only by the score and
// lifecycle systems; everything else reads snapshots for presentation.
type GameStats struct {
	Score       atomic.Int64
	DamageTaken atomic.Int64

	HighestMultiplier atomic.Int64
	HighestCombo      atomic.Int64

	// SurvivalNanos is accumulated Playing-phase time
	SurvivalNanos atomic.Int64

	kills [component.EnemyTypeCount]atomic.Int64
}

// NewGameStats creates a zeroed accumulator
func NewGameStats() *GameStats {
	s := &GameStats{}
	s.HighestMultiplier.Store(1)
	return s
}

// AddScore adds points and returns the running total
func (s *GameStats) AddScore(points int64) int64 {
	return s.Score.Add(points)
}

// RecordKill increments the per-type kill counter.
// Forced and shot kills both count; only points differ.
func (s *GameStats) RecordKill(t component.EnemyType) {
	if t < 0 || t >= component.EnemyTypeCount {
		return
	}
	s.kills[t].Add(1)
}

// Kills returns the kill count for one enemy type
func (s *GameStats) Kills(t component.EnemyType) int64 {
	if t < 0 || t >= component.EnemyTypeCount {
		return 0
	}
	return s.kills[t].Load()
}

// TotalKills sums kill counts across all types
func (s *GameStats) TotalKills() int64 {
	var total int64
	for i := range s.kills {
		total += s.kills[i].Load()
	}
	return total
}

// ObserveMultiplier raises the highest-multiplier watermark
func (s *GameStats) ObserveMultiplier(m int) {
	for {
		cur := s.HighestMultiplier.Load()
		if int64(m) <= cur {
			return
		}
		if s.HighestMultiplier.CompareAndSwap(cur, int64(m)) {
			return
		}
	}
}

// ObserveCombo raises the highest-combo watermark
func (s *GameStats) ObserveCombo(c int) {
	for {
		cur := s.HighestCombo.Load()
		if int64(c) <= cur {
			return
		}
		if s.HighestCombo.CompareAndSwap(cur, int64(c)) {
			return
		}
	}
}

// AddSurvival accumulates Playing-phase time
func (s *GameStats) AddSurvival(dt time.Duration) {
	s.SurvivalNanos.Add(int64(dt))
}

// Survival returns accumulated Playing-phase time
func (s *GameStats) Survival() time.Duration {
	return time.Duration(s.SurvivalNanos.Load())
}

// Reset zeroes the accumulator for a new match
func (s *GameStats) Reset() {
	s.Score.Store(0)
	s.DamageTaken.Store(0)
	s.HighestMultiplier.Store(1)
	s.HighestCombo.Store(0)
	s.SurvivalNanos.Store(0)
	for i := range s.kills {
		s.kills[i].Store(0)
	}
}
