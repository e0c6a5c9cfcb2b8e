package event

import (
	"time"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
)

// GameEvent is the unit carried by the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// DeathRequestPayload carries a batch of entities to destroy
type DeathRequestPayload struct {
	Entities []core.Entity
	Forced   bool
}

// TimerStartPayload schedules a delayed death
type TimerStartPayload struct {
	Entity   core.Entity
	Duration time.Duration
	Forced   bool
}

// DamageSource identifies what hurt the player
type DamageSource int

const (
	DamageSourceContact DamageSource = iota
	DamageSourceProjectile
	DamageSourceBeam
)

// PlayerDamagePayload carries a damage amount toward or from the player
type PlayerDamagePayload struct {
	Amount int
	Source DamageSource
}

// EnemyKilledPayload reports a recognized enemy death.
// Forced kills (player contact, level clearing) yield effects and kill
// counts but never kill points.
type EnemyKilledPayload struct {
	Entity core.Entity
	Type   component.EnemyType
	Forced bool
}

// MultiplierLostPayload reports the multiplier value at a damage reset
type MultiplierLostPayload struct {
	Multiplier int
}

// PickupTouchedPayload reports player/pickup overlap
type PickupTouchedPayload struct {
	Entity core.Entity
	Kind   component.PickupKind
}

// PickupResultPayload reports the outcome of a collection attempt
type PickupResultPayload struct {
	Kind component.PickupKind
}

// LevelPayload carries a level index (zero-based)
type LevelPayload struct {
	Level int
}

// SoundRequestPayload requests a synthesized effect
type SoundRequestPayload struct {
	Sound core.SoundType
}

// ScreenShakePayload requests cosmetic camera shake
type ScreenShakePayload struct {
	Magnitude float64
}
