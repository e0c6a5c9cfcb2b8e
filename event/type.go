package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restarts a match
	// Trigger: Host (restart key), lifecycle on new game
	// Consumer: All systems (session state reset) | Payload: nil
	EventGameReset EventType = iota + 1

	// EventDeathOne requests destruction of a single entity
	// Trigger: Any system; hot path uses the bit-packed emit helper
	// Consumer: DeathSystem | Payload: uint64 (packed) or core.Entity
	EventDeathOne

	// EventDeathBatch requests destruction of multiple entities
	// Trigger: Lifecycle cleanup sweeps
	// Consumer: DeathSystem | Payload: *DeathRequestPayload (pooled)
	EventDeathBatch

	// EventTimerStart schedules a delayed death for an entity
	// Trigger: Kill handling (death animation), clearing stagger
	// Consumer: TimerSystem | Payload: *TimerStartPayload
	EventTimerStart

	// === Combat Event ===

	// EventEnemyKilled signals an enemy's death was recognized for the
	// first time; emitted at most once per enemy by the kill-tracked flag
	// Trigger: CollisionSystem (shot kills), DeathSystem (forced kills)
	// Consumer: ScoreSystem, SpawnSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamageRequest asks the player system to apply damage
	// Trigger: CollisionSystem passes 1-3
	// Consumer: PlayerSystem | Payload: *PlayerDamagePayload
	EventPlayerDamageRequest

	// EventPlayerDamaged signals damage was actually applied (not absorbed)
	// Trigger: PlayerSystem
	// Consumer: ScoreSystem (multiplier reset), host (shake) | Payload: *PlayerDamagePayload
	EventPlayerDamaged

	// EventPlayerDied signals player health reached zero
	// Trigger: PlayerSystem
	// Consumer: LifecycleSystem | Payload: nil
	EventPlayerDied

	// EventMultiplierLost signals a multiplier reset from >= the loss
	// threshold, distinct from ordinary expiration
	// Trigger: ScoreSystem on damage reset
	// Consumer: AudioSystem, host UI | Payload: *MultiplierLostPayload
	EventMultiplierLost

	// === Pickup Event ===

	// EventPickupTouched signals player overlap with a pickup
	// Trigger: CollisionSystem pass 5
	// Consumer: PlayerSystem (acceptance test) | Payload: *PickupTouchedPayload
	EventPickupTouched

	// EventPickupCollected signals a pickup was accepted and consumed
	// Trigger: PlayerSystem
	// Consumer: AudioSystem, SpawnSystem | Payload: *PickupResultPayload
	EventPickupCollected

	// EventPickupDenied signals an at-max rejection; the pickup remains
	// Trigger: PlayerSystem
	// Consumer: AudioSystem, host UI | Payload: *PickupResultPayload
	EventPickupDenied

	// === Lifecycle Event ===

	// EventLevelCompleted signals entry into the displaying stage
	// Trigger: LifecycleSystem on clearing expiry
	// Consumer: AudioSystem, host UI | Payload: *LevelPayload
	EventLevelCompleted

	// EventLevelAdvance signals the level index moved and play resumed
	// Trigger: LifecycleSystem on complete stage
	// Consumer: SpawnSystem (manager reset), PlayerSystem (grant scope) | Payload: *LevelPayload
	EventLevelAdvance

	// EventGameCompleted signals the final level was cleared
	// Trigger: LifecycleSystem short-circuit
	// Consumer: Host UI | Payload: nil
	EventGameCompleted

	// EventGameOver signals the death animation finished
	// Trigger: LifecycleSystem
	// Consumer: Host UI | Payload: nil
	EventGameOver

	// === Presentation Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Any system requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventScreenShakeRequest requests a cosmetic camera shake
	// Trigger: CollisionSystem, LifecycleSystem
	// Consumer: Host renderer | Payload: *ScreenShakePayload
	EventScreenShakeRequest
)
