package parameter

import "time"

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity; must be a power of two
	EventQueueSize = 1024

	// EventBufferMask converts a monotonic index into a ring slot
	EventBufferMask = EventQueueSize - 1

	// EventDispatchMaxPasses bounds same-frame event cascades
	// (kill -> score -> sound settles in two; the bound is a safety net)
	EventDispatchMaxPasses = 8
)

// Frame Stepping
const (
	// GameUpdateInterval is the nominal fixed simulation step
	GameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single step after host stalls
	MaxDeltaTime = 100 * time.Millisecond
)
