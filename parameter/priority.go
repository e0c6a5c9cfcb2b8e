package parameter

// System Execution Priorities (lower runs first)
// Collision must complete before score decay evaluation, and lifecycle
// evaluation runs after both; death and timers run at the tail of the frame.
const (
	PriorityMotion    = 50
	PriorityCollision = 100
	PriorityScore     = 200
	PriorityLifecycle = 300
	PriorityPlayer    = 400
	PrioritySpawn     = 500
	PriorityTimer     = 850 // After game logic, before Death
	PriorityDeath     = 900
	PriorityAudio     = 950 // Observes, never mutates
)
