package engine

import "github.com/lixenwraith/datastorm/event"

// System is the interface all simulation systems implement.
// Update runs once per frame in Priority order (lower first); HandleEvent
// receives only the types declared by EventTypes.
type System interface {
	// Init resets session state for a new match
	Init()

	// Name returns the registry name used for telemetry keys
	Name() string

	// Priority orders Update calls; lower values run first
	Priority() int

	// EventTypes lists the events routed to HandleEvent
	EventTypes() []event.EventType

	// HandleEvent processes one dispatched event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by the frame's delta time
	Update()
}
