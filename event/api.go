package event

import "github.com/lixenwraith/datastorm/core"

// deathForcedFlag marks a forced (zero-reward) death in the packed word
const deathForcedFlag = uint64(1) << 48

// EmitDeathOne performs a zero-allocation death request for a single entity.
// Packs the forced flag and ID into a uint64 to bypass heap allocation.
// Entity IDs occupy the low 48 bits.
func EmitDeathOne(q *EventQueue, id core.Entity, forced bool, frame int64) {
	packed := uint64(id) & 0xFFFFFFFFFFFF
	if forced {
		packed |= deathForcedFlag
	}
	q.Push(GameEvent{
		Type:    EventDeathOne,
		Payload: packed,
		Frame:   frame,
	})
}

// UnpackDeathOne decodes a packed single-death request
func UnpackDeathOne(packed uint64) (core.Entity, bool) {
	return core.Entity(packed & 0xFFFFFFFFFFFF), packed&deathForcedFlag != 0
}

// EmitDeathBatch handles batch destruction using the sync.Pool.
// Caller provides a slice; the helper handles acquisition and copying.
func EmitDeathBatch(q *EventQueue, forced bool, entities []core.Entity, frame int64) {
	if len(entities) == 0 {
		return
	}
	p := AcquireDeathRequest(forced)
	p.Entities = append(p.Entities, entities...)
	q.Push(GameEvent{
		Type:    EventDeathBatch,
		Payload: p,
		Frame:   frame,
	})
}
