package engine

import (
	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/core"
	"github.com/lixenwraith/datastorm/vmath"
)

// PositionStore specializes Store for positions in continuous arena space.
// Radius overlap queries scan candidate sets directly, so no spatial grid
// is maintained; entity counts stay small enough for linear passes.
type PositionStore struct {
	*Store[component.PositionComponent]
}

// NewPositionStore creates an initialized position store
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store: NewStore[component.PositionComponent](),
	}
}

// GetPosition returns the entity position vector
func (ps *PositionStore) GetPosition(e core.Entity) (vmath.Vec2, bool) {
	comp, ok := ps.GetComponent(e)
	return comp.Pos, ok
}

// SetPosition stores the entity position vector
func (ps *PositionStore) SetPosition(e core.Entity, pos vmath.Vec2) {
	ps.SetComponent(e, component.PositionComponent{Pos: pos})
}
