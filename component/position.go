package component

import "github.com/lixenwraith/datastorm/vmath"

// PositionComponent is an entity location in continuous arena space
type PositionComponent struct {
	Pos vmath.Vec2
}
