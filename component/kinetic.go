package component

import "github.com/lixenwraith/datastorm/vmath"

// KineticComponent carries linear velocity in arena units per second.
// Integration only; steering and AI live outside the core.
type KineticComponent struct {
	Vel vmath.Vec2
}
