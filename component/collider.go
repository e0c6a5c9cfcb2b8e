package component

// ColliderComponent gives an entity a collision circle.
// Overlap is strict: tangent circles do not collide.
type ColliderComponent struct {
	Radius float64
}
