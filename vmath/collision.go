package vmath

// CirclesOverlap reports whether two circles overlap.
// Comparison is strict: exact tangency does not count as a collision.
func CirclesOverlap(aPos Vec2, aRadius float64, bPos Vec2, bRadius float64) bool {
	sum := aRadius + bRadius
	return DistSq(aPos, bPos) < sum*sum
}

// BeamHit reports whether a beam hits a circle, along with the point distance
// along the beam axis. The beam is a half-line from origin along dir (unit
// vector) with the given half-width. Targets behind the origin never hit.
// Overlap uses the same strict comparison as CirclesOverlap.
func BeamHit(origin, dir Vec2, halfWidth float64, targetPos Vec2, targetRadius float64) bool {
	rel := targetPos.Sub(origin)
	along := rel.Dot(dir)
	if along < 0 {
		return false
	}
	perpSq := rel.LengthSq() - along*along
	if perpSq < 0 {
		perpSq = 0
	}
	reach := halfWidth + targetRadius
	return perpSq < reach*reach
}
