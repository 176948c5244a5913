package engine

// AABB is an axis-aligned bounding box in world units.
type AABB struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two boxes overlap strictly on both axes.
// Touching edges do not count as a collision.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
