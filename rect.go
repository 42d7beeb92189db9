package cantus

// Rect is an axis-aligned rectangle given by its min and max corners.
// Used both in pixel space (pill and glyph destinations) and in [0,1]
// UV space (atlas source rectangles).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// R is a convenience function to create a Rect.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// HalfExtent returns half the width and height as a vector.
func (r Rect) HalfExtent() Vec2 {
	return Vec2{X: (r.X1 - r.X0) / 2, Y: (r.Y1 - r.Y0) / 2}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Inflate returns the rectangle expanded by dx horizontally and dy
// vertically on every side.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}
