package cantus

import "math"

// Analytic signed distance primitives. Each function maps a point p in
// shape-local coordinates to the signed distance to the boundary:
// negative inside, zero on the boundary, positive outside. Shapes are
// combined with [Union] and converted to anti-aliased coverage with
// [Coverage].

// aaHalfWidth is the fixed anti-aliasing half-width in pixels used when
// a screen-space derivative of the distance is not available. 0.7 gives
// smooth edges at standard DPI.
const aaHalfWidth = 0.7

// sdfEpsilon guards normalization of degenerate geometry (zero-length
// segments, zero-size shapes) so malformed instances render as stable
// degenerate shapes instead of NaNs.
const sdfEpsilon = 1e-6

// RoundedRect returns the signed distance from p to a rectangle of the
// given half extent with circular corners of the given radius.
// Degenerates to a sharp axis-aligned box at radius 0.
func RoundedRect(p, halfExtent Vec2, radius float64) float64 {
	q := p.Abs().Sub(halfExtent).AddScalar(radius)
	outside := q.Max(Vec2{}).Length()
	inside := math.Min(math.Max(q.X, q.Y), 0)
	return outside + inside - radius
}

// Squircle returns the signed distance from p to a superellipse-rounded
// rectangle. The 4th-order corner profile is flatter-sided than a
// circular rounded rectangle at the same radius, giving the app-icon
// silhouette used for cover-art windows and playlist icons.
func Squircle(p, halfExtent Vec2, radius float64) float64 {
	q := p.Abs().Sub(halfExtent).AddScalar(radius)
	qx := math.Max(q.X, 0)
	qy := math.Max(q.Y, 0)
	outside := math.Pow(qx*qx*qx*qx+qy*qy*qy*qy, 0.25)
	inside := math.Min(math.Max(q.X, q.Y), 0)
	return outside - radius + inside
}

// Five-fold symmetry axes for the star: slope derived from the golden
// angle, cos(2*pi/10) and -sin(2*pi/10).
var (
	starK1 = Vec2{X: 0.80901699437, Y: -0.58778525229}
	starK2 = Vec2{X: -0.80901699437, Y: -0.58778525229}
)

// Star returns the signed distance from p to a five-pointed star of the
// given outer radius. indent in (0, 1) controls the concavity between
// points; smaller values cut deeper notches. The point is folded twice
// across the symmetry axes into the base wedge, then measured against
// the wedge's bounding segment.
func Star(p Vec2, radius, indent float64) float64 {
	p.X = math.Abs(p.X)
	p = p.Sub(starK1.Mul(2 * math.Max(starK1.Dot(p), 0)))
	p = p.Sub(starK2.Mul(2 * math.Max(starK2.Dot(p), 0)))
	p.X = math.Abs(p.X)
	p.Y -= radius

	ba := Vec2{X: -starK1.Y, Y: starK1.X}.Mul(indent).Sub(Vec2{Y: 1})
	h := Clamp(p.Dot(ba)/(ba.Dot(ba)+sdfEpsilon), 0, radius)
	d := p.Sub(ba.Mul(h)).Length()
	if p.Y*ba.X-p.X*ba.Y < 0 {
		return -d
	}
	return d
}

// RoundedTriangle returns the signed distance from p to an upward
// pointing equilateral triangle with half-width side and rounded
// corners of cornerRadius. The triangle is folded through its 60/120
// degree symmetry, shrunk by the corner radius, and re-offset outward.
func RoundedTriangle(p Vec2, side, cornerRadius float64) float64 {
	r := math.Max(side-cornerRadius, sdfEpsilon)
	const k = 1.73205080757 // sqrt(3)
	p.X = math.Abs(p.X) - r
	p.Y += r / k
	if p.X+k*p.Y > 0 {
		p = Vec2{X: (p.X - k*p.Y) / 2, Y: (-k*p.X - p.Y) / 2}
	}
	p.X -= Clamp(p.X, -2*r, 0)
	d := p.Length()
	if p.Y > 0 {
		d = -d
	}
	return d - cornerRadius
}

// Segment returns the signed distance from p to a capsule of the given
// radius around the line segment [a, b]. A zero-length segment renders
// as a circle at a.
func Segment(p, a, b Vec2, radius float64) float64 {
	pa := p.Sub(a)
	ba := b.Sub(a)
	h := Clamp(pa.Dot(ba)/(ba.Dot(ba)+sdfEpsilon), 0, 1)
	return pa.Sub(ba.Mul(h)).Length() - radius
}

// Union combines two distance fields with a boolean union.
func Union(d1, d2 float64) float64 {
	return math.Min(d1, d2)
}

// Coverage converts a signed distance to an anti-aliased coverage value
// in [0, 1] using the fixed half-width: 1 - smoothstep(-w, w, d).
func Coverage(d float64) float64 {
	return CoverageWidth(d, aaHalfWidth)
}

// CoverageWidth converts a signed distance to coverage using an explicit
// anti-aliasing half-width, typically the local screen-space derivative
// of the distance (the fwidth analog).
func CoverageWidth(d, halfWidth float64) float64 {
	if halfWidth < sdfEpsilon {
		halfWidth = sdfEpsilon
	}
	return 1 - Smoothstep(-halfWidth, halfWidth, d)
}
