package geometry

import (
	math "github.com/cadmium-engine/cadmium/engine/math"
)

// Epsilon for the parallelism, coplanarity and collinearity checks below.
const lineEpsilon float32 = 1e-4

// Line is an infinite bidirectional line through an origin along a
// direction. The direction is assumed unit length by the queries.
type Line struct {
	origin    Point3
	direction math.Vector3
}

// NewLine normalizes the direction.
func NewLine(origin Point3, direction math.Vector3) Line {
	return Line{origin: origin, direction: direction.Normalize()}
}

// NewLineUnchecked skips normalization. The caller guarantees a unit
// direction; queries on a non-unit direction return scaled-wrong
// distances.
func NewLineUnchecked(origin Point3, direction math.Vector3) Line {
	return Line{origin: origin, direction: direction}
}

// NewLineThroughPoints runs the line from a toward b.
func NewLineThroughPoints(a, b Point3) Line {
	return NewLine(a, b.Sub(a))
}

func (l Line) Origin() Point3 { return l.origin }

func (l Line) Direction() math.Vector3 { return l.direction }

// PointAtDistance walks the given distance from the origin along the
// direction.
func (l Line) PointAtDistance(distance float32) Point3 {
	return l.origin.AddVec(l.direction.MulScalar(distance))
}

// DistanceTo returns the perpendicular distance from the point to the
// line.
func (l Line) DistanceTo(p Point3) float32 {
	return p.Sub(l.origin).Cross(l.direction).Length()
}

/**
 * @brief Collinearity test via the parametric ratios (p - origin) /
 * direction. Axes where the direction component is zero are checked
 * separately: the point's offset on such an axis must itself be zero,
 * since a ratio there would divide by zero.
 */
func (l Line) ContainsPoint(p Point3) bool {
	offset := p.Sub(l.origin)
	dir := l.direction

	t := float32(0)
	haveT := false
	check := func(o, d float32) bool {
		if kabs(d) <= lineEpsilon {
			return kabs(o) <= lineEpsilon
		}
		ratio := o / d
		if !haveT {
			t, haveT = ratio, true
			return true
		}
		return kabs(ratio-t) <= lineEpsilon
	}
	return check(offset.X, dir.X) && check(offset.Y, dir.Y) && check(offset.Z, dir.Z)
}

/**
 * @brief Reports whether the two lines cross. Parallel lines never
 * intersect here, coincident ones included; otherwise the lines cross
 * iff they are coplanar, tested with the scalar triple product.
 */
func (l Line) Intersects(other Line) bool {
	cross := l.direction.Cross(other.direction)
	if cross.Length() <= lineEpsilon {
		return false
	}
	separation := other.origin.Sub(l.origin)
	return kabs(separation.Dot(cross)) <= lineEpsilon
}

func kabs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
