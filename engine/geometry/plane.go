package geometry

import (
	math "github.com/cadmium-engine/cadmium/engine/math"
)

// Plane in implicit form ax + by + cz + d = 0. The normal (a, b, c) is
// assumed unit length by convention; it is not enforced at construction,
// and distance queries through a non-normalized plane are scaled wrong.
type Plane struct {
	A, B, C, D float32
}

func NewPlane(a, b, c, d float32) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

// NewPlaneFromNormalDistance positions the plane distance units from the
// origin along its normal.
func NewPlaneFromNormalDistance(normal math.Vector3, distance float32) Plane {
	return Plane{normal.X, normal.Y, normal.Z, -distance}
}

func NewPlaneFromPointNormal(point Point3, normal math.Vector3) Plane {
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(point.ToVector3())}
}

/**
 * @brief Builds a plane through three points with the normal taken from
 * their counter-clockwise winding.
 */
func NewPlaneFromPointsCounterClockwise(p0, p1, p2 Point3) Plane {
	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	return NewPlaneFromPointNormal(p0, normal)
}

func NewPlaneFromPointsClockwise(p0, p1, p2 Point3) Plane {
	normal := p2.Sub(p0).Cross(p1.Sub(p0)).Normalize()
	return NewPlaneFromPointNormal(p0, normal)
}

func (p Plane) Normal() math.Vector3 {
	return math.Vector3{X: p.A, Y: p.B, Z: p.C}
}

// AsVector4 returns the coefficients as (a, b, c, d).
func (p Plane) AsVector4() math.Vector4 {
	return math.Vector4{X: p.A, Y: p.B, Z: p.C, W: p.D}
}

/**
 * @brief Signed distance from the point to the plane; positive on the
 * normal side.
 */
func (p Plane) DistanceToPoint(pt Point3) float32 {
	return p.Normal().Dot(pt.ToVector3()) + p.D
}

// Contains reports whether the point lies on the plane within the float
// epsilon. A point exactly on the plane is neither over nor under it.
func (p Plane) Contains(pt Point3) bool {
	return math.AlmostEq(p.DistanceToPoint(pt), 0)
}

// IsPointOver reports whether the point is strictly on the normal side.
func (p Plane) IsPointOver(pt Point3) bool {
	return p.DistanceToPoint(pt) > math.K_FLOAT_EPSILON
}

// IsPointUnder reports whether the point is strictly on the side the
// normal faces away from.
func (p Plane) IsPointUnder(pt Point3) bool {
	return p.DistanceToPoint(pt) < -math.K_FLOAT_EPSILON
}

// NearestPoint projects pt onto the plane.
func (p Plane) NearestPoint(pt Point3) Point3 {
	return pt.SubVec(p.Normal().MulScalar(p.DistanceToPoint(pt)))
}

// Inverted flips the plane to face the other way.
func (p Plane) Inverted() Plane {
	return Plane{-p.A, -p.B, -p.C, -p.D}
}
