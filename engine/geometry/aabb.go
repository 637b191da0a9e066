package geometry

import (
	math "github.com/cadmium-engine/cadmium/engine/math"
)

// AABB is an axis-aligned bounding box. The min corner is componentwise
// less than or equal to the max corner; NewAABBFromPoints maintains that
// by construction and it is never re-asserted afterwards.
type AABB struct {
	min Point3
	max Point3
}

/**
 * @brief Builds a box from two arbitrary opposite corners, resolving
 * their ordering componentwise.
 */
func NewAABBFromPoints(a, b Point3) AABB {
	return AABB{min: a.Min(b), max: a.Max(b)}
}

// NewAABBFromCorners skips the min/max pass. The caller must supply an
// already ordered pair; an inverted box silently produces undefined
// query results.
func NewAABBFromCorners(min, max Point3) AABB {
	return AABB{min: min, max: max}
}

func (b AABB) Min() Point3 { return b.min }

func (b AABB) Max() Point3 { return b.max }

func (b AABB) Center() Point3 {
	return b.min.Midpoint(b.max)
}

// Size returns the edge lengths along each axis.
func (b AABB) Size() math.Vector3 {
	return b.max.Sub(b.min)
}

func (b AABB) Volume() float32 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// FaceNormals returns the six outward face normals. The order is not
// part of the contract.
func (b AABB) FaceNormals() [6]math.Vector3 {
	return [6]math.Vector3{
		math.NewVector3Right(),
		math.NewVector3Left(),
		math.NewVector3Up(),
		math.NewVector3Down(),
		math.NewVector3Back(),
		math.NewVector3Forward(),
	}
}

// FacePlanes returns the six face planes with outward normals, in the
// same unspecified order as FaceNormals.
func (b AABB) FacePlanes() [6]Plane {
	normals := b.FaceNormals()
	corners := [6]Point3{b.max, b.min, b.max, b.min, b.max, b.min}
	out := [6]Plane{}
	for i := range normals {
		out[i] = NewPlaneFromPointNormal(corners[i], normals[i])
	}
	return out
}

// ContainsPoint tests all six axis bounds inclusively, so a point on a
// face counts as contained.
func (b AABB) ContainsPoint(p Point3) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

/**
 * @brief Separating-axis overlap test. Boxes that merely touch are
 * considered intersecting.
 */
func (b AABB) Intersects(other AABB) bool {
	return b.min.X <= other.max.X && b.max.X >= other.min.X &&
		b.min.Y <= other.max.Y && b.max.Y >= other.min.Y &&
		b.min.Z <= other.max.Z && b.max.Z >= other.min.Z
}

// Encloses reports whether other fits entirely inside b, inclusive of
// shared faces.
func (b AABB) Encloses(other AABB) bool {
	return other.min.X >= b.min.X && other.max.X <= b.max.X &&
		other.min.Y >= b.min.Y && other.max.Y <= b.max.Y &&
		other.min.Z >= b.min.Z && other.max.Z <= b.max.Z
}

// NearestPoint clamps p onto the box; a point inside maps to itself.
func (b AABB) NearestPoint(p Point3) Point3 {
	return Point3{
		math.Clamp(p.X, b.min.X, b.max.X),
		math.Clamp(p.Y, b.min.Y, b.max.Y),
		math.Clamp(p.Z, b.min.Z, b.max.Z),
	}
}

// DistanceTo returns the distance from p to the box surface, 0 for
// points inside.
func (b AABB) DistanceTo(p Point3) float32 {
	return b.NearestPoint(p).DistanceTo(p)
}

func (b AABB) SquareDistanceTo(p Point3) float32 {
	return b.NearestPoint(p).SquareDistanceTo(p)
}

// IntersectsSphere tests overlap via the nearest point on the box to the
// sphere center.
func (b AABB) IntersectsSphere(s Sphere) bool {
	return b.SquareDistanceTo(s.Center()) <= s.Radius()*s.Radius()
}
