package geometry

// Sphere is a center and a radius. The radius is not validated; a
// negative radius makes every query vacuously false or negative.
type Sphere struct {
	center Point3
	radius float32
}

func NewSphere(center Point3, radius float32) Sphere {
	return Sphere{center: center, radius: radius}
}

func (s Sphere) Center() Point3 { return s.center }

func (s Sphere) Radius() float32 { return s.radius }

/**
 * @brief Compares squared center distance against the squared radius
 * sum. Touching spheres intersect.
 */
func (s Sphere) Intersects(other Sphere) bool {
	rr := s.radius + other.radius
	return s.center.SquareDistanceTo(other.center) <= rr*rr
}

// Encloses reports whether other fits entirely inside s, inclusive of an
// internally tangent sphere.
func (s Sphere) Encloses(other Sphere) bool {
	if other.radius > s.radius {
		return false
	}
	dr := s.radius - other.radius
	return s.center.SquareDistanceTo(other.center) <= dr*dr
}

// EnclosesPoint is inclusive: a point exactly on the surface counts.
func (s Sphere) EnclosesPoint(p Point3) bool {
	return s.center.SquareDistanceTo(p) <= s.radius*s.radius
}

// DistanceTo returns the distance from p to the sphere surface, negative
// for points inside.
func (s Sphere) DistanceTo(p Point3) float32 {
	return s.center.DistanceTo(p) - s.radius
}

// IntersectsAABB tests overlap via the nearest point on the box.
func (s Sphere) IntersectsAABB(b AABB) bool {
	return b.IntersectsSphere(s)
}
