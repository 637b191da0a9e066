package geometry

/**
 * Cross-type intersection queries that do not belong naturally to a
 * single primitive.
 */

// LineIntersectsSphere reports whether the infinite line passes through
// or touches the sphere.
func LineIntersectsSphere(l Line, s Sphere) bool {
	return l.DistanceTo(s.Center()) <= s.Radius()
}

/**
 * @brief Slab test for an infinite line against a box. Each axis clips
 * the parametric range; the line misses as soon as the range empties.
 * Axes where the direction is zero require the origin to lie between the
 * slabs on that axis.
 */
func LineIntersectsAABB(l Line, b AABB) bool {
	origin := l.Origin()
	dir := l.Direction()

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	min := [3]float32{b.Min().X, b.Min().Y, b.Min().Z}
	max := [3]float32{b.Max().X, b.Max().Y, b.Max().Z}

	tMin := -kInfinity
	tMax := kInfinity
	for i := 0; i < 3; i++ {
		if kabs(d[i]) <= lineEpsilon {
			if o[i] < min[i] || o[i] > max[i] {
				return false
			}
			continue
		}
		t0 := (min[i] - o[i]) / d[i]
		t1 := (max[i] - o[i]) / d[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}

const kInfinity float32 = 1e30

// SphereIntersectsLine is the symmetric wrapper.
func SphereIntersectsLine(s Sphere, l Line) bool {
	return LineIntersectsSphere(l, s)
}

// AABBIntersectsLine is the symmetric wrapper.
func AABBIntersectsLine(b AABB, l Line) bool {
	return LineIntersectsAABB(l, b)
}
