package geometry

/**
 * Capability interfaces for the primitive types. Query helpers generic
 * over these let callers mix primitives without caring which concrete
 * type they hold.
 */

// Intersecter is implemented by primitives that can test overlap against
// a T.
type Intersecter[T any] interface {
	Intersects(other T) bool
}

// Encloser is implemented by primitives that can test full containment
// of a T.
type Encloser[T any] interface {
	Encloses(other T) bool
}

// PointContainer is implemented by primitives with an inclusive point
// membership test.
type PointContainer interface {
	ContainsPoint(p Point3) bool
}

// AnyIntersects reports whether a intersects any of the given others.
func AnyIntersects[T any](a Intersecter[T], others ...T) bool {
	for _, o := range others {
		if a.Intersects(o) {
			return true
		}
	}
	return false
}

// EnclosesAll reports whether a encloses every one of the given others.
func EnclosesAll[T any](a Encloser[T], others ...T) bool {
	for _, o := range others {
		if !a.Encloses(o) {
			return false
		}
	}
	return true
}
