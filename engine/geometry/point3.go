// Package geometry builds intersection, enclosure and distance queries
// for simple primitives on top of the vector and matrix layer.
package geometry

import (
	"unsafe"

	math "github.com/cadmium-engine/cadmium/engine/math"
)

// Point3 is a location in space, as opposed to a displacement. The
// arithmetic is deliberately asymmetric: point minus point is a vector,
// point plus or minus a vector is a point, and there is no point plus
// point. Scalar multiplication exists for affine blending only.
type Point3 struct {
	X, Y, Z float32
}

func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func NewPoint3Origin() Point3 {
	return Point3{}
}

func NewPoint3FromVector3(v math.Vector3) Point3 {
	return Point3{v.X, v.Y, v.Z}
}

// NewPoint3FromVector4 drops the w component.
func NewPoint3FromVector4(v math.Vector4) Point3 {
	return Point3{v.X, v.Y, v.Z}
}

// ToVector3 reinterprets the location as a displacement from the origin.
func (p Point3) ToVector3() math.Vector3 {
	return math.Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// AsVec3 aliases the point's storage as a coordinate view. Writes through
// the view mutate the point.
func (p *Point3) AsVec3() math.Vec3 {
	return math.Vec3(unsafe.Slice(&p.X, 3))
}

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) math.Vector3 {
	return math.Vector3{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// AddVec offsets the point by a displacement.
func (p Point3) AddVec(v math.Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubVec offsets the point against a displacement.
func (p Point3) SubVec(v math.Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// MulScalar scales the coordinates, for use in affine blends.
func (p Point3) MulScalar(s float32) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

func (p Point3) DivScalar(s float32) Point3 {
	return Point3{p.X / s, p.Y / s, p.Z / s}
}

// Min is the componentwise minimum of the two locations.
func (p Point3) Min(other Point3) Point3 {
	return NewPoint3FromVector3(p.ToVector3().Min(other.ToVector3()))
}

// Max is the componentwise maximum of the two locations.
func (p Point3) Max(other Point3) Point3 {
	return NewPoint3FromVector3(p.ToVector3().Max(other.ToVector3()))
}

func (p Point3) DistanceTo(other Point3) float32 {
	return p.Sub(other).Length()
}

func (p Point3) SquareDistanceTo(other Point3) float32 {
	return p.Sub(other).LengthSquared()
}

// Lerp blends toward other; alpha is not clamped.
func (p Point3) Lerp(other Point3, alpha float32) Point3 {
	return NewPoint3FromVector3(p.ToVector3().Lerp(other.ToVector3(), alpha))
}

func (p Point3) Midpoint(other Point3) Point3 {
	return p.Lerp(other, 0.5)
}

func (p Point3) Compare(other Point3, tolerance float32) bool {
	return p.ToVector3().Compare(other.ToVector3(), tolerance)
}
