package math

// Vector3 is an owning 3-component float vector.
type Vector3 struct {
	X, Y, Z float32
}

func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func NewVector3Zero() Vector3 {
	return Vector3{}
}

func NewVector3One() Vector3 {
	return Vector3{1.0, 1.0, 1.0}
}

func NewVector3Up() Vector3 {
	return Vector3{0.0, 1.0, 0.0}
}

func NewVector3Down() Vector3 {
	return Vector3{0.0, -1.0, 0.0}
}

func NewVector3Left() Vector3 {
	return Vector3{-1.0, 0.0, 0.0}
}

func NewVector3Right() Vector3 {
	return Vector3{1.0, 0.0, 0.0}
}

func NewVector3Forward() Vector3 {
	return Vector3{0.0, 0.0, -1.0}
}

func NewVector3Back() Vector3 {
	return Vector3{0.0, 0.0, 1.0}
}

/**
 * @brief Builds a vector from a slice of exactly 3 elements. A wrong
 * length is reported as a *SliceLengthError, never a panic.
 */
func NewVector3FromSlice(s []float32) (Vector3, error) {
	if err := checkSliceLength(3, s); err != nil {
		return Vector3{}, err
	}
	return Vector3{s[0], s[1], s[2]}, nil
}

// NewVector3FromSliceUnchecked skips the length check. The caller
// guarantees at least 3 readable elements.
func NewVector3FromSliceUnchecked(s []float32) Vector3 {
	return Vector3{s[0], s[1], s[2]}
}

// Vec3 returns a view aliasing the vector's storage.
func (v *Vector3) Vec3() Vec3 {
	return Vec3(viewFloats(&v.X, 3))
}

// ToVector4 extends with the given w component.
func (v Vector3) ToVector4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vector3) MulScalar(scalar float32) Vector3 {
	return Vector3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vector3) DivScalar(scalar float32) Vector3 {
	return Vector3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Returns the right-handed cross product, a vector orthogonal to
 * both inputs.
 */
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vector3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit-length copy. Normalizing a zero vector produces
 * NaN components; guarding against that is the caller's responsibility.
 */
func (v Vector3) Normalize() Vector3 {
	return v.DivScalar(v.Length())
}

func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

func (v Vector3) SquareDistance(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp blends componentwise toward other. Alpha is not clamped.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vector3{
		v.X + (other.X-v.X)*alpha,
		v.Y + (other.Y-v.Y)*alpha,
		v.Z + (other.Z-v.Z)*alpha,
	}
}

func (v Vector3) Midpoint(other Vector3) Vector3 {
	return v.Lerp(other, 0.5)
}

func (v Vector3) Compare(other Vector3, tolerance float32) bool {
	return Near(v.X, other.X, tolerance) &&
		Near(v.Y, other.Y, tolerance) &&
		Near(v.Z, other.Z, tolerance)
}

func (v Vector3) Abs() Vector3 {
	return Vector3{kabs(v.X), kabs(v.Y), kabs(v.Z)}
}

func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z)}
}

func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z)}
}

func (v Vector3) IsFinite() bool {
	return !kisnan(v.X) && !kisinf(v.X) &&
		!kisnan(v.Y) && !kisinf(v.Y) &&
		!kisnan(v.Z) && !kisinf(v.Z)
}

func (v Vector3) IsNaN() bool {
	return kisnan(v.X) || kisnan(v.Y) || kisnan(v.Z)
}

/**
 * @brief Rotates the vector about the x axis by the given angle.
 */
func (v Vector3) RotateX(angle Angle) Vector3 {
	s, c := SinCos(angle)
	return Vector3{
		v.X,
		v.Y*c - v.Z*s,
		v.Y*s + v.Z*c,
	}
}

/**
 * @brief Rotates the vector about the y axis by the given angle.
 */
func (v Vector3) RotateY(angle Angle) Vector3 {
	s, c := SinCos(angle)
	return Vector3{
		v.X*c + v.Z*s,
		v.Y,
		-v.X*s + v.Z*c,
	}
}

/**
 * @brief Rotates the vector about the z axis by the given angle.
 */
func (v Vector3) RotateZ(angle Angle) Vector3 {
	s, c := SinCos(angle)
	return Vector3{
		v.X*c - v.Y*s,
		v.X*s + v.Y*c,
		v.Z,
	}
}

/**
 * @brief Transforms v as a point by the given matrix, assuming an
 * implicit w component of 1.
 */
func (v Vector3) Transform(m Matrix4) Vector3 {
	out := v.ToVector4(1.0).Transform(m)
	return out.XYZ()
}
