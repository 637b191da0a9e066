package math

// Vector4 is an owning 4-component float vector.
type Vector4 struct {
	X, Y, Z, W float32
}

func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func NewVector4Zero() Vector4 {
	return Vector4{}
}

func NewVector4One() Vector4 {
	return Vector4{1.0, 1.0, 1.0, 1.0}
}

func NewVector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Builds a vector from a slice of exactly 4 elements. A wrong
 * length is reported as a *SliceLengthError, never a panic.
 */
func NewVector4FromSlice(s []float32) (Vector4, error) {
	if err := checkSliceLength(4, s); err != nil {
		return Vector4{}, err
	}
	return Vector4{s[0], s[1], s[2], s[3]}, nil
}

// NewVector4FromSliceUnchecked skips the length check. The caller
// guarantees at least 4 readable elements.
func NewVector4FromSliceUnchecked(s []float32) Vector4 {
	return Vector4{s[0], s[1], s[2], s[3]}
}

// Vec4 returns a view aliasing the vector's storage.
func (v *Vector4) Vec4() Vec4 {
	return Vec4(viewFloats(&v.X, 4))
}

// XYZ truncates to the first three components.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vector4) MulScalar(scalar float32) Vector4 {
	return Vector4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vector4) DivScalar(scalar float32) Vector4 {
	return Vector4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vector4) Neg() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vector4) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit-length copy. Normalizing a zero vector produces
 * NaN components; guarding against that is the caller's responsibility.
 */
func (v Vector4) Normalize() Vector4 {
	return v.DivScalar(v.Length())
}

func (v Vector4) Distance(other Vector4) float32 {
	return v.Sub(other).Length()
}

func (v Vector4) SquareDistance(other Vector4) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp blends componentwise toward other. Alpha is not clamped.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{
		v.X + (other.X-v.X)*alpha,
		v.Y + (other.Y-v.Y)*alpha,
		v.Z + (other.Z-v.Z)*alpha,
		v.W + (other.W-v.W)*alpha,
	}
}

func (v Vector4) Midpoint(other Vector4) Vector4 {
	return v.Lerp(other, 0.5)
}

func (v Vector4) Compare(other Vector4, tolerance float32) bool {
	return Near(v.X, other.X, tolerance) &&
		Near(v.Y, other.Y, tolerance) &&
		Near(v.Z, other.Z, tolerance) &&
		Near(v.W, other.W, tolerance)
}

func (v Vector4) Abs() Vector4 {
	return Vector4{kabs(v.X), kabs(v.Y), kabs(v.Z), kabs(v.W)}
}

func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z), kmin(v.W, other.W)}
}

func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z), kmax(v.W, other.W)}
}

func (v Vector4) IsFinite() bool {
	return !kisnan(v.X) && !kisinf(v.X) &&
		!kisnan(v.Y) && !kisinf(v.Y) &&
		!kisnan(v.Z) && !kisinf(v.Z) &&
		!kisnan(v.W) && !kisinf(v.W)
}

func (v Vector4) IsNaN() bool {
	return kisnan(v.X) || kisnan(v.Y) || kisnan(v.Z) || kisnan(v.W)
}

/**
 * @brief Transforms v by the given matrix using the column-vector
 * convention, matrix on the left.
 */
func (v Vector4) Transform(m Matrix4) Vector4 {
	return m.MulColVec(v)
}
