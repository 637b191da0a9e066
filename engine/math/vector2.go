package math

// Vector2 is an owning 2-component float vector. The fields are tightly
// packed; index 0 is X and index 1 is Y wherever a slice view is taken.
type Vector2 struct {
	X, Y float32
}

func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func NewVector2Zero() Vector2 {
	return Vector2{}
}

func NewVector2One() Vector2 {
	return Vector2{1.0, 1.0}
}

func NewVector2Up() Vector2 {
	return Vector2{0.0, 1.0}
}

func NewVector2Down() Vector2 {
	return Vector2{0.0, -1.0}
}

func NewVector2Left() Vector2 {
	return Vector2{-1.0, 0.0}
}

func NewVector2Right() Vector2 {
	return Vector2{1.0, 0.0}
}

/**
 * @brief Builds a vector from a slice of exactly 2 elements. A wrong
 * length is reported as a *SliceLengthError, never a panic.
 */
func NewVector2FromSlice(s []float32) (Vector2, error) {
	if err := checkSliceLength(2, s); err != nil {
		return Vector2{}, err
	}
	return Vector2{s[0], s[1]}, nil
}

// NewVector2FromSliceUnchecked skips the length check. The caller
// guarantees at least 2 readable elements.
func NewVector2FromSliceUnchecked(s []float32) Vector2 {
	return Vector2{s[0], s[1]}
}

// Vec2 returns a view aliasing the vector's storage. Writes through the
// view are visible in v.
func (v *Vector2) Vec2() Vec2 {
	return Vec2(viewFloats(&v.X, 2))
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

func (v Vector2) DivScalar(scalar float32) Vector2 {
	return Vector2{v.X / scalar, v.Y / scalar}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector2) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vector2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit-length copy. Normalizing a zero vector produces
 * NaN components; guarding against that is the caller's responsibility.
 */
func (v Vector2) Normalize() Vector2 {
	return v.DivScalar(v.Length())
}

func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

func (v Vector2) SquareDistance(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp blends componentwise toward other. Alpha is not clamped, so values
// outside [0, 1] extrapolate.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{
		v.X + (other.X-v.X)*alpha,
		v.Y + (other.Y-v.Y)*alpha,
	}
}

func (v Vector2) Midpoint(other Vector2) Vector2 {
	return v.Lerp(other, 0.5)
}

func (v Vector2) Compare(other Vector2, tolerance float32) bool {
	return Near(v.X, other.X, tolerance) && Near(v.Y, other.Y, tolerance)
}

func (v Vector2) Abs() Vector2 {
	return Vector2{kabs(v.X), kabs(v.Y)}
}

func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{kmin(v.X, other.X), kmin(v.Y, other.Y)}
}

func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{kmax(v.X, other.X), kmax(v.Y, other.Y)}
}

func (v Vector2) IsFinite() bool {
	return !kisnan(v.X) && !kisinf(v.X) && !kisnan(v.Y) && !kisinf(v.Y)
}

func (v Vector2) IsNaN() bool {
	return kisnan(v.X) || kisnan(v.Y)
}

func kmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func kmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
