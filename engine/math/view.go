package math

/**
 * Non-owning vector views. A view is a plain slice aliasing exactly N
 * scalars in x, y, z, w order, so owning vectors, matrix columns and
 * Euler angles can all be borrowed without a copy. Read operations return
 * owning values; the mutating operations write through to the aliased
 * storage.
 */

type Vec2 []float32

type Vec3 []float32

type Vec4 []float32

/**
 * @brief Builds a view over a slice of exactly 2 elements. A wrong length
 * is reported as a *SliceLengthError, never a panic.
 */
func NewVec2(s []float32) (Vec2, error) {
	if err := checkSliceLength(2, s); err != nil {
		return nil, err
	}
	return Vec2(s[:2:2]), nil
}

func NewVec3(s []float32) (Vec3, error) {
	if err := checkSliceLength(3, s); err != nil {
		return nil, err
	}
	return Vec3(s[:3:3]), nil
}

func NewVec4(s []float32) (Vec4, error) {
	if err := checkSliceLength(4, s); err != nil {
		return nil, err
	}
	return Vec4(s[:4:4]), nil
}

// Unchecked variants. The caller guarantees the slice holds at least N
// elements; a shorter slice makes later indexing panic.
func NewVec2Unchecked(s []float32) Vec2 { return Vec2(s) }

func NewVec3Unchecked(s []float32) Vec3 { return Vec3(s) }

func NewVec4Unchecked(s []float32) Vec4 { return Vec4(s) }

func (v Vec2) X() float32 { return v[0] }

func (v Vec2) Y() float32 { return v[1] }

func (v Vec2) SetX(x float32) { v[0] = x }

func (v Vec2) SetY(y float32) { v[1] = y }

// ToVector2 copies the viewed values into an owning vector.
func (v Vec2) ToVector2() Vector2 { return Vector2{v[0], v[1]} }

// Store writes the owning vector's components through the view.
func (v Vec2) Store(o Vector2) { v[0], v[1] = o.X, o.Y }

func (v Vec2) Dot(other Vec2) float32 { return v[0]*other[0] + v[1]*other[1] }

func (v Vec2) Length() float32 { return ksqrt(v.Dot(v)) }

// Normalize scales the viewed values to unit length in place.
func (v Vec2) Normalize() {
	l := v.Length()
	v[0] /= l
	v[1] /= l
}

func (v Vec2) Scale(s float32) {
	v[0] *= s
	v[1] *= s
}

func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return NearSlice(v, other, tolerance)
}

func (v Vec3) X() float32 { return v[0] }

func (v Vec3) Y() float32 { return v[1] }

func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) SetX(x float32) { v[0] = x }

func (v Vec3) SetY(y float32) { v[1] = y }

func (v Vec3) SetZ(z float32) { v[2] = z }

func (v Vec3) ToVector3() Vector3 { return Vector3{v[0], v[1], v[2]} }

func (v Vec3) Store(o Vector3) { v[0], v[1], v[2] = o.X, o.Y, o.Z }

func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

func (v Vec3) Cross(other Vec3) Vector3 {
	return v.ToVector3().Cross(other.ToVector3())
}

func (v Vec3) Length() float32 { return ksqrt(v.Dot(v)) }

func (v Vec3) Normalize() {
	l := v.Length()
	v[0] /= l
	v[1] /= l
	v[2] /= l
}

func (v Vec3) Scale(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return NearSlice(v, other, tolerance)
}

func (v Vec4) X() float32 { return v[0] }

func (v Vec4) Y() float32 { return v[1] }

func (v Vec4) Z() float32 { return v[2] }

func (v Vec4) W() float32 { return v[3] }

func (v Vec4) SetX(x float32) { v[0] = x }

func (v Vec4) SetY(y float32) { v[1] = y }

func (v Vec4) SetZ(z float32) { v[2] = z }

func (v Vec4) SetW(w float32) { v[3] = w }

func (v Vec4) ToVector4() Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

func (v Vec4) Store(o Vector4) { v[0], v[1], v[2], v[3] = o.X, o.Y, o.Z, o.W }

// XYZ re-slices to a 3-component view over the same storage.
func (v Vec4) XYZ() Vec3 { return Vec3(v[:3]) }

func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

func (v Vec4) Length() float32 { return ksqrt(v.Dot(v)) }

func (v Vec4) Normalize() {
	l := v.Length()
	v[0] /= l
	v[1] /= l
	v[2] /= l
	v[3] /= l
}

func (v Vec4) Scale(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return NearSlice(v, other, tolerance)
}
