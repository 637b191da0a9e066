package math

import "github.com/cadmium-engine/cadmium/engine/core"

/**
 * Non-owning matrix views. Like the vector views these are plain slices
 * aliasing flat column-major storage, letting callers hand a borrowed
 * buffer to matrix operations without a copy.
 */

type Mat2 []float32

type Mat3 []float32

type Mat4 []float32

/**
 * @brief Builds a view over a slice of exactly 4 elements in column-major
 * order. A wrong length is reported as a *SliceLengthError.
 */
func NewMat2(s []float32) (Mat2, error) {
	if err := checkSliceLength(4, s); err != nil {
		return nil, err
	}
	return Mat2(s[:4:4]), nil
}

func NewMat3(s []float32) (Mat3, error) {
	if err := checkSliceLength(9, s); err != nil {
		return nil, err
	}
	return Mat3(s[:9:9]), nil
}

func NewMat4(s []float32) (Mat4, error) {
	if err := checkSliceLength(16, s); err != nil {
		return nil, err
	}
	return Mat4(s[:16:16]), nil
}

func (m Mat2) At(row, col int) float32 { return m[col*2+row] }

func (m Mat2) SetAt(row, col int, v float32) { m[col*2+row] = v }

func (m Mat2) Col(col int) Vec2 { return Vec2(m[col*2 : col*2+2]) }

func (m Mat2) Row(row int) core.Strided[float32] {
	return core.NewStrided(m, row, 2, 2)
}

// ToMatrix2 copies the viewed values into an owning matrix.
func (m Mat2) ToMatrix2() Matrix2 {
	out := Matrix2{}
	copy(out.Data[:], m)
	return out
}

// Store writes the owning matrix's storage through the view.
func (m Mat2) Store(o Matrix2) { copy(m, o.Data[:]) }

func (m Mat3) At(row, col int) float32 { return m[col*3+row] }

func (m Mat3) SetAt(row, col int, v float32) { m[col*3+row] = v }

func (m Mat3) Col(col int) Vec3 { return Vec3(m[col*3 : col*3+3]) }

func (m Mat3) Row(row int) core.Strided[float32] {
	return core.NewStrided(m, row, 3, 3)
}

func (m Mat3) ToMatrix3() Matrix3 {
	out := Matrix3{}
	copy(out.Data[:], m)
	return out
}

func (m Mat3) Store(o Matrix3) { copy(m, o.Data[:]) }

func (m Mat4) At(row, col int) float32 { return m[col*4+row] }

func (m Mat4) SetAt(row, col int, v float32) { m[col*4+row] = v }

func (m Mat4) Col(col int) Vec4 { return Vec4(m[col*4 : col*4+4]) }

func (m Mat4) Row(row int) core.Strided[float32] {
	return core.NewStrided(m, row, 4, 4)
}

func (m Mat4) ToMatrix4() Matrix4 {
	out := Matrix4{}
	copy(out.Data[:], m)
	return out
}

func (m Mat4) Store(o Matrix4) { copy(m, o.Data[:]) }

// MulColVec multiplies with the viewed matrix on the left of a column
// vector, without materializing an owning copy.
func (m Mat4) MulColVec(v Vector4) Vector4 {
	return Vector4{
		m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3)*v.W,
		m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3)*v.W,
		m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3)*v.W,
		m.At(3, 0)*v.X + m.At(3, 1)*v.Y + m.At(3, 2)*v.Z + m.At(3, 3)*v.W,
	}
}
