package math

import (
	"unsafe"

	"github.com/cadmium-engine/cadmium/engine/core"
)

// Matrix2 is a 2x2 float matrix in column-major storage: Data[col*2+row].
type Matrix2 struct {
	Data [4]float32
}

func NewMatrix2Identity() Matrix2 {
	return Matrix2{Data: [4]float32{1, 0, 0, 1}}
}

func NewMatrix2Zero() Matrix2 {
	return Matrix2{}
}

// NewMatrix2 takes elements in column-major order.
func NewMatrix2(m00, m10, m01, m11 float32) Matrix2 {
	return Matrix2{Data: [4]float32{m00, m10, m01, m11}}
}

func (mt Matrix2) At(row, col int) float32 {
	return mt.Data[col*2+row]
}

func (mt *Matrix2) SetAt(row, col int, v float32) {
	mt.Data[col*2+row] = v
}

// Col returns a view aliasing the matrix's storage for the given column.
func (mt *Matrix2) Col(col int) Vec2 {
	return Vec2(mt.Data[col*2 : col*2+2])
}

// Row returns a strided view walking the given row across columns.
func (mt *Matrix2) Row(row int) core.Strided[float32] {
	return core.NewStrided(mt.Data[:], row, 2, 2)
}

/**
 * @brief Standard matrix product: output column j is mt applied to
 * other's column j.
 */
func (mt Matrix2) MulMat(other Matrix2) Matrix2 {
	out := Matrix2{}
	for col := 0; col < 2; col++ {
		for row := 0; row < 2; row++ {
			out.Data[col*2+row] = mt.At(row, 0)*other.At(0, col) + mt.At(row, 1)*other.At(1, col)
		}
	}
	return out
}

// MulColVec multiplies with the matrix on the left of a column vector.
func (mt Matrix2) MulColVec(v Vector2) Vector2 {
	return Vector2{
		mt.At(0, 0)*v.X + mt.At(0, 1)*v.Y,
		mt.At(1, 0)*v.X + mt.At(1, 1)*v.Y,
	}
}

// MulRowVec multiplies with the matrix on the right of a row vector.
func (mt Matrix2) MulRowVec(v Vector2) Vector2 {
	return Vector2{
		v.X*mt.At(0, 0) + v.Y*mt.At(1, 0),
		v.X*mt.At(0, 1) + v.Y*mt.At(1, 1),
	}
}

func (mt Matrix2) Add(other Matrix2) Matrix2 {
	out := Matrix2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Matrix2) Sub(other Matrix2) Matrix2 {
	out := Matrix2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Matrix2) MulScalar(s float32) Matrix2 {
	out := Matrix2{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * s
	}
	return out
}

func (mt Matrix2) Determinant() float32 {
	return mt.Data[0]*mt.Data[3] - mt.Data[2]*mt.Data[1]
}

func (mt Matrix2) Trace() float32 {
	return mt.Data[0] + mt.Data[3]
}

// Transpose swaps rows and columns in place.
func (mt *Matrix2) Transpose() {
	mt.Data[1], mt.Data[2] = mt.Data[2], mt.Data[1]
}

func (mt Matrix2) Transposed() Matrix2 {
	mt.Transpose()
	return mt
}

/**
 * @brief Inverts the matrix in place. A singular matrix is replaced with
 * the identity instead of producing non-finite values; use TryInvert when
 * that should surface as an error.
 */
func (mt *Matrix2) Invert() {
	if mt.TryInvert() != nil {
		*mt = NewMatrix2Identity()
	}
}

func (mt Matrix2) Inverted() Matrix2 {
	mt.Invert()
	return mt
}

// TryInvert inverts in place, reporting ErrSingularMatrix on a zero
// determinant and leaving the matrix untouched in that case.
func (mt *Matrix2) TryInvert() error {
	det := mt.Determinant()
	if det == 0 {
		return ErrSingularMatrix
	}
	d := 1.0 / det
	*mt = Matrix2{Data: [4]float32{
		mt.Data[3] * d, -mt.Data[1] * d,
		-mt.Data[2] * d, mt.Data[0] * d,
	}}
	return nil
}

func (mt Matrix2) Compare(other Matrix2, tolerance float32) bool {
	return NearSlice(mt.Data[:], other.Data[:], tolerance)
}

// AsSlice returns the flat column-major storage, aliasing the matrix.
func (mt *Matrix2) AsSlice() []float32 {
	return mt.Data[:]
}

// AsPtr returns the storage address for graphics-API upload.
func (mt *Matrix2) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(&mt.Data[0])
}
