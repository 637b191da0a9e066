package math

import (
	"unsafe"

	"github.com/cadmium-engine/cadmium/engine/core"
)

// Matrix3 is a 3x3 float matrix in column-major storage: Data[col*3+row].
type Matrix3 struct {
	Data [9]float32
}

func NewMatrix3Identity() Matrix3 {
	return Matrix3{Data: [9]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

func NewMatrix3Zero() Matrix3 {
	return Matrix3{}
}

// NewMatrix3FromCols builds a matrix from its three column vectors.
func NewMatrix3FromCols(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{Data: [9]float32{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}}
}

func (mt Matrix3) At(row, col int) float32 {
	return mt.Data[col*3+row]
}

func (mt *Matrix3) SetAt(row, col int, v float32) {
	mt.Data[col*3+row] = v
}

// Col returns a view aliasing the matrix's storage for the given column.
func (mt *Matrix3) Col(col int) Vec3 {
	return Vec3(mt.Data[col*3 : col*3+3])
}

// Row returns a strided view walking the given row across columns.
func (mt *Matrix3) Row(row int) core.Strided[float32] {
	return core.NewStrided(mt.Data[:], row, 3, 3)
}

/**
 * @brief Standard matrix product: output column j is mt applied to
 * other's column j.
 */
func (mt Matrix3) MulMat(other Matrix3) Matrix3 {
	out := Matrix3{}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := float32(0)
			for k := 0; k < 3; k++ {
				sum += mt.At(row, k) * other.At(k, col)
			}
			out.Data[col*3+row] = sum
		}
	}
	return out
}

// MulColVec multiplies with the matrix on the left of a column vector.
func (mt Matrix3) MulColVec(v Vector3) Vector3 {
	return Vector3{
		mt.At(0, 0)*v.X + mt.At(0, 1)*v.Y + mt.At(0, 2)*v.Z,
		mt.At(1, 0)*v.X + mt.At(1, 1)*v.Y + mt.At(1, 2)*v.Z,
		mt.At(2, 0)*v.X + mt.At(2, 1)*v.Y + mt.At(2, 2)*v.Z,
	}
}

// MulRowVec multiplies with the matrix on the right of a row vector.
func (mt Matrix3) MulRowVec(v Vector3) Vector3 {
	return Vector3{
		v.X*mt.At(0, 0) + v.Y*mt.At(1, 0) + v.Z*mt.At(2, 0),
		v.X*mt.At(0, 1) + v.Y*mt.At(1, 1) + v.Z*mt.At(2, 1),
		v.X*mt.At(0, 2) + v.Y*mt.At(1, 2) + v.Z*mt.At(2, 2),
	}
}

func (mt Matrix3) Add(other Matrix3) Matrix3 {
	out := Matrix3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Matrix3) Sub(other Matrix3) Matrix3 {
	out := Matrix3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Matrix3) MulScalar(s float32) Matrix3 {
	out := Matrix3{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * s
	}
	return out
}

// Determinant expands cofactors along the first column.
func (mt Matrix3) Determinant() float32 {
	return mt.At(0, 0)*(mt.At(1, 1)*mt.At(2, 2)-mt.At(1, 2)*mt.At(2, 1)) -
		mt.At(0, 1)*(mt.At(1, 0)*mt.At(2, 2)-mt.At(1, 2)*mt.At(2, 0)) +
		mt.At(0, 2)*(mt.At(1, 0)*mt.At(2, 1)-mt.At(1, 1)*mt.At(2, 0))
}

func (mt Matrix3) Trace() float32 {
	return mt.At(0, 0) + mt.At(1, 1) + mt.At(2, 2)
}

// Transpose swaps rows and columns in place.
func (mt *Matrix3) Transpose() {
	d := &mt.Data
	d[1], d[3] = d[3], d[1]
	d[2], d[6] = d[6], d[2]
	d[5], d[7] = d[7], d[5]
}

func (mt Matrix3) Transposed() Matrix3 {
	mt.Transpose()
	return mt
}

/**
 * @brief Inverts the matrix in place. A singular matrix is replaced with
 * the identity instead of producing non-finite values; use TryInvert when
 * that should surface as an error.
 */
func (mt *Matrix3) Invert() {
	if mt.TryInvert() != nil {
		*mt = NewMatrix3Identity()
	}
}

func (mt Matrix3) Inverted() Matrix3 {
	mt.Invert()
	return mt
}

// TryInvert inverts in place via the adjugate, reporting
// ErrSingularMatrix on a zero determinant and leaving the matrix
// untouched in that case.
func (mt *Matrix3) TryInvert() error {
	det := mt.Determinant()
	if det == 0 {
		return ErrSingularMatrix
	}
	d := 1.0 / det

	out := Matrix3{}
	out.SetAt(0, 0, (mt.At(1, 1)*mt.At(2, 2)-mt.At(1, 2)*mt.At(2, 1))*d)
	out.SetAt(0, 1, (mt.At(0, 2)*mt.At(2, 1)-mt.At(0, 1)*mt.At(2, 2))*d)
	out.SetAt(0, 2, (mt.At(0, 1)*mt.At(1, 2)-mt.At(0, 2)*mt.At(1, 1))*d)
	out.SetAt(1, 0, (mt.At(1, 2)*mt.At(2, 0)-mt.At(1, 0)*mt.At(2, 2))*d)
	out.SetAt(1, 1, (mt.At(0, 0)*mt.At(2, 2)-mt.At(0, 2)*mt.At(2, 0))*d)
	out.SetAt(1, 2, (mt.At(0, 2)*mt.At(1, 0)-mt.At(0, 0)*mt.At(1, 2))*d)
	out.SetAt(2, 0, (mt.At(1, 0)*mt.At(2, 1)-mt.At(1, 1)*mt.At(2, 0))*d)
	out.SetAt(2, 1, (mt.At(0, 1)*mt.At(2, 0)-mt.At(0, 0)*mt.At(2, 1))*d)
	out.SetAt(2, 2, (mt.At(0, 0)*mt.At(1, 1)-mt.At(0, 1)*mt.At(1, 0))*d)

	*mt = out
	return nil
}

func (mt Matrix3) Compare(other Matrix3, tolerance float32) bool {
	return NearSlice(mt.Data[:], other.Data[:], tolerance)
}

// AsSlice returns the flat column-major storage, aliasing the matrix.
func (mt *Matrix3) AsSlice() []float32 {
	return mt.Data[:]
}

// AsPtr returns the storage address for graphics-API upload.
func (mt *Matrix3) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(&mt.Data[0])
}
