package math

import (
	"unsafe"

	"github.com/cadmium-engine/cadmium/engine/core"
)

// Matrix4 is a 4x4 float matrix in column-major storage: Data[col*4+row].
// Consecutive memory walks a column before moving to the next, matching
// what native graphics APIs expect for upload.
type Matrix4 struct {
	Data [16]float32
}

func NewMatrix4Identity() Matrix4 {
	out := Matrix4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

func NewMatrix4Zero() Matrix4 {
	return Matrix4{}
}

func (mt Matrix4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

func (mt *Matrix4) SetAt(row, col int, v float32) {
	mt.Data[col*4+row] = v
}

// Col returns a view aliasing the matrix's storage for the given column.
func (mt *Matrix4) Col(col int) Vec4 {
	return Vec4(mt.Data[col*4 : col*4+4])
}

// Row returns a strided view walking the given row across columns.
func (mt *Matrix4) Row(row int) core.Strided[float32] {
	return core.NewStrided(mt.Data[:], row, 4, 4)
}

/**
 * @brief Standard matrix product: output column j is mt applied to
 * other's column j.
 */
func (mt Matrix4) MulMat(other Matrix4) Matrix4 {
	out := Matrix4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += mt.At(row, k) * other.At(k, col)
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// Mul is shorthand for MulMat.
func (mt Matrix4) Mul(other Matrix4) Matrix4 {
	return mt.MulMat(other)
}

// MulColVec multiplies with the matrix on the left of a column vector.
// Callers using the row-vector convention must use MulRowVec instead;
// mixing the two silently produces transposed results.
func (mt Matrix4) MulColVec(v Vector4) Vector4 {
	return Vector4{
		mt.At(0, 0)*v.X + mt.At(0, 1)*v.Y + mt.At(0, 2)*v.Z + mt.At(0, 3)*v.W,
		mt.At(1, 0)*v.X + mt.At(1, 1)*v.Y + mt.At(1, 2)*v.Z + mt.At(1, 3)*v.W,
		mt.At(2, 0)*v.X + mt.At(2, 1)*v.Y + mt.At(2, 2)*v.Z + mt.At(2, 3)*v.W,
		mt.At(3, 0)*v.X + mt.At(3, 1)*v.Y + mt.At(3, 2)*v.Z + mt.At(3, 3)*v.W,
	}
}

// MulRowVec multiplies with the matrix on the right of a row vector.
func (mt Matrix4) MulRowVec(v Vector4) Vector4 {
	return Vector4{
		v.X*mt.At(0, 0) + v.Y*mt.At(1, 0) + v.Z*mt.At(2, 0) + v.W*mt.At(3, 0),
		v.X*mt.At(0, 1) + v.Y*mt.At(1, 1) + v.Z*mt.At(2, 1) + v.W*mt.At(3, 1),
		v.X*mt.At(0, 2) + v.Y*mt.At(1, 2) + v.Z*mt.At(2, 2) + v.W*mt.At(3, 2),
		v.X*mt.At(0, 3) + v.Y*mt.At(1, 3) + v.Z*mt.At(2, 3) + v.W*mt.At(3, 3),
	}
}

func (mt Matrix4) Add(other Matrix4) Matrix4 {
	out := Matrix4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Matrix4) Sub(other Matrix4) Matrix4 {
	out := Matrix4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Matrix4) MulScalar(s float32) Matrix4 {
	out := Matrix4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * s
	}
	return out
}

// Determinant expands cofactors along the first column, sharing the
// cofactor terms with the inversion path.
func (mt Matrix4) Determinant() float32 {
	c0, c4, c8, c12 := mt.firstColCofactors()
	m := &mt.Data
	return m[0]*c0 + m[1]*c4 + m[2]*c8 + m[3]*c12
}

func (mt *Matrix4) firstColCofactors() (float32, float32, float32, float32) {
	m := &mt.Data
	c0 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c4 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c8 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c12 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	return c0, c4, c8, c12
}

func (mt Matrix4) Trace() float32 {
	return mt.Data[0] + mt.Data[5] + mt.Data[10] + mt.Data[15]
}

// Transpose swaps rows and columns in place.
func (mt *Matrix4) Transpose() {
	d := &mt.Data
	d[1], d[4] = d[4], d[1]
	d[2], d[8] = d[8], d[2]
	d[3], d[12] = d[12], d[3]
	d[6], d[9] = d[9], d[6]
	d[7], d[13] = d[13], d[7]
	d[11], d[14] = d[14], d[11]
}

func (mt Matrix4) Transposed() Matrix4 {
	mt.Transpose()
	return mt
}

/**
 * @brief Inverts the matrix in place. A singular matrix is replaced with
 * the identity rather than propagating non-finite values through a render
 * pipeline; use TryInvert when inversion failure should surface as an
 * error instead.
 */
func (mt *Matrix4) Invert() {
	if mt.TryInvert() != nil {
		*mt = NewMatrix4Identity()
	}
}

func (mt Matrix4) Inverted() Matrix4 {
	mt.Invert()
	return mt
}

// TryInvert inverts in place via the adjugate, reporting
// ErrSingularMatrix on a zero determinant and leaving the matrix
// untouched in that case.
func (mt *Matrix4) TryInvert() error {
	m := &mt.Data
	var inv [16]float32

	inv[0], inv[4], inv[8], inv[12] = mt.firstColCofactors()

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return ErrSingularMatrix
	}

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	d := 1.0 / det
	for i := range inv {
		m[i] = inv[i] * d
	}
	return nil
}

func (mt Matrix4) Compare(other Matrix4, tolerance float32) bool {
	return NearSlice(mt.Data[:], other.Data[:], tolerance)
}

// AsSlice returns the flat column-major storage, aliasing the matrix.
func (mt *Matrix4) AsSlice() []float32 {
	return mt.Data[:]
}

// Mat4 returns a full view over the matrix's storage.
func (mt *Matrix4) Mat4() Mat4 {
	return Mat4(mt.Data[:])
}

// AsPtr returns the storage address for upload to graphics APIs expecting
// a tightly packed column-major 4x4 float buffer.
func (mt *Matrix4) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(&mt.Data[0])
}

// ------------------------------------------
// Builders
// ------------------------------------------

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMatrix4Translation(position Vector3) Matrix4 {
	out := NewMatrix4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// NewMatrix4FromQuaternion builds the rotation matrix of q.
func NewMatrix4FromQuaternion(q Quaternion) Matrix4 {
	return q.ToMatrix4()
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMatrix4Scale(scale Vector3) Matrix4 {
	out := NewMatrix4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

/**
 * @brief Creates a rotation matrix about the x axis.
 */
func NewMatrix4EulerX(angle Angle) Matrix4 {
	out := NewMatrix4Identity()
	s, c := SinCos(angle)
	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a rotation matrix about the y axis.
 */
func NewMatrix4EulerY(angle Angle) Matrix4 {
	out := NewMatrix4Identity()
	s, c := SinCos(angle)
	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a rotation matrix about the z axis.
 */
func NewMatrix4EulerZ(angle Angle) Matrix4 {
	out := NewMatrix4Identity()
	s, c := SinCos(angle)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis
 * rotations, applied in that order.
 */
func NewMatrix4EulerXYZ(x, y, z Angle) Matrix4 {
	out := NewMatrix4EulerX(x).MulMat(NewMatrix4EulerY(y))
	return out.MulMat(NewMatrix4EulerZ(z))
}

/**
 * @brief Creates and returns a view matrix looking at target from
 * position with the given up vector.
 */
func NewMatrix4LookAt(position, target, up Vector3) Matrix4 {
	zAxis := target.Sub(position).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	out := Matrix4{}
	out.Data[0] = xAxis.X
	out.Data[1] = yAxis.X
	out.Data[2] = -zAxis.X
	out.Data[4] = xAxis.Y
	out.Data[5] = yAxis.Y
	out.Data[6] = -zAxis.Y
	out.Data[8] = xAxis.Z
	out.Data[9] = yAxis.Z
	out.Data[10] = -zAxis.Z
	out.Data[12] = -xAxis.Dot(position)
	out.Data[13] = -yAxis.Dot(position)
	out.Data[14] = zAxis.Dot(position)
	out.Data[15] = 1.0
	return out
}

// ------------------------------------------
// Direction vectors
// ------------------------------------------

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (mt Matrix4) Forward() Vector3 {
	return Vector3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 */
func (mt Matrix4) Backward() Vector3 {
	return Vector3{mt.Data[2], mt.Data[6], mt.Data[10]}.Normalize()
}

/**
 * @brief Returns an upward vector relative to the provided matrix.
 */
func (mt Matrix4) Up() Vector3 {
	return Vector3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 */
func (mt Matrix4) Down() Vector3 {
	return Vector3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalize()
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 */
func (mt Matrix4) Left() Vector3 {
	return Vector3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalize()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (mt Matrix4) Right() Vector3 {
	return Vector3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalize()
}
