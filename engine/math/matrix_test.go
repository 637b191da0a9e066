package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixIdentityLaws(t *testing.T) {
	id := NewMatrix4Identity()
	m := NewMatrix4Translation(Vector3{1, 2, 3}).MulMat(NewMatrix4EulerY(Degree(30)))

	assert.True(t, id.MulMat(m).Compare(m, 1e-6))
	assert.True(t, m.MulMat(id).Compare(m, 1e-6))

	assert.Equal(t, float32(1), id.Determinant())
	assert.Equal(t, float32(0), NewMatrix4Zero().Determinant())
	assert.Equal(t, float32(4), id.Trace())

	assert.Equal(t, float32(1), NewMatrix3Identity().Determinant())
	assert.Equal(t, float32(3), NewMatrix3Identity().Trace())
	assert.Equal(t, float32(1), NewMatrix2Identity().Determinant())
	assert.Equal(t, float32(2), NewMatrix2Identity().Trace())
}

func TestMatrix4Storage(t *testing.T) {
	m := NewMatrix4Translation(Vector3{10, 20, 30})

	// Column-major: the translation column occupies elements 12..14.
	assert.Equal(t, float32(10), m.At(0, 3))
	assert.Equal(t, float32(20), m.At(1, 3))
	assert.Equal(t, float32(30), m.At(2, 3))
	assert.Equal(t, float32(10), m.Data[12])

	m.SetAt(3, 0, 7)
	assert.Equal(t, float32(7), m.Data[3])
}

func TestMatrix4ColRowViews(t *testing.T) {
	m := Matrix4{}
	for i := range m.Data {
		m.Data[i] = float32(i)
	}

	col1 := m.Col(1)
	assert.Equal(t, []float32{4, 5, 6, 7}, []float32(col1))

	// The column view aliases the matrix.
	col1.SetW(99)
	assert.Equal(t, float32(99), m.Data[7])

	row2 := m.Row(2)
	require.Equal(t, 4, row2.Len())
	assert.Equal(t, []float32{2, 6, 10, 14}, row2.Gather())

	row2.Set(0, 50)
	assert.Equal(t, float32(50), m.Data[2])
}

func TestMatrix4MulColVsRowVec(t *testing.T) {
	m := NewMatrix4Translation(Vector3{1, 2, 3})
	p := NewVector4(0, 0, 0, 1)

	// Column-vector convention carries the translation.
	assert.True(t, m.MulColVec(p).Compare(Vector4{1, 2, 3, 1}, 1e-6))

	// Row-vector convention is the transposed semantics: the same
	// matrix leaves the position untouched except for w.
	assert.True(t, m.MulRowVec(p).Compare(Vector4{0, 0, 0, 1}, 1e-6))

	// They agree on the transposed matrix.
	mt := m.Transposed()
	assert.True(t, mt.MulRowVec(p).Compare(m.MulColVec(p), 1e-6))
}

func TestMatrix4MulComposition(t *testing.T) {
	translate := NewMatrix4Translation(Vector3{5, 0, 0})
	rotate := NewMatrix4EulerZ(Degree(90))

	// Rotate first, then translate.
	combined := translate.MulMat(rotate)
	out := combined.MulColVec(NewVector4(1, 0, 0, 1))
	assert.True(t, out.Compare(Vector4{5, 1, 0, 1}, 1e-5))
}

func TestMatrix4Transpose(t *testing.T) {
	m := Matrix4{}
	for i := range m.Data {
		m.Data[i] = float32(i)
	}
	tp := m.Transposed()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, m.At(r, c), tp.At(c, r))
		}
	}
	// Transposing twice restores the original.
	assert.True(t, tp.Transposed().Compare(m, 0))
}

func TestMatrix4Inverse(t *testing.T) {
	m := NewMatrix4Translation(Vector3{1, 2, 3}).
		MulMat(NewMatrix4EulerXYZ(Degree(10), Degree(20), Degree(30))).
		MulMat(NewMatrix4Scale(Vector3{2, 2, 2}))

	inv := m.Inverted()
	assert.True(t, m.MulMat(inv).Compare(NewMatrix4Identity(), 1e-5))
	assert.True(t, inv.MulMat(m).Compare(NewMatrix4Identity(), 1e-5))
}

func TestSingularInversionFallsBackToIdentity(t *testing.T) {
	z := NewMatrix4Zero()
	z.Invert()
	assert.True(t, z.Compare(NewMatrix4Identity(), 0), "the all-zero matrix inverts to the identity")

	z3 := NewMatrix3Zero()
	z3.Invert()
	assert.True(t, z3.Compare(NewMatrix3Identity(), 0))

	z2 := NewMatrix2Zero()
	z2.Invert()
	assert.True(t, z2.Compare(NewMatrix2Identity(), 0))
}

func TestTryInvertReportsSingular(t *testing.T) {
	z := NewMatrix4Zero()
	err := z.TryInvert()
	require.ErrorIs(t, err, ErrSingularMatrix)
	assert.True(t, z.Compare(NewMatrix4Zero(), 0), "a failed TryInvert leaves the matrix untouched")

	m := NewMatrix4Scale(Vector3{2, 4, 8})
	require.NoError(t, m.TryInvert())
	assert.True(t, m.Compare(NewMatrix4Scale(Vector3{0.5, 0.25, 0.125}), 1e-6))
}

func TestMatrix3And2Inverse(t *testing.T) {
	m3 := NewMatrix3FromCols(
		Vector3{2, 0, 0},
		Vector3{0, 4, 0},
		Vector3{1, 0, 1},
	)
	inv := m3.Inverted()
	assert.True(t, m3.MulMat(inv).Compare(NewMatrix3Identity(), 1e-6))

	m2 := NewMatrix2(1, 2, 3, 4)
	assert.Equal(t, float32(-2), m2.Determinant())
	i2 := m2.Inverted()
	assert.True(t, m2.MulMat(i2).Compare(NewMatrix2Identity(), 1e-6))

	assert.ErrorIs(t, (&Matrix2{}).TryInvert(), ErrSingularMatrix)
	singular3 := NewMatrix3FromCols(Vector3{1, 2, 3}, Vector3{2, 4, 6}, Vector3{0, 0, 1})
	assert.ErrorIs(t, singular3.TryInvert(), ErrSingularMatrix)
}

func TestLookAtDirections(t *testing.T) {
	view := NewMatrix4LookAt(Vector3{0, 0, 5}, NewVector3Zero(), NewVector3Up())

	// Looking down -z from +5: the origin lands on the view axis,
	// 5 units in front of the camera.
	p := view.MulColVec(NewVector4(0, 0, 0, 1))
	assert.True(t, p.Compare(Vector4{0, 0, -5, 1}, 1e-5))
}

func TestMatrixViews(t *testing.T) {
	backing := make([]float32, 16)
	mv, err := NewMat4(backing)
	require.NoError(t, err)

	mv.Store(NewMatrix4Translation(Vector3{1, 2, 3}))
	assert.Equal(t, float32(1), backing[12])
	assert.Equal(t, float32(1), mv.At(0, 3))

	out := mv.MulColVec(NewVector4(0, 0, 0, 1))
	assert.True(t, out.Compare(Vector4{1, 2, 3, 1}, 1e-6))

	assert.Equal(t, []float32{1, 2, 3, 1}, []float32(mv.Col(3)))
	assert.Equal(t, []float32{0, 0, 1, 3}, mv.Row(2).Gather())

	round := mv.ToMatrix4()
	assert.True(t, round.Compare(NewMatrix4Translation(Vector3{1, 2, 3}), 0))

	_, err = NewMat4(backing[:10])
	assert.Error(t, err)
	_, err = NewMat3(backing[:9])
	assert.NoError(t, err)
	_, err = NewMat2(backing[:4])
	assert.NoError(t, err)
}

func TestMatrixDirectionVectors(t *testing.T) {
	id := NewMatrix4Identity()
	assert.True(t, id.Forward().Compare(Vector3{0, 0, -1}, 1e-6))
	assert.True(t, id.Up().Compare(Vector3{0, 1, 0}, 1e-6))
	assert.True(t, id.Right().Compare(Vector3{1, 0, 0}, 1e-6))
	assert.True(t, id.Backward().Compare(id.Forward().Neg(), 1e-6))
	assert.True(t, id.Down().Compare(id.Up().Neg(), 1e-6))
	assert.True(t, id.Left().Compare(id.Right().Neg(), 1e-6))
}
