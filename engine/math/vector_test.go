package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, Vector3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vector3{2, 4, 6}, a.MulScalar(2))
	assert.Equal(t, Vector3{0.5, 1, 1.5}, a.DivScalar(2))
	assert.Equal(t, Vector3{-1, -2, -3}, a.Neg())
	assert.Equal(t, float32(32), a.Dot(b))
}

func TestVector3Cross(t *testing.T) {
	x := NewVector3Right()
	y := NewVector3Up()

	// Right-handed: x cross y = +z.
	assert.True(t, x.Cross(y).Compare(Vector3{0, 0, 1}, 1e-6))
	assert.True(t, y.Cross(x).Compare(Vector3{0, 0, -1}, 1e-6))

	a := NewVector3(1, 2, 3)
	assert.True(t, a.Cross(a).Compare(NewVector3Zero(), 1e-6), "self cross is zero")
}

func TestVectorMagnitudes(t *testing.T) {
	assert.Equal(t, float32(20), NewVector3(4, 2, 0).LengthSquared())
	assert.Equal(t, float32(20), NewVector4(4, 2, 0, 0).LengthSquared())
	assert.InDelta(t, 5.0, NewVector2(3, 4).Length(), 1e-6)
	assert.InDelta(t, 1.0, NewVector3(2, 3, 6).Normalize().Length(), 1e-6)
}

func TestVectorDistances(t *testing.T) {
	assert.InDelta(t, 5.0, NewVector2(1, 1).Distance(NewVector2(4, 5)), 1e-6)
	assert.InDelta(t, 25.0, NewVector2(1, 1).SquareDistance(NewVector2(4, 5)), 1e-6)
	assert.InDelta(t, 5.0, NewVector3(1, 1, 2).Distance(NewVector3(4, 5, 2)), 1e-6)
	assert.InDelta(t, 25.0, NewVector3(1, 1, 2).SquareDistance(NewVector3(4, 5, 2)), 1e-6)
	assert.InDelta(t, 5.0, NewVector4(1, 1, 2, 7).Distance(NewVector4(4, 5, 2, 7)), 1e-6)
	assert.InDelta(t, 25.0, NewVector4(1, 1, 2, 7).SquareDistance(NewVector4(4, 5, 2, 7)), 1e-6)
	assert.Equal(t, float32(0), NewVector4One().Distance(NewVector4One()))
}

func TestVectorNormalizeZeroIsNaN(t *testing.T) {
	// Documented behavior: normalizing a zero vector is the caller's
	// bug; the components come back non-finite.
	n := NewVector3Zero().Normalize()
	assert.False(t, n.IsFinite())
}

func TestVectorLerp(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, -10, 4)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vector3{5, -5, 2}, a.Lerp(b, 0.5))
	assert.Equal(t, Vector3{5, -5, 2}, a.Midpoint(b))
	// Alpha past 1 extrapolates.
	assert.Equal(t, Vector3{20, -20, 8}, a.Lerp(b, 2))
}

func TestVectorFromSlice(t *testing.T) {
	v, err := NewVector3FromSlice([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Vector3{1, 2, 3}, v)

	_, err = NewVector3FromSlice([]float32{1, 2})
	require.Error(t, err)
	var lenErr *SliceLengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 3, lenErr.Expected)
	assert.Equal(t, 2, lenErr.Actual)

	_, err = NewVector4FromSlice([]float32{1, 2, 3, 4, 5})
	assert.Error(t, err)
	_, err = NewVector2FromSlice(nil)
	assert.Error(t, err)
}

func TestOwningViewBridge(t *testing.T) {
	v := NewVector3(1, 2, 3)
	view := v.Vec3()

	assert.Equal(t, float32(1), view.X())
	assert.Equal(t, float32(2), view.Y())
	assert.Equal(t, float32(3), view.Z())

	// The view aliases the owner in both directions.
	view.SetY(20)
	assert.Equal(t, float32(20), v.Y)
	v.Z = 30
	assert.Equal(t, float32(30), view.Z())
}

func TestViewConstruction(t *testing.T) {
	backing := []float32{1, 2, 3, 4}

	v4, err := NewVec4(backing)
	require.NoError(t, err)
	assert.Equal(t, Vector4{1, 2, 3, 4}, v4.ToVector4())

	xyz := v4.XYZ()
	xyz.SetX(9)
	assert.Equal(t, float32(9), backing[0], "XYZ re-slices the same storage")

	_, err = NewVec3(backing)
	assert.Error(t, err, "view construction requires the exact length")

	v3, err := NewVec3(backing[:3])
	require.NoError(t, err)
	assert.InDelta(t, 9*9+2*2+3*3, v3.Dot(v3), 1e-4)
}

func TestViewOpsWriteThrough(t *testing.T) {
	backing := []float32{3, 0, 4}
	v := NewVec3Unchecked(backing)

	assert.InDelta(t, 5.0, v.Length(), 1e-6)
	v.Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-6)
	assert.InDelta(t, 0.6, backing[0], 1e-6)

	v.Scale(2)
	assert.InDelta(t, 2.0, v.Length(), 1e-6)
}

func TestVector3Rotations(t *testing.T) {
	v := NewVector3(1, 0, 0)

	rz := v.RotateZ(Degree(90))
	assert.True(t, rz.Compare(Vector3{0, 1, 0}, 1e-6))

	ry := v.RotateY(Degree(90))
	assert.True(t, ry.Compare(Vector3{0, 0, -1}, 1e-6))

	up := NewVector3(0, 1, 0)
	rx := up.RotateX(Degree(90))
	assert.True(t, rx.Compare(Vector3{0, 0, 1}, 1e-6))

	// A full revolution is the identity within tolerance.
	assert.True(t, v.RotateZ(Turn(1)).Compare(v, 1e-5))
}

func TestIntegerVectors(t *testing.T) {
	a := NewVector3i(4, 2, 0)
	assert.Equal(t, int32(20), a.SquareMagnitude())
	assert.Equal(t, Vector3i{5, 4, 3}, a.Add(Vector3i{1, 2, 3}))
	assert.Equal(t, Vector3i{8, 4, 0}, a.MulScalar(2))
	assert.Equal(t, Vector3{4, 2, 0}, a.ToVector3())

	u := NewVector2u(3, 4)
	assert.Equal(t, uint32(25), u.SquareMagnitude())
	assert.Equal(t, Vector2{3, 4}, u.ToVector2())

	cross := NewVector3i(1, 0, 0).Cross(NewVector3i(0, 1, 0))
	assert.Equal(t, Vector3i{0, 0, 1}, cross)

	_, err := NewVector3iFromSlice([]int32{1})
	assert.Error(t, err)
	v4u, err := NewVector4uFromSlice([]uint32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, uint32(30), v4u.SquareMagnitude())
}

func TestSliceDot(t *testing.T) {
	got, err := DotSlices([]float32{1, 2, 3}, []float32{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, float32(32), got)

	_, err = DotSlices([]float32{1, 2}, []float32{1})
	var lenErr *SliceLengthError
	require.True(t, errors.As(err, &lenErr))
}
