package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionIdentity(t *testing.T) {
	id := NewQuaternionIdentity()
	assert.Equal(t, Quaternion{1, 0, 0, 0}, id)
	assert.InDelta(t, 1.0, id.Norm(), 1e-6)

	v := NewVector3(1, 2, 3)
	assert.True(t, id.RotateVec3(v).Compare(v, 1e-6))
}

func TestQuaternionFromAngleAxis(t *testing.T) {
	q := NewQuaternionFromAngleAxis(Degree(90), NewVector3Up())
	assert.InDelta(t, 1.0, q.Norm(), 1e-6)

	// Rotating +x by 90 degrees about +y lands on -z.
	out := q.RotateVec3(NewVector3Right())
	assert.True(t, out.Compare(Vector3{0, 0, -1}, 1e-6))

	// A non-unit axis is normalized first.
	q2 := NewQuaternionFromAngleAxis(Degree(90), Vector3{0, 10, 0})
	assert.True(t, q.Compare(q2, 1e-6))

	// A zero axis has no direction to rotate about.
	assert.Equal(t, NewQuaternionIdentity(), NewQuaternionFromAngleAxis(Degree(45), NewVector3Zero()))
}

func TestQuaternionHamiltonProduct(t *testing.T) {
	qy := NewQuaternionFromYaw(Degree(90))
	qp := NewQuaternionFromPitch(Degree(90))

	ab := qy.Mul(qp)
	ba := qp.Mul(qy)
	assert.False(t, ab.Compare(ba, 1e-4), "the Hamilton product is non-commutative")

	// Composition order: q.Mul(p) applies p first.
	v := NewVector3(0, 0, -1)
	composed := qy.Mul(qp).RotateVec3(v)
	stepwise := qy.RotateVec3(qp.RotateVec3(v))
	assert.True(t, composed.Compare(stepwise, 1e-5))
}

func TestQuaternionConjugateInverse(t *testing.T) {
	q := NewQuaternionFromAngleAxis(Degree(72), Vector3{1, 2, 2})

	// For a unit quaternion the inverse equals the conjugate.
	assert.True(t, q.Inverse().Compare(q.Conjugate(), 1e-6))
	assert.True(t, q.Mul(q.Inverse()).Compare(NewQuaternionIdentity(), 1e-6))

	scaled := q.MulScalar(2)
	assert.True(t, scaled.Mul(scaled.Inverse()).Compare(NewQuaternionIdentity(), 1e-5))
}

func TestAngleAxisRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		angle Degree
		axis  Vector3
	}{
		{"quarter about y", 90, Vector3{0, 1, 0}},
		{"third about diagonal", 120, Vector3{1, 1, 1}},
		{"small about x", 5, Vector3{1, 0, 0}},
		{"wide about skewed", 170, Vector3{2, -1, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuaternionFromAngleAxis(tt.angle, tt.axis)
			angle, axis := q.AngleAxis()
			assert.InDelta(t, float64(tt.angle.Radians()), float64(angle), 1e-3)
			assert.True(t, axis.Compare(tt.axis.Normalize(), 1e-3))
		})
	}

	// Zero rotation has no distinguished axis; +x is reported.
	angle, axis := NewQuaternionIdentity().AngleAxis()
	assert.InDelta(t, 0, float64(angle), 1e-6)
	assert.True(t, axis.Compare(NewVector3Right(), 1e-6))
}

func TestEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll Degree
	}{
		{"plain", 30, 20, 10},
		{"negative", -45, 15, -30},
		{"yaw only", 120, 0, 0},
		{"near gimbal but not at it", 50, 80, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewEulerAngles(tt.yaw, tt.pitch, tt.roll)
			out := NewQuaternionFromEulerAngles(in).EulerAngles()
			assert.True(t, out.Compare(in, 1e-3),
				"round trip: got %v, want %v", out, in)
		})
	}
}

func TestEulerGimbalClamp(t *testing.T) {
	in := NewEulerAngles(Degree(40), Degree(90), Degree(25))
	out := NewQuaternionFromEulerAngles(in).EulerAngles()

	// At +/-90 degrees pitch the yaw and roll axes collapse; only the
	// pitch and the combined turn survive. The extraction reports the
	// pitch correctly and folds the rest into the yaw.
	assert.InDelta(t, K_HALF_PI, float64(out.Pitch()), 1e-3)
	assert.InDelta(t, 0, float64(out.Roll()), 1e-3)
}

func TestQuaternionMatrixRoundTrip(t *testing.T) {
	q := NewQuaternionFromEulerAngles(NewEulerAngles(Degree(35), Degree(-20), Degree(65)))

	m := q.ToMatrix4()
	back := NewQuaternionFromMatrix4(m)

	// q and -q encode the same rotation.
	if back.Dot(q) < 0 {
		back = back.Neg()
	}
	assert.True(t, back.Compare(q, 1e-5))

	// The matrix rotates vectors the same way the quaternion does.
	v := NewVector3(1, -2, 0.5)
	viaMatrix := m.MulColVec(v.ToVector4(1)).XYZ()
	viaQuat := q.RotateVec3(v)
	assert.True(t, viaMatrix.Compare(viaQuat, 1e-5))
}

func TestQuaternionSlerp(t *testing.T) {
	a := NewQuaternionIdentity()
	b := NewQuaternionFromYaw(Degree(90))

	assert.True(t, a.Slerp(b, 0).Compare(a, 1e-5))
	assert.True(t, a.Slerp(b, 1).Compare(b, 1e-5))

	mid := a.Slerp(b, 0.5)
	want := NewQuaternionFromYaw(Degree(45))
	assert.True(t, mid.Compare(want, 1e-5))
	assert.InDelta(t, 1.0, mid.Norm(), 1e-5)

	// Nearly identical inputs take the linear fallback and stay unit.
	c := NewQuaternionFromYaw(Degree(0.01))
	near := a.Slerp(c, 0.5)
	assert.InDelta(t, 1.0, near.Norm(), 1e-5)
}

func TestRotateVec4PassesWThrough(t *testing.T) {
	q := NewQuaternionFromRoll(Degree(90))
	out := q.RotateVec4(NewVector4(1, 0, 0, 7))
	assert.True(t, out.Compare(Vector4{0, 1, 0, 7}, 1e-6))
}
