package math

// Quaternion represents a rotation as (w, i, j, k). The rotation action
// (RotateVec3, ToMatrix4) is only a pure rotation for unit quaternions;
// keeping the norm at 1 is the caller's responsibility.
type Quaternion struct {
	W, I, J, K float32
}

func NewQuaternion(w, i, j, k float32) Quaternion {
	return Quaternion{W: w, I: i, J: j, K: k}
}

func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1.0}
}

func NewQuaternionZero() Quaternion {
	return Quaternion{}
}

/**
 * @brief Creates a quaternion rotating by angle about the given axis.
 * A non-unit axis is normalized first; a zero axis yields the identity.
 */
func NewQuaternionFromAngleAxis(angle Angle, axis Vector3) Quaternion {
	if axis.LengthSquared() == 0 {
		return NewQuaternionIdentity()
	}
	n := axis.Normalize()
	half := angle.Radians() * 0.5
	s := ksin(half)
	return Quaternion{kcos(half), s * n.X, s * n.Y, s * n.Z}
}

// Yaw rotates about the y axis, pitch about x, roll about z.
func NewQuaternionFromYaw(yaw Angle) Quaternion {
	return NewQuaternionFromAngleAxis(yaw, NewVector3Up())
}

func NewQuaternionFromPitch(pitch Angle) Quaternion {
	return NewQuaternionFromAngleAxis(pitch, NewVector3Right())
}

func NewQuaternionFromRoll(roll Angle) Quaternion {
	return NewQuaternionFromAngleAxis(roll, NewVector3Back())
}

/**
 * @brief Creates a quaternion from an orientation, composing yaw, then
 * pitch, then roll.
 */
func NewQuaternionFromEulerAngles(e EulerAngles) Quaternion {
	q := NewQuaternionFromYaw(e.Yaw())
	q = q.Mul(NewQuaternionFromPitch(e.Pitch()))
	return q.Mul(NewQuaternionFromRoll(e.Roll()))
}

/**
 * @brief Extracts a rotation quaternion from the upper-left 3x3 of the
 * given matrix, branching on the largest diagonal term to keep the
 * divisor well away from zero.
 */
func NewQuaternionFromMatrix4(mt Matrix4) Quaternion {
	m00, m01, m02 := mt.At(0, 0), mt.At(0, 1), mt.At(0, 2)
	m10, m11, m12 := mt.At(1, 0), mt.At(1, 1), mt.At(1, 2)
	m20, m21, m22 := mt.At(2, 0), mt.At(2, 1), mt.At(2, 2)

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2.0 * ksqrt(trace+1.0)
		return Quaternion{
			0.25 * s,
			(m21 - m12) / s,
			(m02 - m20) / s,
			(m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2.0 * ksqrt(1.0+m00-m11-m22)
		return Quaternion{
			(m21 - m12) / s,
			0.25 * s,
			(m01 + m10) / s,
			(m02 + m20) / s,
		}
	case m11 > m22:
		s := 2.0 * ksqrt(1.0+m11-m00-m22)
		return Quaternion{
			(m02 - m20) / s,
			(m01 + m10) / s,
			0.25 * s,
			(m12 + m21) / s,
		}
	default:
		s := 2.0 * ksqrt(1.0+m22-m00-m11)
		return Quaternion{
			(m10 - m01) / s,
			(m02 + m20) / s,
			(m12 + m21) / s,
			0.25 * s,
		}
	}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.W + other.W, q.I + other.I, q.J + other.J, q.K + other.K}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.W - other.W, q.I - other.I, q.J - other.J, q.K - other.K}
}

func (q Quaternion) MulScalar(s float32) Quaternion {
	return Quaternion{q.W * s, q.I * s, q.J * s, q.K * s}
}

func (q Quaternion) DivScalar(s float32) Quaternion {
	return Quaternion{q.W / s, q.I / s, q.J / s, q.K / s}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, -q.I, -q.J, -q.K}
}

/**
 * @brief Hamilton product. Non-commutative: q.Mul(p) composes p's
 * rotation followed by q's.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		q.W*other.W - q.I*other.I - q.J*other.J - q.K*other.K,
		q.W*other.I + q.I*other.W + q.J*other.K - q.K*other.J,
		q.W*other.J - q.I*other.K + q.J*other.W + q.K*other.I,
		q.W*other.K + q.I*other.J - q.J*other.I + q.K*other.W,
	}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.W*other.W + q.I*other.I + q.J*other.J + q.K*other.K
}

// Norm is the 4-component Euclidean length.
func (q Quaternion) Norm() float32 {
	return ksqrt(q.Dot(q))
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.I, -q.J, -q.K}
}

// Inverse is the conjugate scaled by the squared norm; for a unit
// quaternion it equals the conjugate.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().DivScalar(q.Dot(q))
}

func (q Quaternion) Normalize() Quaternion {
	return q.DivScalar(q.Norm())
}

// Lerp blends component-wise; the result is not unit length, renormalize
// before using it as a rotation.
func (q Quaternion) Lerp(other Quaternion, alpha float32) Quaternion {
	return Quaternion{
		LerpFloat(q.W, other.W, alpha),
		LerpFloat(q.I, other.I, alpha),
		LerpFloat(q.J, other.J, alpha),
		LerpFloat(q.K, other.K, alpha),
	}
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Near(q.W, other.W, tolerance) &&
		Near(q.I, other.I, tolerance) &&
		Near(q.J, other.J, tolerance) &&
		Near(q.K, other.K, tolerance)
}

/**
 * @brief Recovers the rotation angle and unit axis. A near-zero rotation
 * has no distinguished axis; the x axis is returned for it.
 */
func (q Quaternion) AngleAxis() (Radian, Vector3) {
	w := Clamp(q.W, -1.0, 1.0)
	angle := Radian(2.0 * kacos(w))
	s := ksqrt(1.0 - w*w)
	if s < K_ANGLE_EPSILON {
		return angle, NewVector3Right()
	}
	return angle, Vector3{q.I / s, q.J / s, q.K / s}
}

/**
 * @brief Recovers yaw, pitch and roll. Near the pitch singularity at
 * +/-90 degrees the roll is folded into the yaw and reported as zero.
 */
func (q Quaternion) EulerAngles() EulerAngles {
	// Rotation-matrix terms for the yaw*pitch*roll composition.
	m00 := 1.0 - 2.0*(q.J*q.J+q.K*q.K)
	m02 := 2.0 * (q.I*q.K + q.W*q.J)
	m10 := 2.0 * (q.I*q.J + q.W*q.K)
	m11 := 1.0 - 2.0*(q.I*q.I+q.K*q.K)
	m12 := 2.0 * (q.J*q.K - q.W*q.I)
	m20 := 2.0 * (q.I*q.K - q.W*q.J)
	m22 := 1.0 - 2.0*(q.I*q.I+q.J*q.J)

	sp := Clamp(-m12, -1.0, 1.0)
	pitch := Asin(sp)

	if kabs(sp) >= 1.0-K_ANGLE_EPSILON {
		// Gimbal lock: yaw and roll share an axis.
		return EulerAngles{Atan2(-m20, m00), pitch, 0}
	}
	return EulerAngles{Atan2(m02, m22), pitch, Atan2(m10, m11)}
}

func (q Quaternion) Yaw() Radian { return q.EulerAngles().Yaw() }

func (q Quaternion) Pitch() Radian { return q.EulerAngles().Pitch() }

func (q Quaternion) Roll() Radian { return q.EulerAngles().Roll() }

/**
 * @brief Applies the rotation to a vector via the sandwich product
 * q * v * q^-1. Requires a unit quaternion; not enforced here.
 */
func (q Quaternion) RotateVec3(v Vector3) Vector3 {
	qv := Vector3{q.I, q.J, q.K}
	t := qv.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

// RotateVec4 rotates the vector part and passes w through.
func (q Quaternion) RotateVec4(v Vector4) Vector4 {
	out := q.RotateVec3(v.XYZ())
	return out.ToVector4(v.W)
}

// Rotate composes another rotation onto q.
func (q Quaternion) Rotate(other Quaternion) Quaternion {
	return q.Mul(other)
}

func (q Quaternion) RotateByAngleAxis(angle Angle, axis Vector3) Quaternion {
	return q.Mul(NewQuaternionFromAngleAxis(angle, axis))
}

/**
 * @brief Spherical linear interpolation along the shortest arc. Inputs
 * are normalized first; nearly parallel quaternions fall back to a
 * normalized linear blend.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)
	if dot < 0 {
		v1 = v1.Neg()
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		return v0.Add(v1.Sub(v0).MulScalar(percentage)).Normalize()
	}

	theta0 := kacos(dot)
	theta := theta0 * percentage
	sinTheta := ksin(theta)
	sinTheta0 := ksin(theta0)

	s0 := kcos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return v0.MulScalar(s0).Add(v1.MulScalar(s1))
}

/**
 * @brief Creates a rotation matrix from the quaternion, for the
 * column-vector convention.
 */
func (q Quaternion) ToMatrix4() Matrix4 {
	n := q.Normalize()
	out := NewMatrix4Identity()
	out.SetAt(0, 0, 1.0-2.0*(n.J*n.J+n.K*n.K))
	out.SetAt(0, 1, 2.0*(n.I*n.J-n.W*n.K))
	out.SetAt(0, 2, 2.0*(n.I*n.K+n.W*n.J))
	out.SetAt(1, 0, 2.0*(n.I*n.J+n.W*n.K))
	out.SetAt(1, 1, 1.0-2.0*(n.I*n.I+n.K*n.K))
	out.SetAt(1, 2, 2.0*(n.J*n.K-n.W*n.I))
	out.SetAt(2, 0, 2.0*(n.I*n.K-n.W*n.J))
	out.SetAt(2, 1, 2.0*(n.J*n.K+n.W*n.I))
	out.SetAt(2, 2, 1.0-2.0*(n.I*n.I+n.J*n.J))
	return out
}
