package math

// DualQuaternion jointly encodes rotation and translation as a pair of
// quaternions. The real part carries the rotation and must be kept unit
// length for the extraction methods to be meaningful; normalization is
// always explicit, never automatic.
type DualQuaternion struct {
	Real Quaternion
	Dual Quaternion
}

func NewDualQuaternion(real, dual Quaternion) DualQuaternion {
	return DualQuaternion{Real: real, Dual: dual}
}

func NewDualQuaternionIdentity() DualQuaternion {
	return DualQuaternion{Real: NewQuaternionIdentity()}
}

func NewDualQuaternionFromRotation(q Quaternion) DualQuaternion {
	return DualQuaternion{Real: q}
}

/**
 * @brief Encodes a translation-only transform: identity real part and a
 * pure-quaternion dual part carrying half the translation.
 */
func NewDualQuaternionFromTranslation(v Vector3) DualQuaternion {
	return DualQuaternion{
		Real: NewQuaternionIdentity(),
		Dual: Quaternion{0, v.X * 0.5, v.Y * 0.5, v.Z * 0.5},
	}
}

func NewDualQuaternionFromRotationTranslation(q Quaternion, v Vector3) DualQuaternion {
	return NewDualQuaternionFromTranslation(v).Mul(NewDualQuaternionFromRotation(q))
}

func NewDualQuaternionFromYaw(yaw Angle) DualQuaternion {
	return NewDualQuaternionFromRotation(NewQuaternionFromYaw(yaw))
}

func NewDualQuaternionFromPitch(pitch Angle) DualQuaternion {
	return NewDualQuaternionFromRotation(NewQuaternionFromPitch(pitch))
}

func NewDualQuaternionFromRoll(roll Angle) DualQuaternion {
	return NewDualQuaternionFromRotation(NewQuaternionFromRoll(roll))
}

// Rotation returns the rotation part.
func (dq DualQuaternion) Rotation() Quaternion {
	return dq.Real
}

/**
 * @brief Extracts the local-space translation as the vector part of
 * 2 * dual * conjugate(real). Requires a unit real part.
 */
func (dq DualQuaternion) Translation() Vector3 {
	t := dq.Dual.MulScalar(2.0).Mul(dq.Real.Conjugate())
	return Vector3{t.I, t.J, t.K}
}

// WorldTranslation reads the dual part directly; only meaningful when the
// real part is the identity rotation or the caller is working in the
// world frame.
func (dq DualQuaternion) WorldTranslation() Vector3 {
	return Vector3{dq.Dual.I * 2.0, dq.Dual.J * 2.0, dq.Dual.K * 2.0}
}

/**
 * @brief Dual-quaternion product, composing rotation and translation
 * together: real parts multiply, dual = real*dual' + dual*real'.
 */
func (dq DualQuaternion) Mul(other DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: dq.Real.Mul(other.Real),
		Dual: dq.Real.Mul(other.Dual).Add(dq.Dual.Mul(other.Real)),
	}
}

// Add is componentwise and exists only as an intermediate for blending;
// the sum of two rigid transforms is not itself a rigid transform.
func (dq DualQuaternion) Add(other DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: dq.Real.Add(other.Real),
		Dual: dq.Dual.Add(other.Dual),
	}
}

func (dq DualQuaternion) MulScalar(s float32) DualQuaternion {
	return DualQuaternion{Real: dq.Real.MulScalar(s), Dual: dq.Dual.MulScalar(s)}
}

func (dq DualQuaternion) Conjugate() DualQuaternion {
	return DualQuaternion{Real: dq.Real.Conjugate(), Dual: dq.Dual.Conjugate()}
}

// Normalize divides both parts by the real part's norm.
func (dq DualQuaternion) Normalize() DualQuaternion {
	n := dq.Real.Norm()
	return DualQuaternion{Real: dq.Real.DivScalar(n), Dual: dq.Dual.DivScalar(n)}
}

// Translate applies a local-space translation.
func (dq DualQuaternion) Translate(v Vector3) DualQuaternion {
	return dq.Mul(NewDualQuaternionFromTranslation(v))
}

// TranslateWorld applies a world-space translation.
func (dq DualQuaternion) TranslateWorld(v Vector3) DualQuaternion {
	return NewDualQuaternionFromTranslation(v).Mul(dq)
}

func (dq DualQuaternion) Rotate(q Quaternion) DualQuaternion {
	return dq.Mul(NewDualQuaternionFromRotation(q))
}

func (dq DualQuaternion) RotateYaw(yaw Angle) DualQuaternion {
	return dq.Rotate(NewQuaternionFromYaw(yaw))
}

func (dq DualQuaternion) RotatePitch(pitch Angle) DualQuaternion {
	return dq.Rotate(NewQuaternionFromPitch(pitch))
}

func (dq DualQuaternion) RotateRoll(roll Angle) DualQuaternion {
	return dq.Rotate(NewQuaternionFromRoll(roll))
}

func (dq DualQuaternion) Compare(other DualQuaternion, tolerance float32) bool {
	return dq.Real.Compare(other.Real, tolerance) && dq.Dual.Compare(other.Dual, tolerance)
}

// ToMatrix4 materializes the rigid transform as a 4x4 matrix.
func (dq DualQuaternion) ToMatrix4() Matrix4 {
	out := dq.Real.ToMatrix4()
	t := dq.Translation()
	out.Data[12] = t.X
	out.Data[13] = t.Y
	out.Data[14] = t.Z
	return out
}
