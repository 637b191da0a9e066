package math

/**
 * EulerAngles holds an orientation as yaw, pitch and roll, stored as
 * radians in that order. The storage is layout-identical to three packed
 * float32 values, which is what makes the Vec3 bridge below valid.
 */
type EulerAngles [3]Radian

// NewEulerAngles builds an orientation from any combination of angle units.
func NewEulerAngles(yaw, pitch, roll Angle) EulerAngles {
	return EulerAngles{
		Radian(yaw.Radians()),
		Radian(pitch.Radians()),
		Radian(roll.Radians()),
	}
}

func NewEulerAnglesZero() EulerAngles {
	return EulerAngles{}
}

func NewEulerAnglesFromYaw(yaw Angle) EulerAngles {
	return EulerAngles{Radian(yaw.Radians()), 0, 0}
}

func NewEulerAnglesFromPitch(pitch Angle) EulerAngles {
	return EulerAngles{0, Radian(pitch.Radians()), 0}
}

func NewEulerAnglesFromRoll(roll Angle) EulerAngles {
	return EulerAngles{0, 0, Radian(roll.Radians())}
}

func (e EulerAngles) Yaw() Radian { return e[0] }

func (e EulerAngles) Pitch() Radian { return e[1] }

func (e EulerAngles) Roll() Radian { return e[2] }

func (e *EulerAngles) SetYaw(yaw Angle) { e[0] = Radian(yaw.Radians()) }

func (e *EulerAngles) SetPitch(pitch Angle) { e[1] = Radian(pitch.Radians()) }

func (e *EulerAngles) SetRoll(roll Angle) { e[2] = Radian(roll.Radians()) }

func (e EulerAngles) Add(other EulerAngles) EulerAngles {
	return EulerAngles{e[0] + other[0], e[1] + other[1], e[2] + other[2]}
}

func (e EulerAngles) Sub(other EulerAngles) EulerAngles {
	return EulerAngles{e[0] - other[0], e[1] - other[1], e[2] - other[2]}
}

func (e EulerAngles) MulScalar(scalar float32) EulerAngles {
	s := Radian(scalar)
	return EulerAngles{e[0] * s, e[1] * s, e[2] * s}
}

func (e EulerAngles) DivScalar(scalar float32) EulerAngles {
	s := Radian(scalar)
	return EulerAngles{e[0] / s, e[1] / s, e[2] / s}
}

// Wrap normalizes all three angles into [0, 2*PI).
func (e EulerAngles) Wrap() EulerAngles {
	return EulerAngles{e[0].Wrap(), e[1].Wrap(), e[2].Wrap()}
}

/**
 * @brief Compares the three angles pairwise against a tolerance in radians.
 */
func (e EulerAngles) Compare(other EulerAngles, tolerance float32) bool {
	for i := range e {
		if !Near(float32(e[i]), float32(other[i]), tolerance) {
			return false
		}
	}
	return true
}

// Vec3 returns a view aliasing the three angles as raw float32 values in
// yaw, pitch, roll order. Writes through the view are visible in e.
func (e *EulerAngles) Vec3() Vec3 {
	return Vec3(viewRadians(&e[0], 3))
}

// ToVector3 copies the three angles into an owning vector.
func (e EulerAngles) ToVector3() Vector3 {
	return Vector3{float32(e[0]), float32(e[1]), float32(e[2])}
}
