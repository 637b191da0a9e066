package math

/**
 * Angle unit types. Each unit is a float32 wrapper carrying its own
 * revolution constant; conversion between units is a multiply by a fixed
 * ratio. Trigonometric consumers take any Angle and normalize to radians
 * internally.
 */

const (
	/** @brief Tolerance used by the angle comparison helpers. */
	K_ANGLE_EPSILON float32 = 1e-5

	/** @brief One full revolution, per unit. */
	RadianRevolution  Radian  = Radian(K_PI_2)
	DegreeRevolution  Degree  = 360.0
	GradianRevolution Gradian = 400.0
	TurnRevolution    Turn    = 1.0
)

// Angle is satisfied by every angle unit type. Consumers convert through
// Radians before calling transcendental functions.
type Angle interface {
	Radians() float32
}

type Radian float32

type Degree float32

// Gradian is 1/400 of a revolution.
type Gradian float32

// Turn is a whole-revolution unit; 0.5 turns is a half rotation.
type Turn float32

func (r Radian) Radians() float32 { return float32(r) }

func (r Radian) ToDegrees() Degree {
	return Degree(float32(r) * K_RAD2DEG_MULTIPLIER)
}

func (r Radian) ToGradians() Gradian {
	return Gradian(float32(r) / float32(RadianRevolution) * float32(GradianRevolution))
}

func (r Radian) ToTurns() Turn {
	return Turn(float32(r) / float32(RadianRevolution))
}

func (d Degree) Radians() float32 { return float32(d) * K_DEG2RAD_MULTIPLIER }

func (d Degree) ToRadians() Radian { return Radian(d.Radians()) }

func (d Degree) ToGradians() Gradian {
	return Gradian(float32(d) / float32(DegreeRevolution) * float32(GradianRevolution))
}

func (d Degree) ToTurns() Turn {
	return Turn(float32(d) / float32(DegreeRevolution))
}

func (g Gradian) Radians() float32 {
	return float32(g) / float32(GradianRevolution) * float32(RadianRevolution)
}

func (g Gradian) ToRadians() Radian { return Radian(g.Radians()) }

func (g Gradian) ToDegrees() Degree {
	return Degree(float32(g) / float32(GradianRevolution) * float32(DegreeRevolution))
}

func (g Gradian) ToTurns() Turn {
	return Turn(float32(g) / float32(GradianRevolution))
}

func (t Turn) Radians() float32 { return float32(t) * float32(RadianRevolution) }

func (t Turn) ToRadians() Radian { return Radian(t.Radians()) }

func (t Turn) ToDegrees() Degree {
	return Degree(float32(t) * float32(DegreeRevolution))
}

func (t Turn) ToGradians() Gradian {
	return Gradian(float32(t) * float32(GradianRevolution))
}

/**
 * @brief Wrap normalizes an angle into [0, one revolution).
 */
func (r Radian) Wrap() Radian { return Radian(wrap(float32(r), float32(RadianRevolution))) }

func (d Degree) Wrap() Degree { return Degree(wrap(float32(d), float32(DegreeRevolution))) }

func (g Gradian) Wrap() Gradian { return Gradian(wrap(float32(g), float32(GradianRevolution))) }

func (t Turn) Wrap() Turn { return Turn(wrap(float32(t), float32(TurnRevolution))) }

func wrap(v, revolution float32) float32 {
	out := kmod(v, revolution)
	if out < 0 {
		out += revolution
	}
	return out
}

/**
 * @brief NearAngle reports whether two angles of any unit are within the
 * angle epsilon of each other, compared in radians.
 */
func NearAngle(a, b Angle) bool {
	return Near(a.Radians(), b.Radians(), K_ANGLE_EPSILON)
}

func (r Radian) Near(other Radian, tolerance float32) bool {
	return Near(float32(r), float32(other), tolerance)
}

func (r Radian) AlmostEq(other Radian) bool {
	return r.Near(other, K_ANGLE_EPSILON)
}

func (d Degree) Near(other Degree, tolerance float32) bool {
	return Near(float32(d), float32(other), tolerance)
}

func (d Degree) AlmostEq(other Degree) bool {
	return d.Near(other, K_ANGLE_EPSILON)
}

/**
 * Trigonometry over any angle unit.
 */
func Sin(a Angle) float32 {
	return ksin(a.Radians())
}

func Cos(a Angle) float32 {
	return kcos(a.Radians())
}

func Tan(a Angle) float32 {
	return ktan(a.Radians())
}

func SinCos(a Angle) (float32, float32) {
	r := a.Radians()
	return ksin(r), kcos(r)
}

func Asin(v float32) Radian {
	return Radian(kasin(v))
}

func Acos(v float32) Radian {
	return Radian(kacos(v))
}

func Atan(v float32) Radian {
	return Radian(katan(v))
}

func Atan2(y, x float32) Radian {
	return Radian(katan2(y, x))
}
