package math

import "golang.org/x/exp/constraints"

/**
 * Generic interpolation built purely on the Lerper capability. All of
 * these are pure and total for finite inputs; alpha is never clamped, so
 * values outside [0, 1] extrapolate.
 */

// LerpFloat blends two scalars: a + (b-a)*alpha.
func LerpFloat[T constraints.Float](a, b, alpha T) T {
	return a + (b-a)*alpha
}

// Linear is a single lerp.
func Linear[T Lerper[T]](from, to T, alpha float32) T {
	return from.Lerp(to, alpha)
}

/**
 * @brief Quadratic Bezier-style blend of three states built from two
 * nested lerps.
 */
func Quadratic[T Lerper[T]](from, control, to T, alpha float32) T {
	a := from.Lerp(control, alpha)
	b := control.Lerp(to, alpha)
	return a.Lerp(b, alpha)
}

// Circular remaps alpha along a quarter-circle arc before blending.
func Circular[T Lerper[T]](from, to T, alpha float32) T {
	return from.Lerp(to, 1.0-ksqrt(1.0-alpha*alpha))
}

// Sine remaps alpha through a quarter sine wave, easing out.
func Sine[T Lerper[T]](from, to T, alpha float32) T {
	return from.Lerp(to, ksin(alpha*K_HALF_PI))
}

// Cosine remaps alpha through a half cosine wave, easing both ends.
func Cosine[T Lerper[T]](from, to T, alpha float32) T {
	return from.Lerp(to, (1.0-kcos(alpha*K_PI))*0.5)
}

// Smoothstep remaps alpha through the cubic Hermite curve 3a^2 - 2a^3.
func Smoothstep[T Lerper[T]](from, to T, alpha float32) T {
	return from.Lerp(to, alpha*alpha*(3.0-2.0*alpha))
}

/**
 * @brief Bilinear blend over a 2D patch: two linear blends along x, then
 * one along y.
 */
func Bilinear[T Lerper[T]](x0y0, x1y0, x0y1, x1y1 T, alphaX, alphaY float32) T {
	bottom := x0y0.Lerp(x1y0, alphaX)
	top := x0y1.Lerp(x1y1, alphaX)
	return bottom.Lerp(top, alphaY)
}
