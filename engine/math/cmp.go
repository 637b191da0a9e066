package math

/**
 * Tolerance-based equality for scalars and slices. These are pure
 * predicates; they never report errors and are not meant for hot paths.
 */

const k64Epsilon float64 = 2.220446049250313e-16

/**
 * @brief Reports whether a and b differ by at most tolerance.
 */
func Near(a, b, tolerance float32) bool {
	return kabs(a-b) <= tolerance
}

/**
 * @brief Reports whether a and b differ by at most tolerance, in float64.
 */
func Near64(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

/**
 * @brief Cross-precision comparison. The float32 is widened to float64
 * before comparing.
 */
func NearF32F64(a float32, b, tolerance float64) bool {
	return Near64(float64(a), b, tolerance)
}

/**
 * @brief Near with the float32 machine epsilon as the tolerance.
 */
func AlmostEq(a, b float32) bool {
	return Near(a, b, K_FLOAT_EPSILON)
}

/**
 * @brief Near64 with the float64 machine epsilon as the tolerance.
 */
func AlmostEq64(a, b float64) bool {
	return Near64(a, b, k64Epsilon)
}

/**
 * @brief Elementwise Near over two slices. Mismatched lengths compare
 * false; a single out-of-tolerance pair fails the whole comparison.
 */
func NearSlice(a, b []float32, tolerance float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Near(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}

/**
 * @brief NearSlice with the float32 machine epsilon as the tolerance.
 */
func AlmostEqSlice(a, b []float32) bool {
	return NearSlice(a, b, K_FLOAT_EPSILON)
}
