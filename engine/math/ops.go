package math

/**
 * Capability interfaces shared by the algebraic and geometric types.
 * A new type opts into the generic interpolation helpers by implementing
 * the relevant interface rather than inheriting anything.
 */

// Dotter is implemented by types with an inner product.
type Dotter[T any] interface {
	Dot(other T) float32
}

// Crosser is implemented by 3-component types with a cross product.
type Crosser[T any] interface {
	Cross(other T) T
}

// Lerper is implemented by types supporting an unclamped componentwise
// linear blend.
type Lerper[T any] interface {
	Lerp(other T, alpha float32) T
}

// Midpointer is implemented by types with a halfway blend.
type Midpointer[T any] interface {
	Midpoint(other T) T
}

/**
 * @brief Dot product over two equally sized slices. A length mismatch is
 * reported as a *SliceLengthError carrying the expected length.
 */
func DotSlices(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, &SliceLengthError{Expected: len(a), Actual: len(b)}
	}
	return DotSlicesUnchecked(a, b), nil
}

// DotSlicesUnchecked assumes b holds at least len(a) elements.
func DotSlicesUnchecked(a, b []float32) float32 {
	sum := float32(0)
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
