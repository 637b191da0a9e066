package simd

import "fmt"

/**
 * Slice operations over []float32. The exported functions validate their
 * inputs and dispatch to lowercase backend functions selected at build
 * time; see ops_accel.go and ops_generic.go.
 */

func checkSameLength(op string, a, b []float32) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("simd: %s requires equal-length slices, got %d and %d", op, len(a), len(b)))
	}
}

// Dot returns the inner product of a and b. Panics on a length mismatch.
// Backends may accumulate in different orders; compare with a tolerance.
func Dot(a, b []float32) float32 {
	checkSameLength("Dot", a, b)
	return dot(a, b)
}

// Add returns the elementwise sum as a new slice.
func Add(a, b []float32) []float32 {
	checkSameLength("Add", a, b)
	return add(a, b)
}

// Mul returns the elementwise product as a new slice.
func Mul(a, b []float32) []float32 {
	checkSameLength("Mul", a, b)
	return mul(a, b)
}

// Min returns the elementwise minimum as a new slice.
func Min(a, b []float32) []float32 {
	checkSameLength("Min", a, b)
	return minimum(a, b)
}

// Max returns the elementwise maximum as a new slice.
func Max(a, b []float32) []float32 {
	checkSameLength("Max", a, b)
	return maximum(a, b)
}

// Sqrt returns the elementwise square root as a new slice. Backends may
// differ in the last bit.
func Sqrt(a []float32) []float32 {
	return sqrtSlice(a)
}

// Sum reduces the slice to the sum of its elements. Backends may
// accumulate in different orders; compare with a tolerance.
func Sum(a []float32) float32 {
	return sum(a)
}

// Norm returns the Euclidean length of the slice. Backends may
// accumulate in different orders; compare with a tolerance.
func Norm(a []float32) float32 {
	return norm(a)
}
