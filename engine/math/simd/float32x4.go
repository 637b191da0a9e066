// Package simd provides a 4-wide packed float abstraction and
// accelerated slice operations. The lane type below is portable; the
// slice operations dispatch to an accelerated backend where the build
// target supports it, with a generic fallback elsewhere. The elementwise
// operations produce bit-identical results on both backends. The
// reductions (Dot, Sum, Norm) accumulate in lane order under
// acceleration, and Sqrt may use a hardware approximation, so those are
// contracted to a tolerance rather than exact equality.
package simd

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Float32x4 is a 128-bit packed float vector.
type Float32x4 [4]float32

func NewFloat32x4(v0, v1, v2, v3 float32) Float32x4 {
	return Float32x4{v0, v1, v2, v3}
}

// Splat broadcasts one value to all four lanes.
func Splat(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

/**
 * @brief Builds a vector from up to 4 slice elements, zero-padding when
 * the slice is shorter.
 */
func FromSlice(s []float32) Float32x4 {
	out := Float32x4{}
	n := len(s)
	if n > 4 {
		n = 4
	}
	copy(out[:], s[:n])
	return out
}

// FromSliceExact reads 4 elements without revalidating the length. The
// caller has already checked that at least 4 elements are readable,
// typically while iterating a slice whose length is a multiple of 4.
func FromSliceExact(s []float32) Float32x4 {
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// LoadUnaligned reads 4 floats from p. The caller guarantees 4 readable
// floats at p; violating that is undefined behavior.
func LoadUnaligned(p unsafe.Pointer) Float32x4 {
	return *(*Float32x4)(p)
}

// LoadAligned reads 4 floats from p, which must additionally sit on a
// 16-byte boundary.
func LoadAligned(p unsafe.Pointer) Float32x4 {
	return *(*Float32x4)(p)
}

// StoreAligned writes the 4 lanes to p, which must be 16-byte aligned
// with 4 writable floats behind it.
func (v Float32x4) StoreAligned(p unsafe.Pointer) {
	*(*Float32x4)(p) = v
}

// StoreSlice copies the lanes into dst, which must hold at least 4
// elements.
func (v Float32x4) StoreSlice(dst []float32) {
	copy(dst, v[:])
}

func (v Float32x4) Add(other Float32x4) Float32x4 {
	return Float32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

func (v Float32x4) Sub(other Float32x4) Float32x4 {
	return Float32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

func (v Float32x4) Mul(other Float32x4) Float32x4 {
	return Float32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

func (v Float32x4) Div(other Float32x4) Float32x4 {
	return Float32x4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

func (v Float32x4) Neg() Float32x4 {
	return Float32x4{-v[0], -v[1], -v[2], -v[3]}
}

// Min is the componentwise minimum.
func (v Float32x4) Min(other Float32x4) Float32x4 {
	out := Float32x4{}
	for i := range v {
		if other[i] < v[i] {
			out[i] = other[i]
		} else {
			out[i] = v[i]
		}
	}
	return out
}

// Max is the componentwise maximum.
func (v Float32x4) Max(other Float32x4) Float32x4 {
	out := Float32x4{}
	for i := range v {
		if other[i] > v[i] {
			out[i] = other[i]
		} else {
			out[i] = v[i]
		}
	}
	return out
}

func (v Float32x4) Sqrt() Float32x4 {
	return Float32x4{
		math32.Sqrt(v[0]),
		math32.Sqrt(v[1]),
		math32.Sqrt(v[2]),
		math32.Sqrt(v[3]),
	}
}

// Sum reduces the four lanes to one value.
func (v Float32x4) Sum() float32 {
	return v[0] + v[1] + v[2] + v[3]
}
