package core

import (
	"fmt"
	"unsafe"
)

// Alignment is a byte-boundary requirement for a buffer. Only the
// enumerated power-of-two constants below are valid; anything else is
// rejected at construction time.
type Alignment uintptr

const (
	Align1    Alignment = 1
	Align2    Alignment = 2
	Align4    Alignment = 4
	Align8    Alignment = 8
	Align16   Alignment = 16
	Align32   Alignment = 32
	Align64   Alignment = 64
	Align128  Alignment = 128
	Align256  Alignment = 256
	Align512  Alignment = 512
	Align1024 Alignment = 1024
	Align2048 Alignment = 2048
	Align4096 Alignment = 4096
)

// Valid reports whether a is one of the supported power-of-two alignments.
func (a Alignment) Valid() bool {
	return a >= Align1 && a <= Align4096 && a&(a-1) == 0
}

// IsAligned reports whether p sits on an a-byte boundary.
func IsAligned(p unsafe.Pointer, a Alignment) bool {
	return uintptr(p)%uintptr(a) == 0
}

// AlignUp rounds n up to the next multiple of a.
func AlignUp(n uintptr, a Alignment) uintptr {
	return (n + uintptr(a) - 1) &^ (uintptr(a) - 1)
}

// AlignedFloat32s is a fixed-size float32 buffer whose first element is
// guaranteed to sit on the requested byte boundary. Go has no per-type
// alignment attribute, so the guarantee comes from over-allocating and
// offsetting into the backing array; the backing array is retained so the
// aligned window is never collected or moved independently.
type AlignedFloat32s struct {
	raw  []float32
	data []float32
}

// NewAlignedFloat32s allocates a buffer of n float32 values aligned to a.
// It panics if a is not a supported alignment value.
func NewAlignedFloat32s(n int, a Alignment) *AlignedFloat32s {
	if !a.Valid() {
		panic(fmt.Sprintf("core: invalid alignment %d; must be a power of two in [1, 4096]", a))
	}

	// Worst case we need a/4 extra elements to find an aligned boundary
	// (float32 allocations are already 4-byte aligned).
	pad := int(a) / 4
	if pad == 0 {
		pad = 1
	}
	raw := make([]float32, n+pad)

	off := 0
	for !IsAligned(unsafe.Pointer(&raw[off]), a) {
		off++
	}
	return &AlignedFloat32s{raw: raw, data: raw[off : off+n : off+n]}
}

// AlignedFloat32sFrom copies the given values into a freshly aligned buffer.
func AlignedFloat32sFrom(values []float32, a Alignment) *AlignedFloat32s {
	buf := NewAlignedFloat32s(len(values), a)
	copy(buf.data, values)
	return buf
}

// NewFloat32x4Array allocates storage for n 4-float lanes with the
// 16-byte alignment SIMD loads require.
func NewFloat32x4Array(lanes int) *AlignedFloat32s {
	return NewAlignedFloat32s(lanes*4, Align16)
}

// Len returns the number of elements in the aligned window.
func (b *AlignedFloat32s) Len() int { return len(b.data) }

// At returns the element at index i.
func (b *AlignedFloat32s) At(i int) float32 { return b.data[i] }

// Set stores v at index i.
func (b *AlignedFloat32s) Set(i int, v float32) { b.data[i] = v }

// Slice returns the aligned window. The slice aliases the buffer; it must
// not be grown with append if the alignment guarantee is to be kept.
func (b *AlignedFloat32s) Slice() []float32 { return b.data }

// Ptr returns the address of the first aligned element.
func (b *AlignedFloat32s) Ptr() unsafe.Pointer { return unsafe.Pointer(&b.data[0]) }
