package core

import "unsafe"

// Strided is a non-owning view over count elements of T spaced stride
// elements apart in some backing storage. A stride of 1 is a plain dense
// view; larger strides walk rows of column-major storage or interleaved
// attribute streams. The view never allocates and never frees; the caller
// keeps the backing storage alive for as long as the view is used.
type Strided[T any] struct {
	base   *T
	count  int
	stride int
}

// NewStrided builds a view over data starting at element offset, taking
// count elements spaced stride apart. It panics if the described walk
// steps outside data.
func NewStrided[T any](data []T, offset, count, stride int) Strided[T] {
	if stride < 1 {
		panic("core: strided view stride must be at least 1")
	}
	if count < 0 || offset < 0 {
		panic("core: strided view offset and count must be non-negative")
	}
	if count > 0 {
		last := offset + (count-1)*stride
		if last >= len(data) {
			panic("core: strided view walks past the end of its backing slice")
		}
	}
	var base *T
	if count > 0 {
		base = &data[offset]
	}
	return Strided[T]{base: base, count: count, stride: stride}
}

// StridedFromPtr builds a view directly over raw memory. The caller
// guarantees that count elements spaced stride apart are addressable
// starting at base.
func StridedFromPtr[T any](base *T, count, stride int) Strided[T] {
	if stride < 1 {
		panic("core: strided view stride must be at least 1")
	}
	return Strided[T]{base: base, count: count, stride: stride}
}

// Len returns the number of elements the view exposes.
func (s Strided[T]) Len() int { return s.count }

// Stride returns the element spacing of the view.
func (s Strided[T]) Stride() int { return s.stride }

func (s Strided[T]) elem(i int) *T {
	if i < 0 || i >= s.count {
		panic("core: strided view index out of range")
	}
	size := unsafe.Sizeof(*s.base)
	return (*T)(unsafe.Add(unsafe.Pointer(s.base), uintptr(i*s.stride)*size))
}

// At returns the element at index i.
func (s Strided[T]) At(i int) T { return *s.elem(i) }

// Set stores v at index i.
func (s Strided[T]) Set(i int, v T) { *s.elem(i) = v }

// Ptr returns the address of element i.
func (s Strided[T]) Ptr(i int) *T { return s.elem(i) }

// Gather copies the viewed elements into a new dense slice.
func (s Strided[T]) Gather() []T {
	out := make([]T, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = *s.elem(i)
	}
	return out
}

// Scatter copies values into the view. It panics if the lengths differ.
func (s Strided[T]) Scatter(values []T) {
	if len(values) != s.count {
		panic("core: scatter length does not match strided view length")
	}
	for i, v := range values {
		*s.elem(i) = v
	}
}

// Range returns a sub-view over elements [from, to) without copying.
func (s Strided[T]) Range(from, to int) Strided[T] {
	if from < 0 || to < from || to > s.count {
		panic("core: strided view range out of bounds")
	}
	var base *T
	if to > from {
		base = s.elem(from)
	}
	return Strided[T]{base: base, count: to - from, stride: s.stride}
}

// Dense reports whether the view is contiguous and can be treated as a
// plain slice.
func (s Strided[T]) Dense() bool { return s.stride == 1 }

// Slice returns the viewed elements as a plain slice. It panics if the
// view is not dense.
func (s Strided[T]) Slice() []T {
	if !s.Dense() {
		panic("core: cannot take a dense slice of a strided view")
	}
	if s.count == 0 {
		return nil
	}
	return unsafe.Slice(s.base, s.count)
}
