package math

import "unsafe"

/**
 * The single place where layout-compatible reinterpretation happens.
 * Every owning type that exposes a view (vectors, matrices, Euler angles)
 * funnels through these two helpers, so the layout invariants they rely
 * on are asserted once rather than at each call site:
 *
 *  - owning vectors are tightly packed consecutive float32 fields,
 *  - matrix Data arrays are flat float32 storage,
 *  - Radian is declared as float32, so [3]Radian is layout-identical
 *    to [3]float32.
 */

// viewFloats reinterprets n consecutive float32 values starting at base
// as a slice aliasing the same memory.
func viewFloats(base *float32, n int) []float32 {
	return unsafe.Slice(base, n)
}

// viewRadians is the inverse direction used by the Euler-angle bridge.
func viewRadians(base *Radian, n int) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(base)), n)
}
