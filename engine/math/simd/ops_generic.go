//go:build (!amd64 && !arm64) || purego

package simd

import "github.com/chewxy/math32"

func dot(a, b []float32) float32 {
	acc := float32(0)
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

func add(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func mul(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

func minimum(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		if b[i] < a[i] {
			out[i] = b[i]
		} else {
			out[i] = a[i]
		}
	}
	return out
}

func maximum(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		if b[i] > a[i] {
			out[i] = b[i]
		} else {
			out[i] = a[i]
		}
	}
	return out
}

func sqrtSlice(a []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = math32.Sqrt(a[i])
	}
	return out
}

func sum(a []float32) float32 {
	acc := float32(0)
	for _, v := range a {
		acc += v
	}
	return acc
}

func norm(a []float32) float32 {
	return math32.Sqrt(dot(a, a))
}
