//go:build (amd64 || arm64) && !purego

package simd

import "github.com/viterin/vek/vek32"

func dot(a, b []float32) float32 {
	return vek32.Dot(a, b)
}

func add(a, b []float32) []float32 {
	return vek32.Add(a, b)
}

func mul(a, b []float32) []float32 {
	return vek32.Mul(a, b)
}

func minimum(a, b []float32) []float32 {
	return vek32.Minimum(a, b)
}

func maximum(a, b []float32) []float32 {
	return vek32.Maximum(a, b)
}

func sqrtSlice(a []float32) []float32 {
	return vek32.Sqrt(a)
}

func sum(a []float32) float32 {
	return vek32.Sum(a)
}

func norm(a []float32) float32 {
	return vek32.Norm(a)
}
