package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(5, -2, 9)

	assert.True(t, Linear(a, b, 0.0).Compare(a, K_FLOAT_EPSILON), "alpha 0 yields the start")
	assert.True(t, Linear(a, b, 1.0).Compare(b, K_FLOAT_EPSILON), "alpha 1 yields the end")
	assert.True(t, Linear(a, b, 0.5).Compare(a.Midpoint(b), K_FLOAT_EPSILON))
}

func TestLerpExtrapolates(t *testing.T) {
	a := NewVector2(0, 0)
	b := NewVector2(1, 2)

	assert.True(t, Linear(a, b, 2.0).Compare(NewVector2(2, 4), 1e-6))
	assert.True(t, Linear(a, b, -1.0).Compare(NewVector2(-1, -2), 1e-6))
}

func TestLerpFloat(t *testing.T) {
	assert.InDelta(t, 5.0, LerpFloat(float32(0), 10, 0.5), 1e-6)
	assert.InDelta(t, 10.0, LerpFloat(float64(10), 20, 0.0), 1e-12)
	assert.InDelta(t, 20.0, LerpFloat(float64(10), 20, 1.0), 1e-12)
}

/**
 * Every easing curve must still honor the endpoint law; only the shape
 * between the endpoints differs.
 */
func TestEasingEndpoints(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 10, 10)

	curves := map[string]func(from, to Vector3, alpha float32) Vector3{
		"circular":   Circular[Vector3],
		"sine":       Sine[Vector3],
		"cosine":     Cosine[Vector3],
		"smoothstep": Smoothstep[Vector3],
	}

	for name, curve := range curves {
		assert.True(t, curve(a, b, 0.0).Compare(a, 1e-6), name)
		assert.True(t, curve(a, b, 1.0).Compare(b, 1e-6), name)
	}
}

func TestEasingMidpoints(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(1, 1, 1)

	// Smoothstep and cosine are symmetric and pass through the midpoint.
	assert.True(t, Smoothstep(a, b, 0.5).Compare(a.Midpoint(b), 1e-6))
	assert.True(t, Cosine(a, b, 0.5).Compare(a.Midpoint(b), 1e-6))

	// Sine eases out: at alpha 0.5 it has already covered sin(pi/4).
	sineMid := Sine(a, b, 0.5)
	assert.InDelta(t, 0.70710678, sineMid.X, 1e-5)

	// Circular eases in: at alpha 0.5 it has only covered 1-sqrt(3)/2.
	circMid := Circular(a, b, 0.5)
	assert.InDelta(t, 0.13397459, circMid.X, 1e-5)
}

func TestQuadratic(t *testing.T) {
	from := NewVector2(0, 0)
	control := NewVector2(1, 2)
	to := NewVector2(2, 0)

	assert.True(t, Quadratic(from, control, to, 0.0).Compare(from, 1e-6))
	assert.True(t, Quadratic(from, control, to, 1.0).Compare(to, 1e-6))

	// At the midpoint the curve sits halfway between the chord midpoint
	// and the control point.
	mid := Quadratic(from, control, to, 0.5)
	assert.True(t, mid.Compare(NewVector2(1, 1), 1e-6))
}

func TestBilinear(t *testing.T) {
	x0y0 := NewVector3(0, 0, 0)
	x1y0 := NewVector3(1, 0, 0)
	x0y1 := NewVector3(0, 1, 0)
	x1y1 := NewVector3(1, 1, 0)

	assert.True(t, Bilinear(x0y0, x1y0, x0y1, x1y1, 0, 0).Compare(x0y0, 1e-6))
	assert.True(t, Bilinear(x0y0, x1y0, x0y1, x1y1, 1, 0).Compare(x1y0, 1e-6))
	assert.True(t, Bilinear(x0y0, x1y0, x0y1, x1y1, 0, 1).Compare(x0y1, 1e-6))
	assert.True(t, Bilinear(x0y0, x1y0, x0y1, x1y1, 1, 1).Compare(x1y1, 1e-6))
	assert.True(t, Bilinear(x0y0, x1y0, x0y1, x1y1, 0.5, 0.5).
		Compare(NewVector3(0.5, 0.5, 0), 1e-6))
}

func TestQuaternionLerpStaysUsableAfterNormalize(t *testing.T) {
	a := NewQuaternionIdentity()
	b := NewQuaternionFromYaw(Degree(90))

	blended := Linear(a, b, 0.5).Normalize()
	assert.InDelta(t, 1.0, blended.Norm(), 1e-6)

	half := NewQuaternionFromYaw(Degree(45))
	assert.True(t, blended.Compare(half, 1e-5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, float32(0), Clamp(float32(-2), 0, 1))
	assert.Equal(t, float32(1), Clamp(float32(9), 0, 1))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}
