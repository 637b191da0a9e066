package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerspectiveClipSpaceW(t *testing.T) {
	proj := NewMatrix4Perspective(Degree(90), 1.0, 0.1, 100.0)

	// 90 degree vertical fov with a square aspect means unit focal scales.
	assert.InDelta(t, 1.0, proj.Data[0], 1e-6)
	assert.InDelta(t, 1.0, proj.Data[5], 1e-6)

	// A point one unit down the view axis projects with clip-space w equal
	// to the view depth.
	clip := proj.MulColVec(NewVector4(0, 0, -1, 1))
	assert.InDelta(t, 1.0, clip.W, 1e-6)
	assert.InDelta(t, 0.0, clip.X, 1e-6)
	assert.InDelta(t, 0.0, clip.Y, 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	near := float32(0.1)
	far := float32(100.0)
	proj := NewMatrix4Perspective(Degree(90), 1.0, near, far)

	// The near plane lands on ndc z -1, the far plane on +1.
	nc := proj.MulColVec(NewVector4(0, 0, -near, 1))
	assert.InDelta(t, -1.0, nc.Z/nc.W, 1e-5)

	fc := proj.MulColVec(NewVector4(0, 0, -far, 1))
	assert.InDelta(t, 1.0, fc.Z/fc.W, 1e-4)
}

func TestPerspectiveAspectRatio(t *testing.T) {
	proj := NewMatrix4Perspective(Degree(90), 2.0, 0.1, 100.0)

	// A wide viewport squeezes x twice as hard as y.
	assert.InDelta(t, 0.5, proj.Data[0], 1e-6)
	assert.InDelta(t, 1.0, proj.Data[5], 1e-6)
}

func TestOrthographicMapsVolumeToCube(t *testing.T) {
	proj := NewMatrix4Orthographic(-10, 10, -5, 5, 0.1, 100)

	nearCorner := proj.MulColVec(NewVector4(10, 5, -0.1, 1))
	assert.InDelta(t, 1.0, nearCorner.X, 1e-5)
	assert.InDelta(t, 1.0, nearCorner.Y, 1e-5)
	assert.InDelta(t, -1.0, nearCorner.Z, 1e-5)
	assert.InDelta(t, 1.0, nearCorner.W, 1e-6)

	farCorner := proj.MulColVec(NewVector4(-10, -5, -100, 1))
	assert.InDelta(t, -1.0, farCorner.X, 1e-5)
	assert.InDelta(t, -1.0, farCorner.Y, 1e-5)
	assert.InDelta(t, 1.0, farCorner.Z, 1e-4)
}

func TestOrthographicOffCenter(t *testing.T) {
	proj := NewMatrix4Orthographic(0, 10, 0, 10, -1, 1)

	center := proj.MulColVec(NewVector4(5, 5, 0, 1))
	assert.InDelta(t, 0.0, center.X, 1e-6)
	assert.InDelta(t, 0.0, center.Y, 1e-6)
	assert.InDelta(t, 0.0, center.Z, 1e-6)
}

func TestProjectionWrapper(t *testing.T) {
	p := NewProjectionPerspective(Degree(90), 1.0, Depth{Near: 0.1, Far: 100})
	raw := NewMatrix4Perspective(Degree(90), 1.0, 0.1, 100)
	assert.True(t, p.AsMatrix().Compare(raw, K_FLOAT_EPSILON))

	ident := NewProjectionIdentity()
	assert.True(t, ident.AsMatrix().Compare(NewMatrix4Identity(), K_FLOAT_EPSILON))

	s := p.AsSlice()
	assert.Len(t, s, 16)
	assert.NotNil(t, p.AsPtr())
	// The slice aliases the wrapped matrix rather than copying it.
	s[0] = 42
	assert.Equal(t, float32(42), p.AsMatrix().Data[0])
}

func TestProjectionFromClipSpace(t *testing.T) {
	cs := NewClipSpaceSymmetric(20, 10, Depth{Near: 0.1, Far: 100})
	assert.Equal(t, float32(-10), cs.Horizontal.Min)
	assert.Equal(t, float32(10), cs.Horizontal.Max)
	assert.Equal(t, float32(-5), cs.Vertical.Min)
	assert.Equal(t, float32(5), cs.Vertical.Max)

	p := NewProjectionOrthographic(cs)
	raw := NewMatrix4Orthographic(-10, 10, -5, 5, 0.1, 100)
	assert.True(t, p.AsMatrix().Compare(raw, K_FLOAT_EPSILON))
}

func TestExtent(t *testing.T) {
	e := Extent{Min: -4, Max: 10}
	assert.Equal(t, float32(14), e.Length())
	assert.Equal(t, float32(3), e.Center())
}
