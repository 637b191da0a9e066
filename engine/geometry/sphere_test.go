package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereDistanceTo(t *testing.T) {
	s := NewSphere(NewPoint3Origin(), 1)

	// Surface distance, not center distance.
	assert.InDelta(t, 1.0, s.DistanceTo(NewPoint3(2, 0, 0)), 1e-6)
	assert.InDelta(t, 0.0, s.DistanceTo(NewPoint3(0, 1, 0)), 1e-6)

	// Points inside come back negative.
	assert.InDelta(t, -1.0, s.DistanceTo(NewPoint3Origin()), 1e-6)
}

func TestSphereIntersects(t *testing.T) {
	s := NewSphere(NewPoint3Origin(), 1)

	assert.True(t, s.Intersects(NewSphere(NewPoint3(1, 0, 0), 1)))

	// Touching at a single point still intersects.
	touching := NewSphere(NewPoint3(2, 0, 0), 1)
	assert.True(t, s.Intersects(touching))
	assert.True(t, touching.Intersects(s))

	assert.False(t, s.Intersects(NewSphere(NewPoint3(2.5, 0, 0), 1)))
}

func TestSphereEncloses(t *testing.T) {
	s := NewSphere(NewPoint3Origin(), 2)

	assert.True(t, s.Encloses(NewSphere(NewPoint3(0.5, 0, 0), 1)))

	// Internally tangent spheres are enclosed.
	assert.True(t, s.Encloses(NewSphere(NewPoint3(1, 0, 0), 1)))

	assert.False(t, s.Encloses(NewSphere(NewPoint3(1.5, 0, 0), 1)))
	assert.False(t, s.Encloses(NewSphere(NewPoint3Origin(), 3)))

	// A sphere encloses itself.
	assert.True(t, s.Encloses(s))
}

func TestSphereEnclosesPoint(t *testing.T) {
	s := NewSphere(NewPoint3(1, 1, 1), 1)

	assert.True(t, s.EnclosesPoint(s.Center()))
	assert.True(t, s.EnclosesPoint(NewPoint3(2, 1, 1)), "surface point is inclusive")
	assert.False(t, s.EnclosesPoint(NewPoint3(3, 1, 1)))
}

func TestSphereAccessors(t *testing.T) {
	s := NewSphere(NewPoint3(1, 2, 3), 4)
	assert.True(t, s.Center().Compare(NewPoint3(1, 2, 3), 1e-6))
	assert.Equal(t, float32(4), s.Radius())
}
