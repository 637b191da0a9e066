package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	math "github.com/cadmium-engine/cadmium/engine/math"
)

func TestLineNormalizesDirection(t *testing.T) {
	l := NewLine(NewPoint3Origin(), math.NewVector3(0, 0, 5))
	assert.InDelta(t, 1.0, l.Direction().Length(), 1e-6)
	assert.True(t, l.Direction().Compare(math.NewVector3(0, 0, 1), 1e-6))
}

func TestLineThroughPoints(t *testing.T) {
	a := NewPoint3(1, 0, 0)
	b := NewPoint3(1, 4, 0)
	l := NewLineThroughPoints(a, b)

	assert.True(t, l.Origin().Compare(a, 1e-6))
	assert.True(t, l.Direction().Compare(math.NewVector3Up(), 1e-6))
	assert.True(t, l.ContainsPoint(b))
}

func TestLinePointAtDistance(t *testing.T) {
	l := NewLine(NewPoint3(1, 0, 0), math.NewVector3(1, 0, 0))

	assert.True(t, l.PointAtDistance(3).Compare(NewPoint3(4, 0, 0), 1e-6))
	assert.True(t, l.PointAtDistance(-2).Compare(NewPoint3(-1, 0, 0), 1e-6))
	assert.True(t, l.PointAtDistance(0).Compare(l.Origin(), 1e-6))
}

func TestLineDistanceTo(t *testing.T) {
	l := NewLine(NewPoint3Origin(), math.NewVector3(1, 0, 0))

	assert.InDelta(t, 0.0, l.DistanceTo(NewPoint3(7, 0, 0)), 1e-6)
	assert.InDelta(t, 2.0, l.DistanceTo(NewPoint3(3, 2, 0)), 1e-6)
	assert.InDelta(t, 5.0, l.DistanceTo(NewPoint3(0, 3, 4)), 1e-6)
}

func TestLineContainsPoint(t *testing.T) {
	diag := NewLine(NewPoint3(1, 1, 1), math.NewVector3(1, 2, 3))

	assert.True(t, diag.ContainsPoint(diag.Origin()))
	assert.True(t, diag.ContainsPoint(diag.PointAtDistance(5)))
	assert.True(t, diag.ContainsPoint(diag.PointAtDistance(-5)))
	assert.False(t, diag.ContainsPoint(NewPoint3(2, 2, 2)))

	// An axis-aligned line has zero direction components; offsets on
	// those axes disqualify the point outright.
	axis := NewLine(NewPoint3Origin(), math.NewVector3(1, 0, 0))
	assert.True(t, axis.ContainsPoint(NewPoint3(9, 0, 0)))
	assert.False(t, axis.ContainsPoint(NewPoint3(9, 0.001, 0)))
	assert.False(t, axis.ContainsPoint(NewPoint3(9, 0, -0.001)))
}

func TestLineIntersects(t *testing.T) {
	xAxis := NewLine(NewPoint3Origin(), math.NewVector3(1, 0, 0))
	yAxis := NewLine(NewPoint3Origin(), math.NewVector3(0, 1, 0))

	// Crossing at the origin.
	assert.True(t, xAxis.Intersects(yAxis))
	assert.True(t, yAxis.Intersects(xAxis))

	// Coplanar and crossing away from either origin.
	slanted := NewLine(NewPoint3(5, 5, 0), math.NewVector3(0, 1, 0))
	assert.True(t, xAxis.Intersects(slanted))

	// Skew: both perpendicular, but offset out of plane.
	skew := NewLine(NewPoint3(0, 0, 1), math.NewVector3(0, 1, 0))
	assert.False(t, xAxis.Intersects(skew))
}

func TestParallelLinesNeverIntersect(t *testing.T) {
	a := NewLine(NewPoint3Origin(), math.NewVector3(1, 0, 0))
	b := NewLine(NewPoint3(0, 1, 0), math.NewVector3(1, 0, 0))
	assert.False(t, a.Intersects(b))

	// Coincident lines count as parallel, not intersecting.
	c := NewLine(NewPoint3(5, 0, 0), math.NewVector3(-1, 0, 0))
	assert.False(t, a.Intersects(c))
}
