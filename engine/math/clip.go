package math

// Depth is the near/far clipping plane pair of a view frustum.
type Depth struct {
	Near, Far float32
}

func NewDepth(near, far float32) Depth {
	return Depth{Near: near, Far: far}
}

// Extent is a 1D min/max range along one axis of the clip volume.
type Extent struct {
	Min, Max float32
}

func NewExtent(min, max float32) Extent {
	return Extent{Min: min, Max: max}
}

func (e Extent) Length() float32 {
	return e.Max - e.Min
}

func (e Extent) Center() float32 {
	return (e.Min + e.Max) * 0.5
}

// ClipSpace bundles the horizontal and vertical extents with a depth
// range, describing an orthographic clip volume.
type ClipSpace struct {
	Horizontal Extent
	Vertical   Extent
	Depth      Depth
}

func NewClipSpace(horizontal, vertical Extent, depth Depth) ClipSpace {
	return ClipSpace{Horizontal: horizontal, Vertical: vertical, Depth: depth}
}

// NewClipSpaceSymmetric centers the volume on the view axis.
func NewClipSpaceSymmetric(width, height float32, depth Depth) ClipSpace {
	hw, hh := width*0.5, height*0.5
	return ClipSpace{
		Horizontal: Extent{-hw, hw},
		Vertical:   Extent{-hh, hh},
		Depth:      depth,
	}
}
