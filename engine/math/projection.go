package math

import "unsafe"

/**
 * Projection matrix builders. Both use the right-handed convention with
 * the camera looking down -z and OpenGL-style normalized device
 * coordinates (z in [-1, 1]); the resulting matrices are ready for
 * upload via AsPtr.
 */

// Projection wraps a ready-to-upload 4x4 projection matrix.
type Projection struct {
	matrix Matrix4
}

func NewProjectionIdentity() Projection {
	return Projection{matrix: NewMatrix4Identity()}
}

/**
 * @brief Builds an orthographic projection from an explicit clip volume.
 */
func NewProjectionOrthographic(cs ClipSpace) Projection {
	return Projection{matrix: NewMatrix4Orthographic(
		cs.Horizontal.Min, cs.Horizontal.Max,
		cs.Vertical.Min, cs.Vertical.Max,
		cs.Depth.Near, cs.Depth.Far,
	)}
}

/**
 * @brief Builds a perspective projection from a vertical field of view,
 * an aspect ratio and a depth range.
 */
func NewProjectionPerspective(fov Angle, aspectRatio float32, depth Depth) Projection {
	return Projection{matrix: NewMatrix4Perspective(fov, aspectRatio, depth.Near, depth.Far)}
}

// AsMatrix returns the underlying matrix by value.
func (p Projection) AsMatrix() Matrix4 {
	return p.matrix
}

// AsPtr returns the storage address of the column-major matrix data.
func (p *Projection) AsPtr() unsafe.Pointer {
	return p.matrix.AsPtr()
}

func (p *Projection) AsSlice() []float32 {
	return p.matrix.AsSlice()
}

/**
 * @brief Creates and returns an orthographic projection matrix.
 */
func NewMatrix4Orthographic(left, right, bottom, top, nearClip, farClip float32) Matrix4 {
	out := NewMatrix4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out.Data[0] = -2.0 * lr
	out.Data[5] = -2.0 * bt
	out.Data[10] = 2.0 * nf

	out.Data[12] = (left + right) * lr
	out.Data[13] = (top + bottom) * bt
	out.Data[14] = (farClip + nearClip) * nf
	return out
}

/**
 * @brief Creates and returns a perspective projection matrix from a
 * vertical field of view and an aspect ratio.
 */
func NewMatrix4Perspective(fov Angle, aspectRatio, nearClip, farClip float32) Matrix4 {
	halfTanFov := ktan(fov.Radians() * 0.5)
	out := Matrix4{}
	out.Data[0] = 1.0 / (aspectRatio * halfTanFov)
	out.Data[5] = 1.0 / halfTanFov
	out.Data[10] = -((farClip + nearClip) / (farClip - nearClip))
	out.Data[11] = -1.0
	out.Data[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return out
}
