package math

/**
 * Integer vector variants. These mirror the float vectors but expose
 * SquareMagnitude only, since an integer square root is not exact; convert
 * to the float variant first when a length is needed.
 */

type Vector2i struct {
	X, Y int32
}

type Vector3i struct {
	X, Y, Z int32
}

type Vector4i struct {
	X, Y, Z, W int32
}

type Vector2u struct {
	X, Y uint32
}

type Vector3u struct {
	X, Y, Z uint32
}

type Vector4u struct {
	X, Y, Z, W uint32
}

func NewVector2i(x, y int32) Vector2i { return Vector2i{x, y} }

func NewVector3i(x, y, z int32) Vector3i { return Vector3i{x, y, z} }

func NewVector4i(x, y, z, w int32) Vector4i { return Vector4i{x, y, z, w} }

func NewVector2u(x, y uint32) Vector2u { return Vector2u{x, y} }

func NewVector3u(x, y, z uint32) Vector3u { return Vector3u{x, y, z} }

func NewVector4u(x, y, z, w uint32) Vector4u { return Vector4u{x, y, z, w} }

func NewVector2iFromSlice(s []int32) (Vector2i, error) {
	if err := checkSliceLength(2, s); err != nil {
		return Vector2i{}, err
	}
	return Vector2i{s[0], s[1]}, nil
}

func NewVector3iFromSlice(s []int32) (Vector3i, error) {
	if err := checkSliceLength(3, s); err != nil {
		return Vector3i{}, err
	}
	return Vector3i{s[0], s[1], s[2]}, nil
}

func NewVector4iFromSlice(s []int32) (Vector4i, error) {
	if err := checkSliceLength(4, s); err != nil {
		return Vector4i{}, err
	}
	return Vector4i{s[0], s[1], s[2], s[3]}, nil
}

func NewVector2uFromSlice(s []uint32) (Vector2u, error) {
	if err := checkSliceLength(2, s); err != nil {
		return Vector2u{}, err
	}
	return Vector2u{s[0], s[1]}, nil
}

func NewVector3uFromSlice(s []uint32) (Vector3u, error) {
	if err := checkSliceLength(3, s); err != nil {
		return Vector3u{}, err
	}
	return Vector3u{s[0], s[1], s[2]}, nil
}

func NewVector4uFromSlice(s []uint32) (Vector4u, error) {
	if err := checkSliceLength(4, s); err != nil {
		return Vector4u{}, err
	}
	return Vector4u{s[0], s[1], s[2], s[3]}, nil
}

func (v Vector2i) Add(other Vector2i) Vector2i { return Vector2i{v.X + other.X, v.Y + other.Y} }

func (v Vector2i) Sub(other Vector2i) Vector2i { return Vector2i{v.X - other.X, v.Y - other.Y} }

func (v Vector2i) MulScalar(s int32) Vector2i { return Vector2i{v.X * s, v.Y * s} }

func (v Vector2i) DivScalar(s int32) Vector2i { return Vector2i{v.X / s, v.Y / s} }

func (v Vector2i) Dot(other Vector2i) int32 { return v.X*other.X + v.Y*other.Y }

func (v Vector2i) SquareMagnitude() int32 { return v.Dot(v) }

// ToVector2 converts per component to the float variant.
func (v Vector2i) ToVector2() Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3i) MulScalar(s int32) Vector3i { return Vector3i{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3i) DivScalar(s int32) Vector3i { return Vector3i{v.X / s, v.Y / s, v.Z / s} }

func (v Vector3i) Dot(other Vector3i) int32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3i) Cross(other Vector3i) Vector3i {
	return Vector3i{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3i) SquareMagnitude() int32 { return v.Dot(v) }

func (v Vector3i) ToVector3() Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vector4i) Add(other Vector4i) Vector4i {
	return Vector4i{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vector4i) Sub(other Vector4i) Vector4i {
	return Vector4i{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vector4i) MulScalar(s int32) Vector4i {
	return Vector4i{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4i) DivScalar(s int32) Vector4i {
	return Vector4i{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vector4i) Dot(other Vector4i) int32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4i) SquareMagnitude() int32 { return v.Dot(v) }

func (v Vector4i) ToVector4() Vector4 {
	return Vector4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func (v Vector2u) Add(other Vector2u) Vector2u { return Vector2u{v.X + other.X, v.Y + other.Y} }

func (v Vector2u) Sub(other Vector2u) Vector2u { return Vector2u{v.X - other.X, v.Y - other.Y} }

func (v Vector2u) MulScalar(s uint32) Vector2u { return Vector2u{v.X * s, v.Y * s} }

func (v Vector2u) DivScalar(s uint32) Vector2u { return Vector2u{v.X / s, v.Y / s} }

func (v Vector2u) Dot(other Vector2u) uint32 { return v.X*other.X + v.Y*other.Y }

func (v Vector2u) SquareMagnitude() uint32 { return v.Dot(v) }

func (v Vector2u) ToVector2() Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

func (v Vector3u) Add(other Vector3u) Vector3u {
	return Vector3u{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3u) Sub(other Vector3u) Vector3u {
	return Vector3u{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3u) MulScalar(s uint32) Vector3u { return Vector3u{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3u) DivScalar(s uint32) Vector3u { return Vector3u{v.X / s, v.Y / s, v.Z / s} }

func (v Vector3u) Dot(other Vector3u) uint32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3u) SquareMagnitude() uint32 { return v.Dot(v) }

func (v Vector3u) ToVector3() Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vector4u) Add(other Vector4u) Vector4u {
	return Vector4u{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vector4u) Sub(other Vector4u) Vector4u {
	return Vector4u{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vector4u) MulScalar(s uint32) Vector4u {
	return Vector4u{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4u) DivScalar(s uint32) Vector4u {
	return Vector4u{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vector4u) Dot(other Vector4u) uint32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4u) SquareMagnitude() uint32 { return v.Dot(v) }

func (v Vector4u) ToVector4() Vector4 {
	return Vector4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}
