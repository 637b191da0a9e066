package math

// Transform is a position, rotation and scale in the world with a lazily
// rebuilt local matrix. A transform may have a parent whose own transform
// is applied on top. Mutate through the methods so the cached matrix is
// invalidated correctly.
type Transform struct {
	Position Vector3
	Rotation Quaternion
	Scale    Vector3

	isDirty bool
	local   Matrix4
	Parent  *Transform
}

func NewTransform() *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(NewVector3Zero(), NewQuaternionIdentity(), NewVector3One())
	t.local = NewMatrix4Identity()
	return t
}

func NewTransformFromPosition(position Vector3) *Transform {
	t := NewTransform()
	t.SetPosition(position)
	return t
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	t := NewTransform()
	t.SetRotation(rotation)
	return t
}

func NewTransformFromPositionRotation(position Vector3, rotation Quaternion) *Transform {
	t := NewTransform()
	t.SetPositionRotation(position, rotation)
	return t
}

func NewTransformFromPositionRotationScale(position Vector3, rotation Quaternion, scale Vector3) *Transform {
	t := NewTransform()
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vector3) {
	t.Position = position
	t.isDirty = true
}

func (t *Transform) Translate(translation Vector3) {
	t.Position = t.Position.Add(translation)
	t.isDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.isDirty = true
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.isDirty = true
}

func (t *Transform) SetScale(scale Vector3) {
	t.Scale = scale
	t.isDirty = true
}

func (t *Transform) ScaleBy(scale Vector3) {
	t.Scale = t.Scale.Mul(scale)
	t.isDirty = true
}

func (t *Transform) SetPositionRotation(position Vector3, rotation Quaternion) {
	t.Position = position
	t.Rotation = rotation
	t.isDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vector3, rotation Quaternion, scale Vector3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.isDirty = true
}

func (t *Transform) TranslateRotate(translation Vector3, rotation Quaternion) {
	t.Position = t.Position.Add(translation)
	t.Rotation = t.Rotation.Mul(rotation)
	t.isDirty = true
}

// Local returns the cached local matrix, rebuilding it when a mutation
// has happened since the last call.
func (t *Transform) Local() Matrix4 {
	if t == nil {
		return NewMatrix4Identity()
	}
	if t.isDirty {
		m := NewMatrix4Translation(t.Position)
		m = m.MulMat(t.Rotation.ToMatrix4())
		m = m.MulMat(NewMatrix4Scale(t.Scale))
		t.local = m
		t.isDirty = false
	}
	return t.local
}

// World composes the local matrix with the parent chain.
func (t *Transform) World() Matrix4 {
	if t == nil {
		return NewMatrix4Identity()
	}
	local := t.Local()
	if t.Parent != nil {
		return t.Parent.World().MulMat(local)
	}
	return local
}
