package components

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a translation, rotation and scale relative to the entity's parent.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// NewTransform returns an identity transform placed at pos.
func NewTransform(pos mgl64.Vec3) Transform {
	t := IdentityTransform()
	t.Translation = pos
	return t
}

// LocalX is the unit right vector of the transform.
func (t Transform) LocalX() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// LocalY is the unit up vector of the transform.
func (t Transform) LocalY() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}

// LocalZ is the unit back vector of the transform.
func (t Transform) LocalZ() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// Forward points along -LocalZ.
func (t Transform) Forward() mgl64.Vec3 {
	return t.LocalZ().Mul(-1)
}

// ToParent re-expresses a local-space vector in the parent's space,
// using the transform's right/up/back basis.
func (t Transform) ToParent(local mgl64.Vec3) mgl64.Vec3 {
	return t.LocalX().Mul(local.X()).
		Add(t.LocalY().Mul(local.Y())).
		Add(t.LocalZ().Mul(local.Z()))
}

// RotateY yaws the transform about the world up axis.
func (t *Transform) RotateY(angle float64) {
	t.Rotation = mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Mul(t.Rotation).Normalize()
}

// LookAt rotates the transform so that Forward points at target.
// It is a no-op when target coincides with the translation or the
// view direction is parallel to up.
func (t *Transform) LookAt(target, up mgl64.Vec3) {
	fwd := target.Sub(t.Translation)
	if fwd.Len() == 0 {
		return
	}
	fwd = fwd.Normalize()
	right := fwd.Cross(up)
	if right.Len() < 1e-9 {
		return
	}
	right = right.Normalize()
	newUp := right.Cross(fwd)
	basis := mgl64.Mat3FromCols(right, newUp, fwd.Mul(-1))
	t.Rotation = mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}
