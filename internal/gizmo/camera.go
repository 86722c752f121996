package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a fixed perspective viewer used to place gizmos on screen.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // radians
	Near   float64
	Far    float64
}

// fallbackUp replaces Up when the view direction is parallel to it,
// e.g. a top-down camera with Up = +Y.
var fallbackUp = mgl64.Vec3{0, 0, -1}

func (c *Camera) view() mgl64.Mat4 {
	up := c.Up
	if c.Target.Sub(c.Eye).Cross(up).Len() < 1e-9 {
		up = fallbackUp
		if c.Target.Sub(c.Eye).Cross(up).Len() < 1e-9 {
			up = mgl64.Vec3{0, 1, 0}
		}
	}
	return mgl64.LookAtV(c.Eye, c.Target, up)
}

func (c *Camera) projection(w, h int) mgl64.Mat4 {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Project maps a world point to pixel coordinates on a w×h screen.
// ok is false when the point lies behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, w, h int) (x, y float64, ok bool) {
	v := c.view().Mul4x1(p.Vec4(1)).Vec3()
	if v.Z() > -c.Near {
		return 0, 0, false
	}
	x, y = c.toScreen(v, w, h)
	return x, y, true
}

// ProjectSegment projects a world segment, clipping it against the near plane.
// ok is false when the whole segment is behind the camera.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3, w, h int) (x0, y0, x1, y1 float64, ok bool) {
	view := c.view()
	va := view.Mul4x1(a.Vec4(1)).Vec3()
	vb := view.Mul4x1(b.Vec4(1)).Vec3()

	limit := -c.Near
	aBehind := va.Z() > limit
	bBehind := vb.Z() > limit
	switch {
	case aBehind && bBehind:
		return 0, 0, 0, 0, false
	case aBehind:
		va = clipToPlane(vb, va, limit)
	case bBehind:
		vb = clipToPlane(va, vb, limit)
	}

	x0, y0 = c.toScreen(va, w, h)
	x1, y1 = c.toScreen(vb, w, h)
	return x0, y0, x1, y1, true
}

// clipToPlane moves out along in→out until it reaches the plane z=limit.
func clipToPlane(in, out mgl64.Vec3, limit float64) mgl64.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

func (c *Camera) toScreen(viewPos mgl64.Vec3, w, h int) (float64, float64) {
	clip := c.projection(w, h).Mul4x1(viewPos.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * float64(w), (1 - ndcY) / 2 * float64(h)
}
