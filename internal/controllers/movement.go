package controllers

import (
	"image/color"

	"flycam/internal/components"
	"flycam/internal/gizmo"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// DefaultSpeed is the movement speed in units per second.
const DefaultSpeed = 4.0

// PoseColor is the colour of the pose marker drawn for controlled entities.
var PoseColor = color.RGBA{128, 128, 128, 255}

var controlledQuery = query.NewQuery(filter.Contains(
	components.TransformComponent,
	components.KeyboardController,
))

// MoveControlled moves every keyboard-controlled entity by local*speed*dt,
// where local is expressed in the entity's own right/up/back basis, and
// draws its pose. It returns the number of entities visited.
func MoveControlled(w donburi.World, local mgl64.Vec3, dt, speed float64, g *gizmo.Gizmos, c color.RGBA) int {
	step := local.Mul(speed * dt)
	n := 0
	controlledQuery.Each(w, func(entry *donburi.Entry) {
		t := components.TransformComponent.Get(entry)
		t.Translation = t.Translation.Add(t.ToParent(step))
		if g != nil {
			g.Pose(*t, c)
		}
		n++
	})
	return n
}
