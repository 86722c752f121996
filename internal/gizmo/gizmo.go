package gizmo

import (
	"image/color"

	"flycam/internal/components"

	"github.com/go-gl/mathgl/mgl64"
)

// Line is a single coloured world-space segment.
type Line struct {
	From  mgl64.Vec3
	To    mgl64.Vec3
	Color color.RGBA
}

// Gizmos is an immediate-mode buffer of debug lines for the current frame.
// Systems record into it during Update and the renderer strokes it in Draw.
type Gizmos struct {
	Enabled    bool
	AxisLength float64

	lines []Line
}

// New returns an enabled buffer drawing pose axes of the given length.
func New(axisLength float64) *Gizmos {
	return &Gizmos{Enabled: true, AxisLength: axisLength}
}

// Line records a segment from a to b.
func (g *Gizmos) Line(a, b mgl64.Vec3, c color.RGBA) {
	if !g.Enabled {
		return
	}
	g.lines = append(g.lines, Line{From: a, To: b, Color: c})
}

// Pose draws the three local axes of t, plus a longer tick along Forward.
func (g *Gizmos) Pose(t components.Transform, c color.RGBA) {
	if !g.Enabled {
		return
	}
	origin := t.Translation
	n := g.AxisLength
	g.Line(origin, origin.Add(t.LocalX().Mul(n)), c)
	g.Line(origin, origin.Add(t.LocalY().Mul(n)), c)
	g.Line(origin, origin.Add(t.LocalZ().Mul(n)), c)
	g.Line(origin, origin.Add(t.Forward().Mul(n*1.5)), c)
}

// Grid draws a square ground grid on the y=0 plane spanning [-half, half].
func (g *Gizmos) Grid(half, step float64, c color.RGBA) {
	if !g.Enabled || step <= 0 || half <= 0 {
		return
	}
	for v := -half; v <= half+step/2; v += step {
		g.Line(mgl64.Vec3{v, 0, -half}, mgl64.Vec3{v, 0, half}, c)
		g.Line(mgl64.Vec3{-half, 0, v}, mgl64.Vec3{half, 0, v}, c)
	}
}

// Lines returns the segments recorded since the last Clear.
func (g *Gizmos) Lines() []Line {
	return g.lines
}

// Clear drops all recorded segments, keeping the backing storage.
func (g *Gizmos) Clear() {
	g.lines = g.lines[:0]
}
