package gizmo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer strokes recorded gizmo lines onto the screen.
type Renderer struct {
	Camera    *Camera
	LineWidth float32
}

// NewRenderer creates a renderer for the given camera.
func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{Camera: cam, LineWidth: 1.5}
}

// Draw strokes every visible segment in g. The buffer is left intact so that
// repeated Draw calls between two updates show the same frame.
func (r *Renderer) Draw(screen *ebiten.Image, g *Gizmos) int {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	drawn := 0
	for _, l := range g.Lines() {
		x0, y0, x1, y1, ok := r.Camera.ProjectSegment(l.From, l.To, w, h)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), r.LineWidth, l.Color, true)
		drawn++
	}
	return drawn
}
