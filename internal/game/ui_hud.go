package game

import (
	"fmt"
	"image/color"

	"flycam/internal/components"
	"flycam/internal/input"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudLineHeight = 15
)

var (
	hudTextColor  = color.RGBA{220, 220, 220, 255}
	hudDimColor   = color.RGBA{140, 140, 140, 255}
	hudPanelColor = color.RGBA{0, 0, 0, 140}
)

var namedQuery = query.NewQuery(filter.Contains(components.TransformComponent, components.Name))

// HUD draws the debug overlay: held directions, velocity and entity positions.
type HUD struct {
	game *Game
}

func NewHUD(game *Game) *HUD {
	return &HUD{game: game}
}

// entityLine is one row of the entity list.
type entityLine struct {
	name       string
	pos        mgl64.Vec3
	controlled bool
}

func (h *HUD) lines() []string {
	dir := input.Direction{}
	if res, ok := query.NewQuery(filter.Contains(input.DirectionResource)).First(h.game.app.World); ok {
		dir = *input.DirectionResource.Get(res)
	}
	local := dir.Velocity()
	if h.game.controller.Normalize {
		local = dir.UnitVelocity()
	}

	var entities []entityLine
	namedQuery.Each(h.game.app.World, func(entry *donburi.Entry) {
		entities = append(entities, entityLine{
			name:       components.NameOf(entry),
			pos:        components.TransformComponent.Get(entry).Translation,
			controlled: entry.HasComponent(components.KeyboardController),
		})
	})
	return formatHUD(dir, local.Mul(h.game.controller.Speed), entities, h.game.app.Clock.Frame())
}

func formatHUD(dir input.Direction, velocity mgl64.Vec3, entities []entityLine, frame uint64) []string {
	out := []string{
		fmt.Sprintf("keys  %s", dir),
		fmt.Sprintf("vel   %s", formatVec(velocity)),
		fmt.Sprintf("frame %d", frame),
	}
	for _, e := range entities {
		marker := " "
		if e.controlled {
			marker = "*"
		}
		out = append(out, fmt.Sprintf("%s %-10s %s", marker, e.name, formatVec(e.pos)))
	}
	return out
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%6.2f, %6.2f, %6.2f)", v.X(), v.Y(), v.Z())
}

// Draw renders the overlay in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	lines := h.lines()
	lines = append(lines, fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if n := len(l) * 7; n > width {
			width = n
		}
	}
	panelH := (len(lines)+1)*hudLineHeight + 2*hudMargin
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudMargin), float32(panelH), hudPanelColor, false)

	y := hudMargin + face.Ascent
	for _, l := range lines {
		ebitext.Draw(screen, l, face, hudMargin, y, hudTextColor)
		y += hudLineHeight
	}
	ebitext.Draw(screen, "F1 gizmos  F2 hud  Esc quit", face, hudMargin, y, hudDimColor)
}
