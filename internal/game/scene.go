package game

import (
	"image/color"

	"flycam/internal/components"
	"flycam/internal/engine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var staticPoseColor = color.RGBA{90, 140, 200, 255}

var staticQuery = query.NewQuery(filter.And(
	filter.Contains(components.TransformComponent),
	filter.Not(filter.Contains(components.KeyboardController)),
))

// scenePlugin draws the reference grid and the poses of entities that are
// not keyboard-controlled, so controlled motion has something to compare against.
type scenePlugin struct {
	gridHalf  float64
	gridStep  float64
	gridColor color.RGBA
}

func (p *scenePlugin) Name() string { return "scene" }

func (p *scenePlugin) Build(app *engine.App) error {
	app.AddSystem(engine.Update, "draw_ground_grid", p.drawGrid)
	app.AddSystem(engine.Update, "draw_static_poses", drawStaticPoses)
	return nil
}

func (p *scenePlugin) drawGrid(app *engine.App) error {
	app.Gizmos.Grid(p.gridHalf, p.gridStep, p.gridColor)
	return nil
}

func drawStaticPoses(app *engine.App) error {
	staticQuery.Each(app.World, func(entry *donburi.Entry) {
		app.Gizmos.Pose(*components.TransformComponent.Get(entry), staticPoseColor)
	})
	return nil
}
