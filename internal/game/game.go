package game

import (
	"fmt"
	"image/color"
	"time"

	"flycam/internal/components"
	"flycam/internal/config"
	"flycam/internal/controllers"
	"flycam/internal/engine"
	"flycam/internal/gizmo"
	"flycam/internal/input"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{16, 20, 24, 255}

// Game hosts the keyboard controller inside an ebiten window.
type Game struct {
	config     *config.Config
	logger     *zap.Logger
	app        *engine.App
	keys       input.KeySource
	controller *controllers.KeyboardControllerPlugin
	renderer   *gizmo.Renderer
	loop       *GameLoop

	showHUD bool

	perfLowTPSSince time.Time
	perfLastLog     time.Time
}

// NewGame builds a game reading the live keyboard and wall clock.
func NewGame(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	return newGame(cfg, logger, input.EbitenKeys{}, engine.RealTimeProvider{})
}

func newGame(cfg *config.Config, logger *zap.Logger, keys input.KeySource, tp engine.TimeProvider) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bindings, err := cfg.Keys.Bindings()
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	gizmos := gizmo.New(cfg.Gizmo.AxisLength)
	gizmos.Enabled = cfg.Gizmo.Enabled
	clock := engine.NewClock(tp, cfg.GetFrameDuration(), cfg.GetMaxDelta())
	app := engine.NewApp(clock, gizmos, logger)

	controller := controllers.NewKeyboardControllerPlugin()
	controller.Keys = keys
	controller.Bindings = bindings
	controller.Speed = cfg.GetMoveSpeed()
	controller.Normalize = cfg.Movement.NormalizeDiagonal
	controller.Color = cfg.GetGizmoColor()

	g := &Game{
		config:     cfg,
		logger:     logger,
		app:        app,
		keys:       keys,
		controller: controller,
		renderer: gizmo.NewRenderer(&gizmo.Camera{
			Eye:    cfg.GetCameraEye(),
			Target: cfg.GetCameraTarget(),
			Up:     mgl64.Vec3{0, 1, 0},
			FovY:   cfg.GetCameraFOV(),
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
		}),
		showHUD: cfg.Display.ShowHUD,
	}
	g.loop = NewGameLoop(g)

	if err := app.AddPlugin(controller); err != nil {
		return nil, err
	}
	if err := app.AddPlugin(&scenePlugin{
		gridHalf:  cfg.Gizmo.GridHalf,
		gridStep:  cfg.Gizmo.GridStep,
		gridColor: cfg.GetGridColor(),
	}); err != nil {
		return nil, err
	}

	n := spawnEntities(app.World, cfg.Entities)
	logger.Info("scene ready",
		zap.Int("entities", n),
		zap.Float64("speed", controller.Speed),
		zap.Bool("normalize_diagonal", controller.Normalize))
	return g, nil
}

// spawnEntities creates the configured entities and returns how many were made.
func spawnEntities(w donburi.World, specs []config.EntityConfig) int {
	for _, ec := range specs {
		var entity donburi.Entity
		if ec.Controlled {
			entity = w.Create(components.TransformComponent, components.Name, components.KeyboardController)
		} else {
			entity = w.Create(components.TransformComponent, components.Name)
		}
		entry := w.Entry(entity)

		t := components.NewTransform(mgl64.Vec3(ec.Position))
		t.RotateY(mgl64.DegToRad(ec.YawDegrees))
		components.TransformComponent.SetValue(entry, t)
		components.Name.SetValue(entry, components.NameData{Value: ec.Name})
	}
	return len(specs)
}

// Update advances one tick. It implements ebiten.Game.
func (g *Game) Update() error {
	return g.loop.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.loop.Layout(outsideWidth, outsideHeight)
}

// App exposes the underlying schedule and world.
func (g *Game) App() *engine.App {
	return g.app
}
