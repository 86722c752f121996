package controllers

import (
	"image/color"

	"flycam/internal/engine"
	"flycam/internal/input"

	"go.uber.org/zap"
)

// KeyboardControllerPlugin samples the keyboard into the Direction resource
// during PreUpdate and moves keyboard-controlled entities during Update.
type KeyboardControllerPlugin struct {
	Keys      input.KeySource
	Bindings  input.Bindings
	Speed     float64
	Normalize bool
	Color     color.RGBA

	last      input.Direction
	lastMoved int
}

// NewKeyboardControllerPlugin returns the plugin with default bindings,
// speed and pose colour, polling the live keyboard.
func NewKeyboardControllerPlugin() *KeyboardControllerPlugin {
	return &KeyboardControllerPlugin{
		Keys:     input.EbitenKeys{},
		Bindings: input.DefaultBindings(),
		Speed:    DefaultSpeed,
		Color:    PoseColor,
	}
}

func (p *KeyboardControllerPlugin) Name() string { return "keyboard_controller" }

func (p *KeyboardControllerPlugin) Build(app *engine.App) error {
	engine.InitResource(app.World, input.DirectionResource)
	app.AddSystem(engine.PreUpdate, "direction_from_keys", p.directionFromKeys)
	app.AddSystem(engine.Update, "move_controlled_entities", p.moveControlledEntities)
	return nil
}

func (p *KeyboardControllerPlugin) directionFromKeys(app *engine.App) error {
	dir, err := engine.Resource(app.World, input.DirectionResource)
	if err != nil {
		return err
	}
	input.Sample(dir, p.Keys, p.Bindings)
	if *dir != p.last {
		app.Logger.Debug("direction changed",
			zap.Stringer("direction", *dir),
			zap.Uint64("frame", app.Clock.Frame()))
		p.last = *dir
	}
	return nil
}

func (p *KeyboardControllerPlugin) moveControlledEntities(app *engine.App) error {
	dir, err := engine.Resource(app.World, input.DirectionResource)
	if err != nil {
		return err
	}
	local := dir.Velocity()
	if p.Normalize {
		local = dir.UnitVelocity()
	}
	n := MoveControlled(app.World, local, app.Clock.DeltaSeconds(), p.Speed, app.Gizmos, p.Color)
	if n != p.lastMoved {
		app.Logger.Debug("controlled entities changed",
			zap.Int("count", n),
			zap.Uint64("frame", app.Clock.Frame()))
		p.lastMoved = n
	}
	return nil
}
