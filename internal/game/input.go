package game

import (
	"flycam/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// InputHandler handles the debug toggles that sit outside the ECS schedule.
type InputHandler struct {
	game          *Game
	gizmoTracker  input.KeyStateTracker
	hudTracker    input.KeyStateTracker
	escapeTracker input.KeyStateTracker
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *Game) *InputHandler {
	return &InputHandler{game: game}
}

// HandleInput processes the toggles for the current frame. It returns
// ebiten.Termination when the player asks to quit.
func (ih *InputHandler) HandleInput() error {
	keys := ih.game.keys

	if ih.escapeTracker.IsKeyJustPressed(keys, ebiten.KeyEscape) {
		ih.game.logger.Info("quit requested")
		return ebiten.Termination
	}
	// Toggle gizmo drawing with F1
	if ih.gizmoTracker.IsKeyJustPressed(keys, ebiten.KeyF1) {
		g := ih.game.app.Gizmos
		g.Enabled = !g.Enabled
		ih.game.logger.Info("gizmos toggled", zap.Bool("enabled", g.Enabled))
	}
	// Toggle HUD with F2
	if ih.hudTracker.IsKeyJustPressed(keys, ebiten.KeyF2) {
		ih.game.showHUD = !ih.game.showHUD
		ih.game.logger.Info("hud toggled", zap.Bool("enabled", ih.game.showHUD))
	}
	return nil
}
