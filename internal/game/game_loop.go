package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game         *Game
	inputHandler *InputHandler
	hud          *HUD
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Game) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game),
		hud:          NewHUD(game),
	}
}

// Update handles all game logic updates for one frame
func (gl *GameLoop) Update() error {
	if err := gl.inputHandler.HandleInput(); err != nil {
		return err
	}
	return gl.game.app.Update()
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	gl.game.renderer.Draw(screen, gl.game.app.Gizmos)

	if gl.game.showHUD {
		gl.hud.Draw(screen)
	}
	gl.maybeLogPerfDrop()
}

// Layout returns the screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}
