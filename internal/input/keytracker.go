package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last call but is pressed now.
func (k *KeyStateTracker) IsKeyJustPressed(keys KeySource, key ebiten.Key) bool {
	pressed := keys.IsKeyPressed(key)
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
