package input

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownKey is returned when a configured key name does not match any ebiten key.
var ErrUnknownKey = errors.New("unknown key")

// KeySource answers whether a key is currently held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys polls the live keyboard through ebiten.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings lists, for each direction, the keys that set it.
// Any one of the listed keys is enough.
type Bindings struct {
	Forward []ebiten.Key
	Back    []ebiten.Key
	Left    []ebiten.Key
	Right   []ebiten.Key
	Up      []ebiten.Key
	Down    []ebiten.Key
}

// DefaultBindings returns WASD plus arrow keys, Space to rise and left Shift to sink.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Back:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:      []ebiten.Key{ebiten.KeySpace},
		Down:    []ebiten.Key{ebiten.KeyShiftLeft},
	}
}

// ParseKeys converts key names such as "W", "ArrowUp" or "ShiftLeft" to ebiten keys.
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Sample resets dir and sets every direction for which any bound key is held.
func Sample(dir *Direction, keys KeySource, b Bindings) {
	dir.Clear()
	dir.Forward = anyPressed(keys, b.Forward)
	dir.Back = anyPressed(keys, b.Back)
	dir.Left = anyPressed(keys, b.Left)
	dir.Right = anyPressed(keys, b.Right)
	dir.Up = anyPressed(keys, b.Up)
	dir.Down = anyPressed(keys, b.Down)
}

func anyPressed(keys KeySource, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
