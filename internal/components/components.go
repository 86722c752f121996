package components

import (
	"github.com/yohamta/donburi"
)

// KeyboardController marks an entity whose transform is driven by the keyboard.
var KeyboardController = donburi.NewTag()

// TransformComponent stores an entity's local-space transform.
var TransformComponent = donburi.NewComponentType[Transform]()

// NameData labels an entity for logs and the debug overlay.
type NameData struct {
	Value string
}

var Name = donburi.NewComponentType[NameData]()

// NameOf returns the entity's label, or "" if it has none.
func NameOf(entry *donburi.Entry) string {
	if !entry.HasComponent(Name) {
		return ""
	}
	return Name.Get(entry).Value
}
