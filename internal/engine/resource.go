package engine

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// InitResource spawns a singleton entity holding the zero value of c,
// unless one already exists.
func InitResource[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	if entry, ok := query.NewQuery(filter.Contains(c)).First(w); ok {
		return c.Get(entry)
	}
	var zero T
	entry := w.Entry(w.Create(c))
	c.SetValue(entry, zero)
	return c.Get(entry)
}

// Resource returns the singleton value of c.
func Resource[T any](w donburi.World, c *donburi.ComponentType[T]) (*T, error) {
	entry, ok := query.NewQuery(filter.Contains(c)).First(w)
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T", ErrMissingResource, zero)
	}
	return c.Get(entry), nil
}
