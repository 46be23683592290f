package hooks

import "github.com/nextcell/cellkit/pkg/cell"

// watch subscribes b to c, invalidating b's view on every change, and
// registers the cleanup for b's disposal. It returns the current value.
func watch[S any](b cell.Binder, c *cell.Cell[S]) S {
	unsub := c.Watch(func(S) {
		b.Invalidate()
	})
	b.OnDispose(unsub)
	return c.Read()
}
