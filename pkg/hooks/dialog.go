package hooks

import "github.com/nextcell/cellkit/pkg/cell"

// DialogState holds a dialog's visibility flag plus the opaque payload it
// was opened with. Meta persists across open/close unless explicitly
// replaced.
type DialogState[T any] struct {
	IsOpen bool
	Meta   T
}

// NewDialogCell creates a registered cell holding a DialogState.
func NewDialogCell[T any](cfg cell.Config[DialogState[T]]) *cell.Cell[DialogState[T]] {
	return cell.New(cfg)
}

// DialogSetters mutates a dialog cell. Obtain one with DialogSettersOf
// (writes only, no subscription) or UseDialog.
type DialogSetters[T any] struct {
	c *cell.Cell[DialogState[T]]
}

// DialogSettersOf returns the setter bundle for c without establishing any
// subscription.
func DialogSettersOf[T any](c *cell.Cell[DialogState[T]]) DialogSetters[T] {
	return DialogSetters[T]{c: c}
}

// SetOpen replaces the visibility flag, preserving Meta.
func (s DialogSetters[T]) SetOpen(open bool) {
	s.c.WriteFn(func(st DialogState[T]) DialogState[T] {
		st.IsOpen = open
		return st
	})
}

// UpdateOpen replaces the visibility flag with fn(current), preserving Meta.
func (s DialogSetters[T]) UpdateOpen(fn func(bool) bool) {
	s.c.WriteFn(func(st DialogState[T]) DialogState[T] {
		st.IsOpen = fn(st.IsOpen)
		return st
	})
}

// Open sets IsOpen to true. When called with a meta argument the payload is
// replaced in the same transition; with no argument the payload is left
// untouched. The distinction is positional, not a value comparison, so an
// explicit zero value still replaces the payload.
func (s DialogSetters[T]) Open(meta ...T) {
	s.c.WriteFn(func(st DialogState[T]) DialogState[T] {
		st.IsOpen = true
		if len(meta) > 0 {
			st.Meta = meta[0]
		}
		return st
	})
}

// Close sets IsOpen to false, leaving Meta untouched.
func (s DialogSetters[T]) Close() {
	s.SetOpen(false)
}

// SetMeta replaces the payload, preserving IsOpen.
func (s DialogSetters[T]) SetMeta(meta T) {
	s.c.WriteFn(func(st DialogState[T]) DialogState[T] {
		st.Meta = meta
		return st
	})
}

// UpdateMeta replaces the payload with fn(current), preserving IsOpen.
func (s DialogSetters[T]) UpdateMeta(fn func(T) T) {
	s.c.WriteFn(func(st DialogState[T]) DialogState[T] {
		st.Meta = fn(st.Meta)
		return st
	})
}

// Reset restores the cell's original default state.
func (s DialogSetters[T]) Reset() {
	s.c.Reset()
}

// UseDialog subscribes b to the dialog cell and returns the current state
// with its setter bundle.
func UseDialog[T any](b cell.Binder, c *cell.Cell[DialogState[T]]) (DialogState[T], DialogSetters[T]) {
	return watch(b, c), DialogSettersOf(c)
}

// UseDialogOpen subscribes b and returns the current visibility flag.
func UseDialogOpen[T any](b cell.Binder, c *cell.Cell[DialogState[T]]) bool {
	return watch(b, c).IsOpen
}

// UseDialogMeta subscribes b and returns the current payload.
func UseDialogMeta[T any](b cell.Binder, c *cell.Cell[DialogState[T]]) T {
	return watch(b, c).Meta
}
