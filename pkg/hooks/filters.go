package hooks

import "github.com/nextcell/cellkit/pkg/cell"

// FiltersState holds a filter panel's visibility, whether its values have
// been applied, and the named filter values themselves. IsOpen and
// IsApplied toggle independently; IsApplied becomes true only through
// Apply or an explicit SetApplied.
type FiltersState[T any] struct {
	IsOpen    bool
	IsApplied bool
	Values    T
}

// NewFiltersCell creates a registered cell holding a FiltersState.
func NewFiltersCell[T any](cfg cell.Config[FiltersState[T]]) *cell.Cell[FiltersState[T]] {
	return cell.New(cfg)
}

// FiltersSetters mutates a filters cell. Obtain one with FiltersSettersOf
// (writes only, no subscription) or UseFilters.
type FiltersSetters[T any] struct {
	c *cell.Cell[FiltersState[T]]
}

// FiltersSettersOf returns the setter bundle for c without establishing any
// subscription.
func FiltersSettersOf[T any](c *cell.Cell[FiltersState[T]]) FiltersSetters[T] {
	return FiltersSetters[T]{c: c}
}

// SetOpen replaces the visibility flag.
func (s FiltersSetters[T]) SetOpen(open bool) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.IsOpen = open
		return st
	})
}

// UpdateOpen replaces the visibility flag with fn(current).
func (s FiltersSetters[T]) UpdateOpen(fn func(bool) bool) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.IsOpen = fn(st.IsOpen)
		return st
	})
}

// SetApplied replaces the applied flag.
func (s FiltersSetters[T]) SetApplied(applied bool) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.IsApplied = applied
		return st
	})
}

// UpdateApplied replaces the applied flag with fn(current).
func (s FiltersSetters[T]) UpdateApplied(fn func(bool) bool) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.IsApplied = fn(st.IsApplied)
		return st
	})
}

// Open sets IsOpen to true.
func (s FiltersSetters[T]) Open() {
	s.SetOpen(true)
}

// Close sets IsOpen to false.
func (s FiltersSetters[T]) Close() {
	s.SetOpen(false)
}

// Apply replaces the filter values and sets IsApplied to true in the same
// transition.
func (s FiltersSetters[T]) Apply(values T) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.Values = values
		st.IsApplied = true
		return st
	})
}

// ApplyFn replaces the filter values with fn(current) and sets IsApplied to
// true in the same transition.
func (s FiltersSetters[T]) ApplyFn(fn func(T) T) {
	s.c.WriteFn(func(st FiltersState[T]) FiltersState[T] {
		st.Values = fn(st.Values)
		st.IsApplied = true
		return st
	})
}

// Reset restores the cell's original default state, including reverting
// IsOpen, IsApplied, and Values regardless of any prior Apply.
func (s FiltersSetters[T]) Reset() {
	s.c.Reset()
}

// UseFilters subscribes b to the filters cell and returns the current state
// with its setter bundle.
func UseFilters[T any](b cell.Binder, c *cell.Cell[FiltersState[T]]) (FiltersState[T], FiltersSetters[T]) {
	return watch(b, c), FiltersSettersOf(c)
}

// UseFiltersOpen subscribes b and returns the current visibility flag.
func UseFiltersOpen[T any](b cell.Binder, c *cell.Cell[FiltersState[T]]) bool {
	return watch(b, c).IsOpen
}

// UseFiltersApplied subscribes b and returns the current applied flag.
func UseFiltersApplied[T any](b cell.Binder, c *cell.Cell[FiltersState[T]]) bool {
	return watch(b, c).IsApplied
}

// UseFiltersValues subscribes b and returns the current filter values.
func UseFiltersValues[T any](b cell.Binder, c *cell.Cell[FiltersState[T]]) T {
	return watch(b, c).Values
}
