package hooks

import "github.com/nextcell/cellkit/pkg/cell"

// PaginationState holds windowed-collection coordinates. Page is 1-based;
// Offset is derived and always equals (Page-1)*Limit after any transition
// that touches Page or Limit. Total and Meta are independent of that
// derivation.
type PaginationState[T any] struct {
	Total  int
	Page   int
	Limit  int
	Offset int
	Meta   T
}

// NewPaginationCell creates a registered cell holding a PaginationState.
func NewPaginationCell[T any](cfg cell.Config[PaginationState[T]]) *cell.Cell[PaginationState[T]] {
	return cell.New(cfg)
}

// PaginationSetters mutates a pagination cell. Obtain one with
// PaginationSettersOf (writes only, no subscription) or UsePagination.
//
// Offset has no setter: it is recomputed synchronously inside the same
// transition whenever Page or Limit changes.
type PaginationSetters[T any] struct {
	c *cell.Cell[PaginationState[T]]
}

// PaginationSettersOf returns the setter bundle for c without establishing
// any subscription.
func PaginationSettersOf[T any](c *cell.Cell[PaginationState[T]]) PaginationSetters[T] {
	return PaginationSetters[T]{c: c}
}

// SetTotal replaces the total count. No other field is recomputed.
func (s PaginationSetters[T]) SetTotal(total int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Total = total
		return st
	})
}

// UpdateTotal replaces the total count with fn(current).
func (s PaginationSetters[T]) UpdateTotal(fn func(int) int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Total = fn(st.Total)
		return st
	})
}

// SetPage replaces the current page and recomputes Offset against the
// limit in effect.
func (s PaginationSetters[T]) SetPage(page int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Page = page
		st.Offset = (page - 1) * st.Limit
		return st
	})
}

// UpdatePage replaces the current page with fn(current) and recomputes
// Offset against the limit in effect.
func (s PaginationSetters[T]) UpdatePage(fn func(int) int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Page = fn(st.Page)
		st.Offset = (st.Page - 1) * st.Limit
		return st
	})
}

// SetLimit replaces the page size and recomputes Offset against the
// current page.
func (s PaginationSetters[T]) SetLimit(limit int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Limit = limit
		st.Offset = (st.Page - 1) * limit
		return st
	})
}

// UpdateLimit replaces the page size with fn(current) and recomputes
// Offset against the current page.
func (s PaginationSetters[T]) UpdateLimit(fn func(int) int) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Limit = fn(st.Limit)
		st.Offset = (st.Page - 1) * st.Limit
		return st
	})
}

// SetMeta replaces the metadata.
func (s PaginationSetters[T]) SetMeta(meta T) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Meta = meta
		return st
	})
}

// UpdateMeta replaces the metadata with fn(current).
func (s PaginationSetters[T]) UpdateMeta(fn func(T) T) {
	s.c.WriteFn(func(st PaginationState[T]) PaginationState[T] {
		st.Meta = fn(st.Meta)
		return st
	})
}

// Reset restores the cell's original default state.
func (s PaginationSetters[T]) Reset() {
	s.c.Reset()
}

// UsePagination subscribes b to the pagination cell and returns the current
// state with its setter bundle.
func UsePagination[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) (PaginationState[T], PaginationSetters[T]) {
	return watch(b, c), PaginationSettersOf(c)
}

// UsePaginationTotal subscribes b and returns the current total count.
func UsePaginationTotal[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) int {
	return watch(b, c).Total
}

// UsePaginationPage subscribes b and returns the current page.
func UsePaginationPage[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) int {
	return watch(b, c).Page
}

// UsePaginationLimit subscribes b and returns the current page size.
func UsePaginationLimit[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) int {
	return watch(b, c).Limit
}

// UsePaginationOffset subscribes b and returns the current derived offset.
func UsePaginationOffset[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) int {
	return watch(b, c).Offset
}

// UsePaginationMeta subscribes b and returns the current metadata.
func UsePaginationMeta[T any](b cell.Binder, c *cell.Cell[PaginationState[T]]) T {
	return watch(b, c).Meta
}
