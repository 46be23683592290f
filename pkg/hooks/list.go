package hooks

import "github.com/nextcell/cellkit/pkg/cell"

// ListState holds an ordered collection plus opaque metadata that travels
// with it (selection, cursor, request info). Data mutations never touch
// Meta, and meta mutations never touch Data.
type ListState[T, U any] struct {
	Data []T
	Meta U
}

// NewListCell creates a registered cell holding a ListState.
func NewListCell[T, U any](cfg cell.Config[ListState[T, U]]) *cell.Cell[ListState[T, U]] {
	return cell.New(cfg)
}

// ListSetters mutates a list cell. Obtain one with ListSettersOf (writes
// only, no subscription) or UseList.
//
// Predicates receive the element and its index and must be pure; a
// panicking predicate propagates to the caller with the state unchanged.
type ListSetters[T, U any] struct {
	c *cell.Cell[ListState[T, U]]
}

// ListSettersOf returns the setter bundle for c without establishing any
// subscription.
func ListSettersOf[T, U any](c *cell.Cell[ListState[T, U]]) ListSetters[T, U] {
	return ListSetters[T, U]{c: c}
}

// SetData replaces the collection, preserving Meta.
func (s ListSetters[T, U]) SetData(data []T) {
	s.c.WriteFn(func(st ListState[T, U]) ListState[T, U] {
		st.Data = data
		return st
	})
}

// UpdateData replaces the collection with fn(current), preserving Meta.
func (s ListSetters[T, U]) UpdateData(fn func([]T) []T) {
	s.c.WriteFn(func(st ListState[T, U]) ListState[T, U] {
		st.Data = fn(st.Data)
		return st
	})
}

// ClearData empties the collection.
func (s ListSetters[T, U]) ClearData() {
	s.SetData([]T{})
}

// SetMeta replaces the metadata, preserving Data.
func (s ListSetters[T, U]) SetMeta(meta U) {
	s.c.WriteFn(func(st ListState[T, U]) ListState[T, U] {
		st.Meta = meta
		return st
	})
}

// UpdateMeta replaces the metadata with fn(current), preserving Data.
func (s ListSetters[T, U]) UpdateMeta(fn func(U) U) {
	s.c.WriteFn(func(st ListState[T, U]) ListState[T, U] {
		st.Meta = fn(st.Meta)
		return st
	})
}

// Unshift prepends items, preserving their given relative order at the
// front.
func (s ListSetters[T, U]) Unshift(items ...T) {
	s.UpdateData(func(data []T) []T {
		next := make([]T, 0, len(items)+len(data))
		next = append(next, items...)
		next = append(next, data...)
		return next
	})
}

// Push appends items at the back, preserving their given order.
func (s ListSetters[T, U]) Push(items ...T) {
	s.UpdateData(func(data []T) []T {
		next := make([]T, 0, len(data)+len(items))
		next = append(next, data...)
		next = append(next, items...)
		return next
	})
}

// ClearPush replaces the collection wholesale with exactly the given items,
// as a single transition.
func (s ListSetters[T, U]) ClearPush(items ...T) {
	s.UpdateData(func([]T) []T {
		next := make([]T, len(items))
		copy(next, items)
		return next
	})
}

// Upsert appends item when no element satisfies pred. When one or more
// already do, the state is left unchanged; existing matches are not updated.
func (s ListSetters[T, U]) Upsert(pred func(item T, index int) bool, item T) {
	s.UpdateData(func(data []T) []T {
		if findIndex(data, pred) >= 0 {
			return data
		}
		next := make([]T, 0, len(data)+1)
		next = append(next, data...)
		next = append(next, item)
		return next
	})
}

// UpdateAt replaces the element at index i. A negative or out-of-range
// index is a no-op.
func (s ListSetters[T, U]) UpdateAt(i int, item T) {
	s.UpdateData(func(data []T) []T {
		return updateAt(data, i, item)
	})
}

// Update replaces the first element satisfying pred. No match is a no-op.
func (s ListSetters[T, U]) Update(pred func(item T, index int) bool, item T) {
	s.UpdateData(func(data []T) []T {
		return updateAt(data, findIndex(data, pred), item)
	})
}

// UpdateAll replaces every element satisfying pred with item, positionally,
// preserving all other elements and overall order.
func (s ListSetters[T, U]) UpdateAll(pred func(item T, index int) bool, item T) {
	s.UpdateData(func(data []T) []T {
		next := make([]T, len(data))
		copy(next, data)
		for i, existing := range next {
			if pred(existing, i) {
				next[i] = item
			}
		}
		return next
	})
}

// RemoveAt removes the element at index i. A negative or out-of-range
// index is a no-op.
func (s ListSetters[T, U]) RemoveAt(i int) {
	s.UpdateData(func(data []T) []T {
		return removeAt(data, i)
	})
}

// Remove removes the first element satisfying pred. No match is a no-op.
func (s ListSetters[T, U]) Remove(pred func(item T, index int) bool) {
	s.UpdateData(func(data []T) []T {
		return removeAt(data, findIndex(data, pred))
	})
}

// RemoveAll removes every element satisfying pred, preserving the relative
// order of the survivors.
func (s ListSetters[T, U]) RemoveAll(pred func(item T, index int) bool) {
	s.UpdateData(func(data []T) []T {
		return filterSlice(data, func(item T, i int) bool {
			return !pred(item, i)
		})
	})
}

// Filter keeps only the elements satisfying pred, preserving order.
func (s ListSetters[T, U]) Filter(pred func(item T, index int) bool) {
	s.UpdateData(func(data []T) []T {
		return filterSlice(data, pred)
	})
}

// Sort reorders a copy of the collection with a stable sort.
//
// cmp is a three-way comparator: negative orders a before b, positive
// orders a after b, zero preserves existing relative order. A nil cmp sorts
// lexically on the elements' formatted representations.
func (s ListSetters[T, U]) Sort(cmp func(a, b T) int) {
	s.UpdateData(func(data []T) []T {
		return sortedCopy(data, cmp)
	})
}

// Reverse reverses the element order on a copy.
func (s ListSetters[T, U]) Reverse() {
	s.UpdateData(reversedCopy[T])
}

// Reset restores the cell's original default state.
func (s ListSetters[T, U]) Reset() {
	s.c.Reset()
}

// UseList subscribes b to the list cell and returns the current state with
// its setter bundle.
func UseList[T, U any](b cell.Binder, c *cell.Cell[ListState[T, U]]) (ListState[T, U], ListSetters[T, U]) {
	return watch(b, c), ListSettersOf(c)
}

// UseListData subscribes b and returns the current collection.
func UseListData[T, U any](b cell.Binder, c *cell.Cell[ListState[T, U]]) []T {
	return watch(b, c).Data
}

// UseListMeta subscribes b and returns the current metadata.
func UseListMeta[T, U any](b cell.Binder, c *cell.Cell[ListState[T, U]]) U {
	return watch(b, c).Meta
}
