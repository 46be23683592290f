package hooks

import (
	"fmt"
	"sort"
)

// The helpers below implement the sequence semantics the list setters are
// specified against: every transforming helper returns a fresh slice and
// leaves its input untouched, and no-op cases return the input as-is.

// findIndex returns the index of the first element for which pred returns
// true, or -1 if none does.
func findIndex[T any](items []T, pred func(item T, index int) bool) int {
	for i, item := range items {
		if pred(item, i) {
			return i
		}
	}
	return -1
}

// updateAt returns a copy of items with the element at index i replaced.
// A negative or out-of-range index returns items unchanged.
func updateAt[T any](items []T, i int, item T) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	next := make([]T, len(items))
	copy(next, items)
	next[i] = item
	return next
}

// removeAt returns a copy of items without the element at index i.
// A negative or out-of-range index returns items unchanged.
func removeAt[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	return next
}

// filterSlice returns the elements for which pred returns true,
// preserving their relative order.
func filterSlice[T any](items []T, pred func(item T, index int) bool) []T {
	next := make([]T, 0, len(items))
	for i, item := range items {
		if pred(item, i) {
			next = append(next, item)
		}
	}
	return next
}

// sortedCopy returns a stably sorted copy of items.
//
// cmp follows the classic three-way comparator contract: negative orders a
// before b, positive orders a after b, zero preserves the existing relative
// order (the sort is stable). A nil cmp falls back to lexical ordering of
// the elements' formatted representations, matching the default ordering of
// an unparameterized sort.
func sortedCopy[T any](items []T, cmp func(a, b T) int) []T {
	next := make([]T, len(items))
	copy(next, items)
	if cmp == nil {
		sort.SliceStable(next, func(i, j int) bool {
			return fmt.Sprint(next[i]) < fmt.Sprint(next[j])
		})
		return next
	}
	sort.SliceStable(next, func(i, j int) bool {
		return cmp(next[i], next[j]) < 0
	})
	return next
}

// reversedCopy returns a copy of items in reverse order.
func reversedCopy[T any](items []T) []T {
	next := make([]T, len(items))
	for i, item := range items {
		next[len(items)-1-i] = item
	}
	return next
}
