// Package hooks provides typed state-shape cells and accessor hooks for the
// four canonical UI state shapes: list, dialog, filters, and pagination.
//
// Each shape follows the same pattern: an immutable state record, a cell
// constructor, a setter bundle, and accessor hooks.
//
//	var todos = hooks.NewListCell(cell.Config[hooks.ListState[Todo, struct{}]]{
//	    Key:     "todos",
//	    Default: hooks.ListState[Todo, struct{}]{},
//	})
//
//	func (s *todoViewState) InitState() {
//	    s.list, s.setters = hooks.UseList(s, todos)
//	}
//
// Setter bundles perform writes only and never subscribe, so they are safe
// to hold in views that must not re-render on state change:
//
//	setters := hooks.ListSettersOf(todos)
//	setters.Push(newTodo)
//
// Every setter replaces the whole state record in a single transition; no
// setter mutates a previously observed value in place. Mutating setters come
// in Set/Update pairs: Set takes a replacement value, Update takes a pure
// function of the current value.
//
// # Hooks and subscriptions
//
// UseXxx functions subscribe the given Binder so its view is invalidated on
// every change of the cell, with the subscription cleaned up on disposal.
// Call them once when the view is initialized, not on every build.
package hooks
