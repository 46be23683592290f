// Package cell provides the reactive state container used by the cellkit
// shape hooks.
//
// A Cell is a keyed storage location holding one immutable state value.
// Cells are created once with a default value, mutated only by whole-value
// replacement, and observed through Watch subscriptions:
//
//	counter := cell.New(cell.Config[int]{Key: "counter", Default: 0})
//	unsub := counter.Watch(func(v int) { fmt.Println("changed:", v) })
//	counter.Write(5)
//	counter.WriteFn(func(v int) int { return v + 1 })
//	unsub()
//
// Every cell is registered in a process-wide registry under its key so that
// tooling (see package inspect) can enumerate live state. Key collisions are
// caller errors reported through package errors; the original registration
// stays authoritative.
//
// # Threading
//
// Cells are NOT thread-safe. They must only be accessed from the UI thread
// of the host framework. To update a cell from a background goroutine, hop
// to the UI thread first using whatever dispatch mechanism the host provides.
//
// # Binders
//
// Binder is the only contact surface between this library and the host UI
// framework: hooks subscribe a Binder to a cell so the owning view is
// invalidated when the value changes, and clean the subscription up when the
// view is disposed. Embed BinderBase in a framework adapter to satisfy it.
package cell
