package cell

import "sync"

// Binder is satisfied by any view state that can host cell subscriptions.
// Hooks accept a Binder so the owning view re-renders when a cell changes
// and the subscription is cleaned up when the view goes away.
type Binder interface {
	// Invalidate schedules a re-render of the owning view.
	Invalidate()
	// OnDispose registers a cleanup function to run when the view is
	// disposed. It returns an unregister function.
	OnDispose(cleanup func()) func()
}

// BinderBase provides a ready-made Binder implementation.
// Embed it in a framework adapter and call Bind once with the framework's
// rebuild trigger:
//
//	type widgetState struct {
//	    cell.BinderBase
//	    // ...
//	}
//
//	s := &widgetState{}
//	s.Bind(element.MarkNeedsBuild)
//
// The zero value is usable; Invalidate is a no-op until Bind is called.
type BinderBase struct {
	invalidate func()
	disposers  []func()
	disposed   bool
	mu         sync.Mutex
}

// Bind stores the callback Invalidate delegates to.
func (b *BinderBase) Bind(invalidate func()) {
	b.invalidate = invalidate
}

// Invalidate triggers the bound rebuild callback.
// Safe to call even after disposal (becomes a no-op).
func (b *BinderBase) Invalidate() {
	if b.disposed {
		return
	}
	if b.invalidate != nil {
		b.invalidate()
	}
}

// OnDispose registers a cleanup function to be called when the binder is
// disposed. Returns an unregister function that can be called to remove the
// cleanup. The cleanup function will only be called once.
func (b *BinderBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	index := len(b.disposers)
	b.disposers = append(b.disposers, cleanup)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if index < len(b.disposers) {
			b.disposers[index] = nil
		}
	}
}

// Dispose runs all registered cleanups in reverse order (LIFO) and marks
// the binder disposed. Calling it again is a no-op.
func (b *BinderBase) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		return
	}
	b.disposed = true

	for i := len(b.disposers) - 1; i >= 0; i-- {
		if b.disposers[i] != nil {
			b.disposers[i]()
		}
	}
	b.disposers = nil
}

// IsDisposed returns true if this binder has been disposed.
func (b *BinderBase) IsDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}
