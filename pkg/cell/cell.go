package cell

// Config describes a cell: a process-unique key plus the default value the
// cell holds at creation and restores on Reset.
type Config[S any] struct {
	// Key identifies the cell in the process-wide registry.
	// It must be unique per process.
	Key string
	// Default is the value the cell holds at creation.
	Default S
}

// Cell is a reactive storage location holding one state value.
//
// Cell is NOT thread-safe. It must only be accessed from the UI thread.
// See the package documentation for details.
type Cell[S any] struct {
	key      string
	def      S
	value    S
	watchers []func(S)
}

// Key returns the registry key this cell was created with.
func (c *Cell[S]) Key() string {
	return c.key
}

// Read returns the current value without establishing any subscription.
func (c *Cell[S]) Read() S {
	return c.value
}

// Watch registers a callback that fires after every value replacement.
// It returns an unsubscribe function; calling it more than once is safe.
func (c *Cell[S]) Watch(fn func(S)) func() {
	if fn == nil {
		return func() {}
	}
	index := len(c.watchers)
	c.watchers = append(c.watchers, fn)
	return func() {
		if index < len(c.watchers) {
			c.watchers[index] = nil
		}
	}
}

// WatcherCount returns the number of active subscriptions.
func (c *Cell[S]) WatcherCount() int {
	n := 0
	for _, w := range c.watchers {
		if w != nil {
			n++
		}
	}
	return n
}

// Write replaces the held value and notifies watchers.
func (c *Cell[S]) Write(v S) {
	c.value = v
	c.notify()
}

// WriteFn replaces the held value with fn(current) and notifies watchers.
//
// The read-modify-write is synchronous: fn always receives the latest
// committed value, so sequential WriteFn calls compose. A panicking fn
// propagates to the caller and leaves the value unchanged.
func (c *Cell[S]) WriteFn(fn func(S) S) {
	next := fn(c.value)
	c.value = next
	c.notify()
}

// Reset restores the default value supplied at creation.
func (c *Cell[S]) Reset() {
	c.Write(c.def)
}

func (c *Cell[S]) notify() {
	for _, w := range c.watchers {
		if w != nil {
			w(c.value)
		}
	}
}

// current implements the untyped registry view used by Snapshot.
func (c *Cell[S]) current() any {
	return c.value
}
