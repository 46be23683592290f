package cell

import (
	"fmt"
	"sync"

	"github.com/nextcell/cellkit/pkg/errors"
)

// entry is the untyped registry view of a cell.
type entry interface {
	Key() string
	current() any
}

var (
	registryMu sync.Mutex
	registry   = map[string]entry{}
)

// New creates a cell holding cfg.Default and registers it under cfg.Key.
//
// Key misuse is reported through the errors package rather than returned:
// an empty key or a key that is already registered yields a usable but
// unregistered cell, and the original registration stays authoritative.
func New[S any](cfg Config[S]) *Cell[S] {
	c := &Cell[S]{
		key:   cfg.Key,
		def:   cfg.Default,
		value: cfg.Default,
	}

	if cfg.Key == "" {
		errors.Report(&errors.CellError{
			Op:   "cell.New",
			Kind: errors.KindBadConfig,
			Err:  fmt.Errorf("cell key must not be empty"),
		})
		return c
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[cfg.Key]; exists {
		errors.Report(&errors.CellError{
			Op:   "cell.New",
			Kind: errors.KindDuplicateKey,
			Key:  cfg.Key,
			Err:  fmt.Errorf("key already registered"),
		})
		return c
	}

	registry[cfg.Key] = c
	return c
}

// Unregister removes the cell registered under key, if any.
// The cell itself keeps working; it is only dropped from the registry.
func Unregister(key string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, key)
}

// Snapshot returns the current value of every registered cell, keyed by
// cell key. The map is a fresh copy; mutating it has no effect on cells.
func Snapshot() map[string]any {
	registryMu.Lock()
	defer registryMu.Unlock()

	out := make(map[string]any, len(registry))
	for key, e := range registry {
		out[key] = e.current()
	}
	return out
}
