// Package inspect provides debug tooling over the cellkit cell registry.
//
// It serializes the current value of every registered cell to YAML, keyed
// by cell key, for debug overlays, logs, and bug reports:
//
//	var buf bytes.Buffer
//	if err := inspect.Dump(&buf); err != nil { ... }
//
// The dump is a copy of the state at the time of the call and never feeds
// back into cells.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nextcell/cellkit/pkg/cell"
)

// Dump writes a YAML document mapping cell keys to their current values.
// Keys are emitted in sorted order, so output is stable across calls with
// the same state.
func Dump(w io.Writer) error {
	data, err := yaml.Marshal(cell.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal state snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write state snapshot: %w", err)
	}
	return nil
}

// String returns the YAML dump as a string.
func String() (string, error) {
	var sb strings.Builder
	if err := Dump(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
