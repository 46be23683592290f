// Package errors provides structured error reporting for the cellkit library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDuplicateKey indicates a cell key that is already registered.
	KindDuplicateKey
	// KindBadConfig indicates an invalid cell configuration.
	KindBadConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate-key"
	case KindBadConfig:
		return "bad-config"
	default:
		return "unknown"
	}
}

// CellError represents a structured error raised by the cell registry.
//
// All failures in this library are caller errors: a CellError reports misuse
// (duplicate or malformed keys) rather than a recoverable runtime condition.
type CellError struct {
	// Op is the operation that failed (e.g., "cell.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the cell key involved, if applicable.
	Key string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CellError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%q: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the cellkit library.
type ErrorHandler interface {
	// HandleError is called when a cell error occurs.
	HandleError(err *CellError)
}
