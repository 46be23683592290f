package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a CellError to stderr.
func (h *LogHandler) HandleError(err *CellError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[cellkit error] %s [%s]", err.Op, err.Kind)
		if err.Key != "" {
			fmt.Fprintf(os.Stderr, " key=%q", err.Key)
		}
		fmt.Fprintf(os.Stderr, ": %v (at %s)\n", err.Err, err.Timestamp.Format("15:04:05.000"))
	} else {
		fmt.Fprintf(os.Stderr, "[cellkit error] %s: %v\n", err.Op, err.Err)
	}
}
