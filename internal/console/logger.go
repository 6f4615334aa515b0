package console

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger used for execution traces. With trace off it
// only reports warnings and errors.
func NewLogger(w io.Writer, trace bool) *log.Logger {
	level := log.WarnLevel
	if trace {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "minipy",
		ReportTimestamp: trace,
	})
}
