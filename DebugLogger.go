package main

import (
	"github.com/charmbracelet/log"
	"io"
)

type DebugLogger struct {
	logger *log.Logger
}

func NewDebugLogger(out io.Writer, enabled bool) *DebugLogger {
	if !enabled {
		return &DebugLogger{}
	}

	return &DebugLogger{
		logger: log.NewWithOptions(out, log.Options{
			Level:           log.DebugLevel,
			Prefix:          "debug",
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		}),
	}
}

// Log is a no-op on a nil or disabled logger.
func (debugLogger *DebugLogger) Log(message string, keyvals ...any) {
	if debugLogger != nil && debugLogger.logger != nil {
		debugLogger.logger.Debug(message, keyvals...)
	}
}
