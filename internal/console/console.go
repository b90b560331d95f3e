package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// logger is the process-wide diagnostic logger. Scan reports go to stdout
// through the printer package; everything logged here is stderr-only.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "sigscan",
})

// SetOutput redirects diagnostic output, used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetNoColor forces plain log output when v is true.
func SetNoColor(v bool) {
	if v {
		logger.SetColorProfile(termenv.Ascii)
	}
}

// SetVerbose lowers the log level to debug when v is true.
func SetVerbose(v bool) {
	if v {
		logger.SetLevel(log.DebugLevel)
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg any, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an informational message with optional key-value pairs.
func Info(msg any, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning with optional key-value pairs.
func Warn(msg any, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error with optional key-value pairs.
func Error(msg any, keyvals ...any) {
	logger.Error(msg, keyvals...)
}
