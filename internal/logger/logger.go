// Package logger configures the process-wide diagnostic logger. Stdout
// belongs to the chat renderer, so logs go to stderr or a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var std = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
})

// Configure sets the level and optional log file. Levels follow
// charmbracelet/log naming: debug, info, warn, error.
func Configure(level, logFile string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var output io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		output = f
	}

	std = log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		Level:           parsed,
	})
	return nil
}

func Debug(msg string, keyvals ...any) { std.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { std.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { std.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { std.Error(msg, keyvals...) }
