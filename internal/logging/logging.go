// Package logging builds the process-wide slog logger on top of
// charmbracelet/log.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

// ParseLevel maps debug|info|warn|error onto a charm level; anything else
// is info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a slog logger writing to w. Unknown formats fall back to text.
func New(level, format string, w io.Writer) *slog.Logger {
	formatter := log.TextFormatter
	if f, ok := formatters[strings.ToLower(format)]; ok {
		formatter = f
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(level),
		Formatter:       formatter,
	})
	return slog.New(handler)
}

// Setup builds the logger and installs it as the slog default.
func Setup(level, format string, w io.Writer) *slog.Logger {
	l := New(level, format, w)
	slog.SetDefault(l)
	return l
}
