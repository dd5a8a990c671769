package config

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"
)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

var logFormats = normalization.NewEnum("log format", map[string]LogFormat{
	"text":   LogFormatText,
	"logfmt": LogFormatText,
	"json":   LogFormatJSON,
})

// ParseLogFormat accepts text (alias logfmt) or json; blank means text.
func ParseLogFormat(raw string) (LogFormat, error) {
	return logFormats.ParseOr(raw, LogFormatText)
}

// NewLogger builds the process logger: debug level when verbose, info otherwise.
func NewLogger(w io.Writer, format LogFormat, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
