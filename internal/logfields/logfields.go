package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyField      = "field"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyPrefix     = "prefix"
	KeySlug       = "slug"
	KeyOutcome    = "outcome"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyAddr       = "addr"
	KeyError      = "error"
)

func ConfigPath(p string) slog.Attr { return slog.String(KeyConfigPath, p) }
func Field(f string) slog.Attr      { return slog.String(KeyField, f) }
func Format(f string) slog.Attr     { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Prefix(p string) slog.Attr     { return slog.String(KeyPrefix, p) }
func Slug(s string) slog.Attr       { return slog.String(KeySlug, s) }
func Outcome(o string) slog.Attr    { return slog.String(KeyOutcome, o) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Addr(a string) slog.Attr       { return slog.String(KeyAddr, a) }

// Duration reports d in fractional milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
