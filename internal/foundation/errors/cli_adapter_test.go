package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, discardLogger())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", ValidationError("unknown format").Build(), 2},
		{"config error", ConfigError("invalid site configuration").Build(), 7},
		{"not found", NotFoundError("configuration file not found").Build(), 7},
		{"docs error", DocsError("missing pages").Build(), 9},
		{"wrapped config error", fmt.Errorf("load: %w", ConfigError("bad").Build()), 7},
		{"unclassified error", fmt.Errorf("unknown error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := fmt.Errorf("navbar[2].link: missing scheme or leading slash")
	cfgErr := WrapError(cause, CategoryConfig, "invalid site configuration").Fatal().Build()

	quiet := NewCLIErrorAdapter(false, discardLogger())
	assert.Equal(t, "Error: invalid site configuration: navbar[2].link: missing scheme or leading slash", quiet.FormatError(cfgErr))
	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(RuntimeError("watcher died").Build()))
	assert.Equal(t, "Error: plain", quiet.FormatError(fmt.Errorf("plain")))
	assert.Empty(t, quiet.FormatError(nil))

	verbose := NewCLIErrorAdapter(true, discardLogger())
	assert.Equal(t, "[runtime:fatal] watcher died", verbose.FormatError(RuntimeError("watcher died").Build()))
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, discardLogger()).WithOutput(&out)

	code := adapter.Handle(ConfigError("title: is required").Build())
	assert.Equal(t, 7, code)
	assert.Equal(t, "Error: title: is required\n", out.String())
	assert.Equal(t, 0, adapter.Handle(nil))
}
