// Package export renders a resolved SiteConfig into documents the external
// generator reads directly.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Format selects the target generator.
type Format string

const (
	FormatVuePress Format = "vuepress"
	FormatHugo     Format = "hugo"
)

var formats = normalization.NewEnum("export format", map[string]Format{
	"vuepress": FormatVuePress,
	"hugo":     FormatHugo,
})

// ParseFormat parses a user-supplied format name.
func ParseFormat(raw string) (Format, error) { return formats.Parse(raw) }

// FormatNames lists the accepted format names.
func FormatNames() []string { return formats.Names() }

// Render encodes cfg for the given generator.
func Render(cfg *site.SiteConfig, format Format) ([]byte, error) {
	switch format {
	case FormatVuePress:
		return renderJSON(VuePressDocument(cfg))
	case FormatHugo:
		return renderHugo(cfg)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unsupported export format %q", format)).Build()
	}
}

func renderJSON(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	// Navbar links contain & and non-ASCII labels; keep them readable.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(jsonSafe(doc)); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode export document").Build()
	}
	return buf.Bytes(), nil
}

// jsonSafe converts map[any]any values (yaml.v3 output for mappings with
// non-string keys) so encoding/json can handle opaque theme options.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = jsonSafe(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = jsonSafe(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonSafe(e)
		}
		return out
	default:
		return v
	}
}
