package site

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// NormalizationResult captures coercions applied while resolving a raw document.
type NormalizationResult struct{ Warnings []string }

func (r *NormalizationResult) note(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Keys that may live either at the top level or inside a theme container.
var themedKeys = []string{"navbar", "nav", "sidebar", "lastUpdatedLabel", "lastUpdated"}

var topLevelKeys = []string{
	"title", "description", "head", "plugins", "theme", "themeConfig", "themeName",
	"navbar", "nav", "sidebar", "lastUpdatedLabel", "lastUpdated",
}

// Resolve validates and normalizes a loosely-typed configuration document.
// It either returns a complete SiteConfig or the first *ConfigError found.
func Resolve(raw map[string]any) (*SiteConfig, error) {
	cfg, _, err := ResolveWithNotes(raw)
	return cfg, err
}

// ResolveWithNotes is Resolve plus a record of the normalizations applied.
func ResolveWithNotes(raw map[string]any) (*SiteConfig, *NormalizationResult, error) {
	r := &resolver{raw: raw, res: &NormalizationResult{}}
	cfg, err := r.resolve()
	if err != nil {
		return nil, nil, err
	}
	return cfg, r.res, nil
}

type resolver struct {
	raw          map[string]any
	container    map[string]any
	containerKey string
	res          *NormalizationResult
}

func (r *resolver) resolve() (*SiteConfig, error) {
	if r.raw == nil {
		return nil, newConfigError("", "configuration document is empty")
	}
	cfg := &SiteConfig{}
	var err error

	if err = r.selectContainer(cfg); err != nil {
		return nil, err
	}
	if cfg.title, err = r.requiredText("title"); err != nil {
		return nil, err
	}
	if cfg.description, err = r.requiredText("description"); err != nil {
		return nil, err
	}
	if cfg.head, err = r.resolveHead(); err != nil {
		return nil, err
	}

	cfg.navbar = make([]NavItem, 0)
	if v, field, ok, lerr := r.lookup("navbar", "nav"); lerr != nil {
		return nil, lerr
	} else if ok {
		if cfg.navbar, err = r.resolveNavbar(v, field); err != nil {
			return nil, err
		}
	}

	cfg.sidebar = make(map[string]SidebarSpec)
	if v, field, ok, lerr := r.lookup("sidebar"); lerr != nil {
		return nil, lerr
	} else if ok {
		if cfg.sidebar, err = r.resolveSidebar(v, field); err != nil {
			return nil, err
		}
	}

	if cfg.plugins, err = r.resolvePlugins(); err != nil {
		return nil, err
	}

	if v, field, ok, lerr := r.lookup("lastUpdatedLabel", "lastUpdated"); lerr != nil {
		return nil, lerr
	} else if ok {
		if cfg.lastUpdatedLabel, err = r.resolveLastUpdated(v, field); err != nil {
			return nil, err
		}
	}

	cfg.themeOptions = r.leftoverThemeOptions()
	cfg.extra = r.leftoverTopLevel()
	return cfg, nil
}

// selectContainer finds the theme options block. VuePress 1 used themeConfig,
// VuePress 2 themes take their options under theme.
func (r *resolver) selectContainer(cfg *SiteConfig) error {
	var candidates []string
	for _, key := range []string{"themeConfig", "theme"} {
		v, ok := r.raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if key != "theme" {
				return newConfigError(key, "must be a mapping")
			}
			cfg.themeName = cleanText(t)
		default:
			m, ok := asMap(v)
			if !ok {
				return newConfigError(key, "must be a mapping or a theme name")
			}
			r.container, r.containerKey = m, key
			candidates = append(candidates, key)
		}
	}
	if len(candidates) > 1 {
		return newConfigError("theme", "cannot be combined with themeConfig")
	}
	if v, ok := r.raw["themeName"]; ok && v != nil {
		name, ok := v.(string)
		if !ok {
			return newConfigError("themeName", "must be a string")
		}
		if cfg.themeName != "" && cleanText(name) != cfg.themeName {
			return newConfigError("themeName", "conflicts with theme %q", cfg.themeName)
		}
		cfg.themeName = cleanText(name)
	}
	return nil
}

// lookup returns the first present key among names (aliases), searching the
// top level and then the theme container. Setting the same concept twice is
// an error rather than a silent override.
func (r *resolver) lookup(names ...string) (any, string, bool, error) {
	var (
		found      any
		foundField string
		ok         bool
	)
	check := func(m map[string]any, prefix string) error {
		for _, name := range names {
			v, present := m[name]
			if !present || v == nil {
				continue
			}
			field := prefix + name
			if ok {
				return newConfigError(field, "conflicts with %s", foundField)
			}
			found, foundField, ok = v, field, true
		}
		return nil
	}
	if err := check(r.raw, ""); err != nil {
		return nil, "", false, err
	}
	if r.container != nil {
		if err := check(r.container, r.containerKey+"."); err != nil {
			return nil, "", false, err
		}
	}
	if ok {
		base := foundField[strings.LastIndex(foundField, ".")+1:]
		if base != names[0] {
			r.res.note("normalized %s to %s", foundField, names[0])
		} else if strings.Contains(foundField, ".") {
			r.res.note("lifted %s to the top level", foundField)
		}
	}
	return found, foundField, ok, nil
}

func (r *resolver) requiredText(field string) (string, error) {
	v, ok := r.raw[field]
	if !ok || v == nil {
		return "", newConfigError(field, "is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", newConfigError(field, "must be a string")
	}
	s = cleanText(s)
	if s == "" {
		return "", newConfigError(field, "must not be empty")
	}
	return s, nil
}

func (r *resolver) resolveLastUpdated(v any, field string) (string, error) {
	switch t := v.(type) {
	case string:
		return cleanText(t), nil
	case bool:
		if t {
			r.res.note("%s: true replaced by default label", field)
			return "Last Updated", nil
		}
		return "", nil
	default:
		return "", newConfigError(field, "must be a string or boolean")
	}
}

func (r *resolver) leftoverThemeOptions() map[string]any {
	if r.container == nil {
		return nil
	}
	out := make(map[string]any)
	for k, v := range r.container {
		if slices.Contains(themedKeys, k) {
			continue
		}
		out[k] = cloneValue(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r *resolver) leftoverTopLevel() map[string]any {
	out := make(map[string]any)
	for _, k := range slices.Sorted(maps.Keys(r.raw)) {
		if slices.Contains(topLevelKeys, k) {
			continue
		}
		r.res.note("passing through unrecognized key %s", k)
		out[k] = cloneValue(r.raw[k])
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// asMap accepts both decoded map shapes yaml.v3 can produce for `any`.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
