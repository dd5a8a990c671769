package site

import (
	"maps"
	"slices"
	"strings"
)

// resolvePlugins accepts "name", [name, options] and {name, options} (or the
// single-key {name: options}) shapes. Options are never inspected.
func (r *resolver) resolvePlugins() ([]PluginRef, error) {
	out := make([]PluginRef, 0)
	v, ok := r.raw["plugins"]
	if !ok || v == nil {
		return out, nil
	}
	list, ok := asList(v)
	if !ok {
		return nil, newConfigError("plugins", "must be a list")
	}
	for i, e := range list {
		field := indexed("plugins", i)
		ref, err := pluginRef(e, field)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func pluginRef(e any, field string) (PluginRef, error) {
	var (
		name    any
		options any
	)
	if s, ok := e.(string); ok {
		name = s
	} else if tuple, ok := asList(e); ok {
		if len(tuple) == 0 || len(tuple) > 2 {
			return PluginRef{}, newConfigError(field, "must be [name] or [name, options]")
		}
		name = tuple[0]
		if len(tuple) == 2 {
			options = tuple[1]
		}
	} else if m, ok := asMap(e); ok {
		if n, has := m["name"]; has {
			name, options = n, m["options"]
		} else if len(m) == 1 {
			key := slices.Collect(maps.Keys(m))[0]
			name, options = key, m[key]
		} else {
			return PluginRef{}, newConfigError(field+".name", "is required")
		}
	} else {
		return PluginRef{}, newConfigError(field, "must be a name, a [name, options] list or a mapping")
	}

	s, ok := name.(string)
	if !ok {
		return PluginRef{}, newConfigError(field+".name", "must be a string")
	}
	ref := PluginRef{Name: strings.TrimSpace(s)}
	if ref.Name == "" {
		return PluginRef{}, newConfigError(field+".name", "must not be empty")
	}
	if options != nil {
		m, ok := asMap(options)
		if !ok {
			return PluginRef{}, newConfigError(field+".options", "must be a mapping")
		}
		if len(m) > 0 {
			ref.Options = cloneMap(m)
		}
	}
	return ref, nil
}
