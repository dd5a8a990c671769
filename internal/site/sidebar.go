package site

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// resolveSidebar accepts the keyed form plus the two shorthand forms used by
// older site versions: a bare "auto" or a flat slug list, both bound to "/".
func (r *resolver) resolveSidebar(v any, field string) (map[string]SidebarSpec, error) {
	out := make(map[string]SidebarSpec)

	if m, ok := asMap(v); ok {
		for _, prefix := range slices.Sorted(maps.Keys(m)) {
			keyField := fmt.Sprintf("%s[%q]", field, prefix)
			if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") {
				return nil, newConfigError(keyField, "path prefix must start and end with /")
			}
			spec, err := resolveSidebarSpec(m[prefix], keyField)
			if err != nil {
				return nil, err
			}
			out[prefix] = spec
		}
		return out, nil
	}

	_, isString := v.(string)
	if _, isList := asList(v); !isString && !isList {
		return nil, newConfigError(field, "must be %q, a list of slugs, or a mapping of path prefixes", SidebarAuto)
	}
	spec, err := resolveSidebarSpec(v, field)
	if err != nil {
		return nil, err
	}
	r.res.note("%s: shorthand form bound to prefix /", field)
	out["/"] = spec
	return out, nil
}

func resolveSidebarSpec(v any, field string) (SidebarSpec, error) {
	if s, ok := v.(string); ok {
		if strings.TrimSpace(s) == SidebarAuto {
			return AutoSidebar(), nil
		}
		return SidebarSpec{}, newConfigError(field, "must be %q or a list of slugs, got %q", SidebarAuto, s)
	}
	list, ok := asList(v)
	if !ok {
		return SidebarSpec{}, newConfigError(field, "must be %q or a list of slugs", SidebarAuto)
	}
	slugs := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for i, e := range list {
		entry := indexed(field, i)
		if e == nil {
			return SidebarSpec{}, newConfigError(entry, "empty slug entry (use \"\" for the section index)")
		}
		s, ok := e.(string)
		if !ok {
			return SidebarSpec{}, newConfigError(entry, "slug must be a string")
		}
		slug := cleanText(s)
		if reason := checkSlug(slug); reason != "" {
			return SidebarSpec{}, newConfigError(entry, "%s", reason)
		}
		if _, dup := seen[slug]; dup {
			return SidebarSpec{}, newConfigError(entry, "duplicate slug %q", slug)
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return SidebarSpec{slugs: slugs}, nil
}

// checkSlug rejects slugs that would not resolve beneath their prefix.
func checkSlug(slug string) string {
	if strings.HasPrefix(slug, "/") {
		return fmt.Sprintf("slug %q must be relative to its path prefix", slug)
	}
	if isExternalLink(slug) {
		return fmt.Sprintf("slug %q must not be an absolute URL", slug)
	}
	for _, seg := range strings.Split(slug, "/") {
		if seg == ".." {
			return fmt.Sprintf("slug %q must not escape its path prefix", slug)
		}
	}
	return ""
}
