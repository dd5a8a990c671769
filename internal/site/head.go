package site

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (r *resolver) resolveHead() ([]HeadTag, error) {
	out := make([]HeadTag, 0)
	v, ok := r.raw["head"]
	if !ok || v == nil {
		return out, nil
	}
	list, ok := asList(v)
	if !ok {
		return nil, newConfigError("head", "must be a list")
	}
	for i, e := range list {
		field := indexed("head", i)
		var (
			tag HeadTag
			err error
		)
		if tuple, ok := asList(e); ok {
			tag, err = headFromTuple(tuple, field)
		} else if m, ok := asMap(e); ok {
			if tag, err = headFromObject(m, field); err == nil {
				r.res.note("%s: object form converted to tag %q", field, tag.Tag)
			}
		} else {
			err = newConfigError(field, "must be a [tag, attrs, content] list or a {tag: value} mapping")
		}
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, nil
}

func headFromTuple(tuple []any, field string) (HeadTag, error) {
	if len(tuple) == 0 || len(tuple) > 3 {
		return HeadTag{}, newConfigError(field, "must have between 1 and 3 elements")
	}
	name, ok := tuple[0].(string)
	if !ok {
		return HeadTag{}, newConfigError(indexed(field, 0), "tag name must be a string")
	}
	tag := HeadTag{Tag: strings.ToLower(strings.TrimSpace(name))}
	if tag.Tag == "" {
		return HeadTag{}, newConfigError(indexed(field, 0), "tag name must not be empty")
	}
	if len(tuple) > 1 && tuple[1] != nil {
		attrs, ok := asMap(tuple[1])
		if !ok {
			return HeadTag{}, newConfigError(indexed(field, 1), "attributes must be a mapping")
		}
		var err error
		if tag.Attrs, err = stringAttrs(attrs, indexed(field, 1)); err != nil {
			return HeadTag{}, err
		}
	}
	if len(tuple) > 2 && tuple[2] != nil {
		content, ok := tuple[2].(string)
		if !ok {
			return HeadTag{}, newConfigError(indexed(field, 2), "content must be a string")
		}
		tag.Content = strings.TrimSpace(content)
	}
	return tag, nil
}

// headFromObject handles the {link: "/public/css/index.css"} shorthand. A
// string value becomes href for link, src for script, inner content otherwise.
// Inner content is trimmed but not NFC-folded, since script and style bodies
// are code.
func headFromObject(m map[string]any, field string) (HeadTag, error) {
	if len(m) != 1 {
		return HeadTag{}, newConfigError(field, "object form must have exactly one key")
	}
	name := slices.Collect(maps.Keys(m))[0]
	tag := HeadTag{Tag: strings.ToLower(strings.TrimSpace(name))}
	if tag.Tag == "" {
		return HeadTag{}, newConfigError(field, "tag name must not be empty")
	}
	switch v := m[name].(type) {
	case string:
		value := strings.TrimSpace(v)
		switch tag.Tag {
		case "link":
			tag.Attrs = map[string]string{"href": value}
			if strings.HasSuffix(value, ".css") {
				tag.Attrs["rel"] = "stylesheet"
			}
		case "script":
			tag.Attrs = map[string]string{"src": value}
		default:
			tag.Content = value
		}
	default:
		attrs, ok := asMap(v)
		if !ok {
			return HeadTag{}, newConfigError(field+"."+name, "must be a string or an attribute mapping")
		}
		var err error
		if tag.Attrs, err = stringAttrs(attrs, field+"."+name); err != nil {
			return HeadTag{}, err
		}
	}
	return tag, nil
}

func stringAttrs(m map[string]any, field string) (map[string]string, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case string:
			out[k] = t
		case bool, int, int64, float64:
			out[k] = fmt.Sprint(t)
		default:
			return nil, newConfigError(field+"."+k, "attribute value must be a scalar")
		}
	}
	return out, nil
}
