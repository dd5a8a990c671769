package site

import "slices"

var navItemKeys = []string{"text", "link", "items", "children"}

// resolveNavbar validates the top-level entries and their children. seen maps
// each internal path to the field that first declared it.
func (r *resolver) resolveNavbar(v any, field string) ([]NavItem, error) {
	list, ok := asList(v)
	if !ok {
		return nil, newConfigError(field, "must be a list")
	}
	seen := make(map[string]string)
	out := make([]NavItem, 0, len(list))
	for i, e := range list {
		item, err := r.resolveNavItem(e, indexed(field, i), 0, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *resolver) resolveNavItem(e any, field string, depth int, seen map[string]string) (NavItem, error) {
	var m map[string]any
	switch t := e.(type) {
	case string:
		m = map[string]any{"link": t}
	default:
		var ok bool
		if m, ok = asMap(e); !ok {
			return NavItem{}, newConfigError(field, "must be a mapping or a link string")
		}
	}

	var item NavItem
	textRaw, hasText := m["text"]
	if hasText && textRaw != nil {
		s, ok := textRaw.(string)
		if !ok {
			return NavItem{}, newConfigError(field+".text", "must be a string")
		}
		if item.Text = cleanText(s); item.Text == "" {
			return NavItem{}, newConfigError(field+".text", "must not be empty")
		}
	}

	linkRaw := m["link"]
	if linkRaw == nil {
		return NavItem{}, newConfigError(field+".link", "is required")
	}
	link, ok := linkRaw.(string)
	if !ok {
		return NavItem{}, newConfigError(field+".link", "must be a string")
	}
	item.Link = cleanText(link)
	if reason := checkLink(item.Link); reason != "" {
		return NavItem{}, newConfigError(field+".link", "%s", reason)
	}

	if item.Text == "" {
		if item.Text = deriveText(item.Link); item.Text == "" {
			return NavItem{}, newConfigError(field+".text", "is missing and cannot be derived from link %q", item.Link)
		}
		r.res.note("%s.text derived from link as %q", field, item.Text)
	}

	if !item.IsExternal() {
		if prev, dup := seen[item.Link]; dup {
			return NavItem{}, newConfigError(field+".link", "duplicate path %q (first declared at %s)", item.Link, prev)
		}
		seen[item.Link] = field + ".link"
	}

	childrenKey := "items"
	children, hasItems := m["items"]
	if alt, hasAlt := m["children"]; hasAlt && alt != nil {
		if hasItems && children != nil {
			return NavItem{}, newConfigError(field+".children", "conflicts with %s.items", field)
		}
		children, hasItems, childrenKey = alt, true, "children"
	}
	if hasItems && children != nil {
		childField := field + "." + childrenKey
		if depth > 0 {
			return NavItem{}, newConfigError(childField, "nesting deeper than one level is not supported")
		}
		list, ok := asList(children)
		if !ok {
			return NavItem{}, newConfigError(childField, "must be a list")
		}
		if childrenKey != "items" {
			r.res.note("normalized %s to %s.items", childField, field)
		}
		for i, c := range list {
			child, err := r.resolveNavItem(c, indexed(childField, i), depth+1, seen)
			if err != nil {
				return NavItem{}, err
			}
			item.Items = append(item.Items, child)
		}
	}

	for k, v := range m {
		if slices.Contains(navItemKeys, k) {
			continue
		}
		if item.Extra == nil {
			item.Extra = make(map[string]any)
		}
		item.Extra[k] = cloneValue(v)
	}
	return item, nil
}
