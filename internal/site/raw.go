package site

// ToRaw converts the configuration back into the canonical raw document
// shape. Resolve(cfg.ToRaw()) yields a SiteConfig equal to cfg.
func (c *SiteConfig) ToRaw() map[string]any {
	raw := cloneMap(c.extra)
	if raw == nil {
		raw = make(map[string]any)
	}
	raw["title"] = c.title
	raw["description"] = c.description

	head := make([]any, 0, len(c.head))
	for _, h := range c.head {
		tuple := []any{h.Tag}
		if len(h.Attrs) > 0 || h.Content != "" {
			attrs := make(map[string]any, len(h.Attrs))
			for k, v := range h.Attrs {
				attrs[k] = v
			}
			tuple = append(tuple, attrs)
		}
		if h.Content != "" {
			tuple = append(tuple, h.Content)
		}
		head = append(head, tuple)
	}
	raw["head"] = head

	navbar := make([]any, 0, len(c.navbar))
	for _, n := range c.navbar {
		navbar = append(navbar, n.toRaw())
	}
	raw["navbar"] = navbar

	sidebar := make(map[string]any, len(c.sidebar))
	for prefix, spec := range c.sidebar {
		if spec.auto {
			sidebar[prefix] = SidebarAuto
			continue
		}
		slugs := make([]any, len(spec.slugs))
		for i, s := range spec.slugs {
			slugs[i] = s
		}
		sidebar[prefix] = slugs
	}
	raw["sidebar"] = sidebar

	plugins := make([]any, 0, len(c.plugins))
	for _, p := range c.plugins {
		if len(p.Options) == 0 {
			plugins = append(plugins, p.Name)
			continue
		}
		plugins = append(plugins, []any{p.Name, cloneMap(p.Options)})
	}
	raw["plugins"] = plugins

	if c.lastUpdatedLabel != "" {
		raw["lastUpdatedLabel"] = c.lastUpdatedLabel
	}
	if c.themeName != "" {
		raw["themeName"] = c.themeName
	}
	if len(c.themeOptions) > 0 {
		raw["theme"] = cloneMap(c.themeOptions)
	}
	return raw
}

func (n NavItem) toRaw() map[string]any {
	m := cloneMap(n.Extra)
	if m == nil {
		m = make(map[string]any)
	}
	m["text"] = n.Text
	m["link"] = n.Link
	if len(n.Items) > 0 {
		items := make([]any, len(n.Items))
		for i, c := range n.Items {
			items[i] = c.toRaw()
		}
		m["items"] = items
	}
	return m
}
