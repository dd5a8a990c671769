package export

import "git.home.luguber.info/inful/sitecfg/internal/site"

// VuePressDocument builds the user-config object of a VuePress 2 site: head
// entries and plugins as tuples, navigation under theme.
func VuePressDocument(cfg *site.SiteConfig) map[string]any {
	theme := cfg.ThemeOptions()
	if theme == nil {
		theme = map[string]any{}
	}
	if name := cfg.ThemeName(); name != "" {
		theme["name"] = name
	}

	navbar := make([]any, 0)
	for _, n := range cfg.Navbar() {
		navbar = append(navbar, vuepressNavItem(n))
	}
	theme["navbar"] = navbar

	sidebar := map[string]any{}
	for prefix, spec := range cfg.Sidebar() {
		if spec.IsAuto() {
			sidebar[prefix] = site.SidebarAuto
			continue
		}
		sidebar[prefix] = spec.Slugs()
	}
	theme["sidebar"] = sidebar
	if label := cfg.LastUpdatedLabel(); label != "" {
		theme["lastUpdated"] = true
		theme["lastUpdatedText"] = label
	}

	head := make([]any, 0)
	for _, h := range cfg.Head() {
		attrs := map[string]string{}
		for k, v := range h.Attrs {
			attrs[k] = v
		}
		entry := []any{h.Tag, attrs}
		if h.Content != "" {
			entry = append(entry, h.Content)
		}
		head = append(head, entry)
	}

	plugins := make([]any, 0)
	for _, p := range cfg.Plugins() {
		if p.Options == nil {
			plugins = append(plugins, []any{p.Name})
			continue
		}
		plugins = append(plugins, []any{p.Name, p.Options})
	}

	doc := cfg.Extra()
	if doc == nil {
		doc = map[string]any{}
	}
	doc["title"] = cfg.Title()
	doc["description"] = cfg.Description()
	doc["head"] = head
	doc["theme"] = theme
	doc["plugins"] = plugins
	return doc
}

func vuepressNavItem(n site.NavItem) map[string]any {
	m := map[string]any{}
	for k, v := range n.Extra {
		m[k] = v
	}
	m["text"] = n.Text
	m["link"] = n.Link
	if len(n.Items) > 0 {
		children := make([]any, len(n.Items))
		for i, c := range n.Items {
			children[i] = vuepressNavItem(c)
		}
		m["children"] = children
	}
	return m
}
