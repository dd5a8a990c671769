package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// HugoConfig is the subset of hugo.yaml this tool owns. Params stays a
// flexible map so theme options keep their original shape.
type HugoConfig struct {
	Title  string                `yaml:"title"`
	Theme  string                `yaml:"theme,omitempty"`
	Params map[string]any        `yaml:"params,omitempty"`
	Menu   map[string][]MenuItem `yaml:"menu,omitempty"`
}

// MenuItem is one Hugo menu entry. Children reference their parent by
// identifier rather than nesting.
type MenuItem struct {
	Identifier string         `yaml:"identifier"`
	Name       string         `yaml:"name"`
	URL        string         `yaml:"url"`
	Weight     int            `yaml:"weight"`
	Parent     string         `yaml:"parent,omitempty"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// HugoDocument maps a SiteConfig onto Hugo's configuration model.
func HugoDocument(cfg *site.SiteConfig) HugoConfig {
	params := cfg.ThemeOptions()
	if params == nil {
		params = map[string]any{}
	}
	params["description"] = cfg.Description()
	if label := cfg.LastUpdatedLabel(); label != "" {
		params["lastUpdated"] = label
	}
	if sidebar := hugoSidebar(cfg); len(sidebar) > 0 {
		params["sidebar"] = sidebar
	}

	var main []MenuItem
	used := map[string]int{}
	for i, n := range cfg.Navbar() {
		id := uniqueID(used, menuIdentifier(n, fmt.Sprintf("nav-%d", i)))
		main = append(main, menuItem(n, id, "", (i+1)*10))
		for j, c := range n.Items {
			childID := uniqueID(used, menuIdentifier(c, fmt.Sprintf("%s-%d", id, j)))
			main = append(main, menuItem(c, childID, id, j+1))
		}
	}

	doc := HugoConfig{Title: cfg.Title(), Theme: cfg.ThemeName(), Params: params}
	if len(main) > 0 {
		doc.Menu = map[string][]MenuItem{"main": main}
	}
	return doc
}

func renderHugo(cfg *site.SiteConfig) ([]byte, error) {
	data, err := yaml.Marshal(HugoDocument(cfg))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to marshal Hugo config").Build()
	}
	return data, nil
}

func menuItem(n site.NavItem, id, parent string, weight int) MenuItem {
	item := MenuItem{Identifier: id, Name: n.Text, URL: n.Link, Weight: weight, Parent: parent}
	if n.IsExternal() {
		item.Params = map[string]any{"external": true}
	}
	return item
}

// menuIdentifier derives a stable identifier from an internal path
// ("/go/part1/" -> "go-part1"); external and root links use fallback.
func menuIdentifier(n site.NavItem, fallback string) string {
	if n.IsExternal() {
		return fallback
	}
	p := n.Link
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	id := strings.ReplaceAll(strings.Trim(p, "/"), "/", "-")
	if id == "" {
		return fallback
	}
	return id
}

// uniqueID suffixes repeats: "/go/part1" and "/go/part1/" are distinct
// navbar paths but share an identifier stem.
func uniqueID(used map[string]int, id string) string {
	used[id]++
	if n := used[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}

// hugoSidebar lists, per prefix, the page URLs in order; auto sections are
// marked so a theme partial can fall back to section listing.
func hugoSidebar(cfg *site.SiteConfig) map[string]any {
	out := map[string]any{}
	for _, prefix := range cfg.SidebarPrefixes() {
		spec := cfg.Sidebar()[prefix]
		if spec.IsAuto() {
			out[prefix] = site.SidebarAuto
			continue
		}
		pages := make([]string, 0, len(spec.Slugs()))
		for _, slug := range spec.Slugs() {
			pages = append(pages, prefix+slug)
		}
		out[prefix] = pages
	}
	return out
}
