package site

import (
	"maps"
	"slices"
)

// SidebarAuto is the literal that delegates sectioning to the generator.
const SidebarAuto = "auto"

// NavItem is one navbar entry. Items holds at most one level of children;
// a parent with children still uses Link as its landing page.
type NavItem struct {
	Text  string
	Link  string
	Items []NavItem
	// Extra holds theme-specific keys (icon, target, ariaLabel...) untouched.
	Extra map[string]any
}

// IsExternal reports whether the entry points at an absolute URL.
func (n NavItem) IsExternal() bool { return isExternalLink(n.Link) }

func (n NavItem) clone() NavItem {
	out := NavItem{Text: n.Text, Link: n.Link, Extra: cloneMap(n.Extra)}
	if len(n.Items) > 0 {
		out.Items = make([]NavItem, len(n.Items))
		for i, c := range n.Items {
			out.Items[i] = c.clone()
		}
	}
	return out
}

// SidebarSpec is either auto mode or an ordered list of unique page slugs
// relative to its path prefix. The empty slug is the section index page.
type SidebarSpec struct {
	auto  bool
	slugs []string
}

// AutoSidebar returns a spec delegating sectioning to the generator.
func AutoSidebar() SidebarSpec { return SidebarSpec{auto: true} }

// SlugSidebar returns a spec listing slugs in order. It does not validate;
// Resolve is the validating path.
func SlugSidebar(slugs ...string) SidebarSpec {
	return SidebarSpec{slugs: slices.Clone(slugs)}
}

func (s SidebarSpec) IsAuto() bool { return s.auto }

// Slugs returns a copy of the ordered slug list (nil in auto mode).
func (s SidebarSpec) Slugs() []string { return slices.Clone(s.slugs) }

// HeadTag is an element injected into every page's <head>.
type HeadTag struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

func (h HeadTag) clone() HeadTag {
	return HeadTag{Tag: h.Tag, Attrs: maps.Clone(h.Attrs), Content: h.Content}
}

// PluginRef names an installed generator extension. Options are opaque.
type PluginRef struct {
	Name    string
	Options map[string]any
}

func (p PluginRef) clone() PluginRef {
	return PluginRef{Name: p.Name, Options: cloneMap(p.Options)}
}

// SiteConfig is the validated, normalized site configuration. It is only
// produced by Resolve and every accessor returns a copy, so a value handed
// to the generator cannot change underneath it.
type SiteConfig struct {
	title            string
	description      string
	head             []HeadTag
	navbar           []NavItem
	sidebar          map[string]SidebarSpec
	plugins          []PluginRef
	lastUpdatedLabel string
	themeName        string
	themeOptions     map[string]any
	extra            map[string]any
}

func (c *SiteConfig) Title() string            { return c.title }
func (c *SiteConfig) Description() string      { return c.description }
func (c *SiteConfig) LastUpdatedLabel() string { return c.lastUpdatedLabel }

func (c *SiteConfig) Head() []HeadTag {
	out := make([]HeadTag, len(c.head))
	for i, h := range c.head {
		out[i] = h.clone()
	}
	return out
}

func (c *SiteConfig) Navbar() []NavItem {
	out := make([]NavItem, len(c.navbar))
	for i, n := range c.navbar {
		out[i] = n.clone()
	}
	return out
}

// Sidebar returns a copy of the prefix to spec mapping.
func (c *SiteConfig) Sidebar() map[string]SidebarSpec {
	out := make(map[string]SidebarSpec, len(c.sidebar))
	for k, v := range c.sidebar {
		out[k] = SidebarSpec{auto: v.auto, slugs: slices.Clone(v.slugs)}
	}
	return out
}

// SidebarPrefixes returns the sidebar keys in sorted order.
func (c *SiteConfig) SidebarPrefixes() []string {
	return slices.Sorted(maps.Keys(c.sidebar))
}

func (c *SiteConfig) Plugins() []PluginRef {
	out := make([]PluginRef, len(c.plugins))
	for i, p := range c.plugins {
		out[i] = p.clone()
	}
	return out
}

// ThemeName is the generator theme selected by name, if any.
func (c *SiteConfig) ThemeName() string { return c.themeName }

// Extra returns unrecognized top-level keys, passed through for the generator.
func (c *SiteConfig) Extra() map[string]any { return cloneMap(c.extra) }

// ThemeOptions returns theme-specific keys that were passed through untouched.
func (c *SiteConfig) ThemeOptions() map[string]any { return cloneMap(c.themeOptions) }

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
