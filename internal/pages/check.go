// Package pages maps sidebar slugs and internal navbar links onto the
// Markdown files that back them.
package pages

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// indexFiles back a directory URL ("/go/" or the empty slug).
var indexFiles = []string{"README.md", "index.md"}

// Page is a configured URL that resolved to a file.
type Page struct {
	Field string
	URL   string
	File  string // relative to the docs root, slash-separated
	Title string
}

// Finding is a configured URL with no backing file.
type Finding struct {
	Field   string
	URL     string
	Problem string
}

// Report is the outcome of Check, sorted by field.
type Report struct {
	Pages    []Page
	Findings []Finding
}

// OK reports whether every configured page exists.
func (r *Report) OK() bool { return len(r.Findings) == 0 }

// Check resolves every sidebar entry and internal navbar link against root.
func Check(cfg *site.SiteConfig, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NotFoundError(fmt.Sprintf("docs root not found: %s", root)).WithContext("path", root).Build()
	}
	if !info.IsDir() {
		return nil, errors.ValidationError(fmt.Sprintf("docs root is not a directory: %s", root)).WithContext("path", root).Build()
	}

	c := &checker{root: root, report: &Report{}}
	sidebar := cfg.Sidebar()
	for _, prefix := range cfg.SidebarPrefixes() {
		spec := sidebar[prefix]
		field := fmt.Sprintf("sidebar[%q]", prefix)
		if spec.IsAuto() {
			c.listSection(field, prefix)
			continue
		}
		for i, slug := range spec.Slugs() {
			slog.Debug("Resolving sidebar slug", logfields.Prefix(prefix), logfields.Slug(slug))
			c.resolve(fmt.Sprintf("%s[%d]", field, i), prefix+slug)
		}
	}
	for i, n := range cfg.Navbar() {
		field := fmt.Sprintf("navbar[%d]", i)
		c.resolveNav(field, n)
		for j, child := range n.Items {
			c.resolveNav(fmt.Sprintf("%s.items[%d]", field, j), child)
		}
	}

	sort.SliceStable(c.report.Pages, func(i, j int) bool { return c.report.Pages[i].Field < c.report.Pages[j].Field })
	sort.SliceStable(c.report.Findings, func(i, j int) bool { return c.report.Findings[i].Field < c.report.Findings[j].Field })
	return c.report, nil
}

type checker struct {
	root   string
	report *Report
}

func (c *checker) resolveNav(field string, n site.NavItem) {
	if n.IsExternal() {
		return
	}
	c.resolve(field+".link", n.Link)
}

// resolve finds the file behind url: directory URLs map to an index file,
// others to <url>.md and then <url>/README.md or <url>/index.md.
func (c *checker) resolve(field, url string) {
	p := url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSuffix(p, ".html")

	var candidates []string
	if strings.HasSuffix(p, "/") {
		for _, idx := range indexFiles {
			candidates = append(candidates, path.Join(p, idx))
		}
	} else {
		candidates = append(candidates, strings.TrimSuffix(p, ".md")+".md")
		for _, idx := range indexFiles {
			candidates = append(candidates, path.Join(p, idx))
		}
	}

	for _, rel := range candidates {
		rel = strings.TrimPrefix(rel, "/")
		full := filepath.Join(c.root, filepath.FromSlash(rel))
		if st, err := os.Stat(full); err == nil && !st.IsDir() {
			c.addPage(field, url, rel, full)
			return
		}
	}
	slog.Debug("Page not found", logfields.Field(field), logfields.Path(url))
	c.report.Findings = append(c.report.Findings, Finding{
		Field:   field,
		URL:     url,
		Problem: "no page found (tried " + strings.Join(candidates, ", ") + ")",
	})
}

// listSection reports every Markdown file directly under an auto section.
func (c *checker) listSection(field, prefix string) {
	dir := filepath.Join(c.root, filepath.FromSlash(strings.Trim(prefix, "/")))
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.report.Findings = append(c.report.Findings, Finding{Field: field, URL: prefix, Problem: "section directory not found"})
		return
	}
	found := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		rel := path.Join(strings.Trim(prefix, "/"), e.Name())
		url := prefix + strings.TrimSuffix(e.Name(), ".md")
		for _, idx := range indexFiles {
			if e.Name() == idx {
				url = prefix
			}
		}
		c.addPage(field, url, rel, filepath.Join(dir, e.Name()))
		found++
	}
	slog.Debug("Auto section listed", logfields.Prefix(prefix), logfields.Count(found))
	if found == 0 {
		c.report.Findings = append(c.report.Findings, Finding{Field: field, URL: prefix, Problem: "section has no Markdown pages"})
	}
}

func (c *checker) addPage(field, url, rel, full string) {
	page := Page{Field: field, URL: url, File: rel}
	if data, err := os.ReadFile(full); err == nil {
		page.Title = Title(data)
	} else {
		slog.Warn("Failed to read page", logfields.Path(full), logfields.Error(err))
	}
	c.report.Pages = append(c.report.Pages, page)
}
