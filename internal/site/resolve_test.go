package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notesSite mirrors the study-notes configuration the resolver was written for.
func notesSite() map[string]any {
	return map[string]any{
		"title":       "学习笔记",
		"description": "我自己的学习笔记, 自用",
		"head":        []any{map[string]any{"link": "/public/css/index.css"}},
		"theme": map[string]any{
			"sidebarDepth": 4,
			"headerDepth":  4,
			"sidebar": map[string]any{
				"/go/":        []any{"", "part0", "part1", "part2", "part3", "part4"},
				"/interview/": []any{"", "os", "network", "db", "java"},
			},
			"lastUpdated": "更新时间",
			"navbar": []any{
				map[string]any{"text": "首页", "link": "/"},
				map[string]any{
					"text": "面试题笔记",
					"link": "/interview/",
					"items": []any{
						map[string]any{"text": "操作系统", "link": "/interview/os/"},
						map[string]any{"text": "计算机网络", "link": "/interview/network/"},
					},
				},
				map[string]any{
					"text": "Go学习笔记",
					"link": "/go/",
					"items": []any{
						map[string]any{"text": "Go基础", "link": "/go/part0"},
						map[string]any{"text": "Go并发编程", "link": "/go/part3/"},
					},
				},
				map[string]any{"text": "External", "link": "https://google.com"},
			},
		},
	}
}

func requireConfigError(t *testing.T, err error, field string) *ConfigError {
	t.Helper()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
	assert.Equal(t, field, cfgErr.Field)
	return cfgErr
}

func TestResolveNotesSite(t *testing.T) {
	cfg, res, err := ResolveWithNotes(notesSite())
	require.NoError(t, err)

	assert.Equal(t, "学习笔记", cfg.Title())
	assert.Equal(t, "更新时间", cfg.LastUpdatedLabel())
	assert.Equal(t, map[string]any{"sidebarDepth": 4, "headerDepth": 4}, cfg.ThemeOptions())

	nav := cfg.Navbar()
	require.Len(t, nav, 4)
	assert.Len(t, nav[1].Items, 2)
	assert.True(t, nav[3].IsExternal())

	assert.Equal(t, []string{"/go/", "/interview/"}, cfg.SidebarPrefixes())
	assert.Equal(t, []string{"", "part0", "part1", "part2", "part3", "part4"}, cfg.Sidebar()["/go/"].Slugs())

	head := cfg.Head()
	require.Len(t, head, 1)
	assert.Equal(t, HeadTag{Tag: "link", Attrs: map[string]string{"href": "/public/css/index.css", "rel": "stylesheet"}}, head[0])

	assert.NotEmpty(t, res.Warnings)
}

func TestResolveScenarios(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		_, err := Resolve(map[string]any{"title": "Notes", "description": "", "navbar": []any{}})
		requireConfigError(t, err, "description")
	})

	t.Run("nested navbar", func(t *testing.T) {
		cfg, err := Resolve(map[string]any{
			"title":       "Notes",
			"description": "x",
			"navbar": []any{
				map[string]any{"text": "Home", "link": "/"},
				map[string]any{"text": "Go", "link": "/go/", "items": []any{
					map[string]any{"text": "Basics", "link": "/go/part0"},
				}},
			},
		})
		require.NoError(t, err)
		nav := cfg.Navbar()
		require.Len(t, nav, 2)
		require.Len(t, nav[1].Items, 1)
		assert.Equal(t, NavItem{Text: "Basics", Link: "/go/part0"}, nav[1].Items[0])
	})

	t.Run("duplicate sidebar slug", func(t *testing.T) {
		_, err := Resolve(map[string]any{
			"title": "Notes", "description": "x",
			"sidebar": map[string]any{"/go/": []any{"", "part0", "part0"}},
		})
		cfgErr := requireConfigError(t, err, `sidebar["/go/"][2]`)
		assert.Contains(t, cfgErr.Reason, `"part0"`)
	})

	t.Run("derived nav text", func(t *testing.T) {
		cfg, err := Resolve(map[string]any{
			"title": "Notes", "description": "x",
			"navbar": []any{map[string]any{"link": "/go/part1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "part1", cfg.Navbar()[0].Text)
	})
}

func TestResolveRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"nil document", nil, ""},
		{"missing title", map[string]any{"description": "x"}, "title"},
		{"blank title", map[string]any{"title": "   ", "description": "x"}, "title"},
		{"numeric title", map[string]any{"title": 2024, "description": "x"}, "title"},
		{"missing description", map[string]any{"title": "Notes"}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.raw)
			requireConfigError(t, err, tt.field)
		})
	}
}

func TestResolveNavbarValidation(t *testing.T) {
	base := func(navbar ...any) map[string]any {
		return map[string]any{"title": "Notes", "description": "x", "navbar": navbar}
	}
	tests := []struct {
		name   string
		raw    map[string]any
		field  string
		reason string
	}{
		{
			name:   "relative link",
			raw:    base(map[string]any{"text": "Home", "link": "/"}, map[string]any{"text": "A", "link": "/a/"}, map[string]any{"text": "Bad", "link": "go/part0"}),
			field:  "navbar[2].link",
			reason: "missing scheme or leading slash",
		},
		{
			name:   "duplicate path",
			raw:    base(map[string]any{"text": "Go", "link": "/go/"}, map[string]any{"text": "Go again", "link": "/go/"}),
			field:  "navbar[1].link",
			reason: `duplicate path "/go/"`,
		},
		{
			name: "duplicate path across levels",
			raw: base(
				map[string]any{"text": "Go", "link": "/go/", "items": []any{map[string]any{"text": "Index", "link": "/go/"}}},
			),
			field:  "navbar[0].items[0].link",
			reason: "duplicate path",
		},
		{
			name:   "missing link",
			raw:    base(map[string]any{"text": "Home"}),
			field:  "navbar[0].link",
			reason: "is required",
		},
		{
			name:   "empty text",
			raw:    base(map[string]any{"text": " ", "link": "/"}),
			field:  "navbar[0].text",
			reason: "must not be empty",
		},
		{
			name:   "root link cannot supply text",
			raw:    base(map[string]any{"link": "/"}),
			field:  "navbar[0].text",
			reason: "cannot be derived",
		},
		{
			name: "nesting too deep",
			raw: base(map[string]any{"text": "Go", "link": "/go/", "items": []any{
				map[string]any{"text": "Basics", "link": "/go/part0", "items": []any{map[string]any{"text": "Deep", "link": "/go/deep"}}},
			}}),
			field:  "navbar[0].items[0].items",
			reason: "nesting deeper than one level",
		},
		{
			name:   "child without link",
			raw:    base(map[string]any{"text": "Go", "link": "/go/", "items": []any{map[string]any{"text": "Basics"}}}),
			field:  "navbar[0].items[0].link",
			reason: "is required",
		},
		{
			name:   "url without host",
			raw:    base(map[string]any{"text": "Broken", "link": "https://"}),
			field:  "navbar[0].link",
			reason: "missing a host",
		},
		{
			name:   "protocol relative",
			raw:    base(map[string]any{"text": "CDN", "link": "//cdn.example.com"}),
			field:  "navbar[0].link",
			reason: "protocol-relative",
		},
		{
			name:   "entry not a mapping",
			raw:    base(42),
			field:  "navbar[0]",
			reason: "must be a mapping",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.raw)
			cfgErr := requireConfigError(t, err, tt.field)
			assert.Contains(t, cfgErr.Reason, tt.reason)
		})
	}

	for _, link := range []string{
		"http://[::1]:8080/",
		"http://127.0.0.1/",
		"http://my_host.local/x",
		"https://例子.测试/",
	} {
		t.Run("accepts "+link, func(t *testing.T) {
			cfg, err := Resolve(base(map[string]any{"text": "Host", "link": link}))
			require.NoError(t, err)
			assert.Equal(t, link, cfg.Navbar()[0].Link)
		})
	}
}

func TestResolveExternalLinksMayRepeat(t *testing.T) {
	cfg, err := Resolve(map[string]any{
		"title": "Notes", "description": "x",
		"navbar": []any{
			map[string]any{"text": "Search", "link": "https://google.com"},
			map[string]any{"text": "Search again", "link": "https://google.com"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, cfg.Navbar(), 2)
}

func TestResolveNormalizesText(t *testing.T) {
	cfg, err := Resolve(map[string]any{
		"title":       "  Notes\t",
		"description": "\n x ",
		"navbar": []any{
			"/go/part1",
			map[string]any{"link": "https://example.com"},
			map[string]any{"text": "  Café ", "link": "  /cafe/ "},
			map[string]any{"link": "/go/%E5%9F%BA%E7%A1%80/"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Notes", cfg.Title())
	assert.Equal(t, "x", cfg.Description())

	nav := cfg.Navbar()
	assert.Equal(t, "part1", nav[0].Text)
	assert.Equal(t, "example.com", nav[1].Text)
	assert.Equal(t, "Café", nav[2].Text)
	assert.Equal(t, "/cafe/", nav[2].Link)
	assert.Equal(t, "基础", nav[3].Text)
}

func TestResolveNavbarAliasesAndExtras(t *testing.T) {
	cfg, res, err := ResolveWithNotes(map[string]any{
		"title": "Notes", "description": "x",
		"themeConfig": map[string]any{
			"nav": []any{
				map[string]any{"text": "Go", "link": "/go/", "ariaLabel": "GoLearn", "children": []any{
					map[string]any{"text": "Basics", "link": "/go/part0", "target": "_self"},
				}},
			},
		},
	})
	require.NoError(t, err)
	nav := cfg.Navbar()
	require.Len(t, nav, 1)
	assert.Equal(t, map[string]any{"ariaLabel": "GoLearn"}, nav[0].Extra)
	require.Len(t, nav[0].Items, 1)
	assert.Equal(t, map[string]any{"target": "_self"}, nav[0].Items[0].Extra)
	assert.Contains(t, res.Warnings, "normalized themeConfig.nav to navbar")
}

func TestResolveConflictingKeys(t *testing.T) {
	t.Run("nav and navbar", func(t *testing.T) {
		_, err := Resolve(map[string]any{
			"title": "Notes", "description": "x",
			"navbar": []any{}, "nav": []any{},
		})
		requireConfigError(t, err, "nav")
	})
	t.Run("top level and theme both set sidebar", func(t *testing.T) {
		_, err := Resolve(map[string]any{
			"title": "Notes", "description": "x",
			"sidebar": "auto",
			"theme":   map[string]any{"sidebar": "auto"},
		})
		cfgErr := requireConfigError(t, err, "theme.sidebar")
		assert.Equal(t, "conflicts with sidebar", cfgErr.Reason)
	})
	t.Run("theme and themeConfig", func(t *testing.T) {
		_, err := Resolve(map[string]any{
			"title": "Notes", "description": "x",
			"theme": map[string]any{}, "themeConfig": map[string]any{},
		})
		requireConfigError(t, err, "theme")
	})
}

func TestResolveThemeName(t *testing.T) {
	cfg, err := Resolve(map[string]any{
		"title": "Notes", "description": "x",
		"theme":       "reco",
		"themeConfig": map[string]any{"sidebar": "auto", "subSidebar": "auto"},
	})
	require.NoError(t, err)
	assert.Equal(t, "reco", cfg.ThemeName())
	assert.Equal(t, map[string]any{"subSidebar": "auto"}, cfg.ThemeOptions())
	assert.True(t, cfg.Sidebar()["/"].IsAuto())
}

func TestResolveLastUpdated(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"更新时间", "更新时间"},
		{true, "Last Updated"},
		{false, ""},
	}
	for _, tt := range tests {
		cfg, err := Resolve(map[string]any{"title": "Notes", "description": "x", "lastUpdated": tt.value})
		require.NoError(t, err)
		assert.Equal(t, tt.want, cfg.LastUpdatedLabel())
	}

	_, err := Resolve(map[string]any{"title": "Notes", "description": "x", "lastUpdated": 3})
	requireConfigError(t, err, "lastUpdated")
}

func TestResolvePassesThroughUnknownKeys(t *testing.T) {
	cfg, res, err := ResolveWithNotes(map[string]any{
		"title": "Notes", "description": "x",
		"base": "/notes/", "dest": "dist",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"base": "/notes/", "dest": "dist"}, cfg.Extra())
	assert.Equal(t, []string{
		"passing through unrecognized key base",
		"passing through unrecognized key dest",
	}, res.Warnings)
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "navbar[2].link", Reason: "missing scheme or leading slash"}
	assert.Equal(t, "navbar[2].link: missing scheme or leading slash", err.Error())
	assert.Equal(t, "boom", (&ConfigError{Reason: "boom"}).Error())
}
