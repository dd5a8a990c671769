package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

func sampleConfig(t *testing.T) *site.SiteConfig {
	t.Helper()
	cfg, err := site.Resolve(map[string]any{
		"title":       "学习笔记",
		"description": "notes",
		"head":        []any{map[string]any{"link": "/public/css/index.css"}},
		"navbar": []any{
			map[string]any{"text": "首页", "link": "/"},
			map[string]any{"text": "Go", "link": "/go/", "items": []any{
				map[string]any{"text": "Go基础", "link": "/go/part0"},
				map[string]any{"text": "包管理", "link": "/go/part1/"},
			}},
			map[string]any{"text": "External", "link": "https://google.com"},
		},
		"sidebar": map[string]any{
			"/go/":        []any{"", "part0", "part1/"},
			"/interview/": "auto",
		},
		"plugins":          []any{"search", []any{"zoom", map[string]any{"selector": "img"}}},
		"lastUpdatedLabel": "更新时间",
		"theme":            map[string]any{"sidebarDepth": 4},
	})
	require.NoError(t, err)
	return cfg
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HUGO")
	require.NoError(t, err)
	assert.Equal(t, FormatHugo, f)

	f, err = ParseFormat(" VuePress ")
	require.NoError(t, err)
	assert.Equal(t, FormatVuePress, f)

	_, err = ParseFormat("jekyll")
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Equal(t, []string{"hugo", "vuepress"}, FormatNames())
}

func TestRenderVuePress(t *testing.T) {
	data, err := Render(sampleConfig(t), FormatVuePress)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"学习笔记"`, "non-ASCII text must not be escaped")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "学习笔记", doc["title"])
	assert.Equal(t, []any{[]any{"link", map[string]any{"href": "/public/css/index.css", "rel": "stylesheet"}}}, doc["head"])
	assert.Equal(t, []any{[]any{"search"}, []any{"zoom", map[string]any{"selector": "img"}}}, doc["plugins"])

	theme := doc["theme"].(map[string]any)
	assert.Equal(t, float64(4), theme["sidebarDepth"])
	assert.Equal(t, true, theme["lastUpdated"])
	assert.Equal(t, "更新时间", theme["lastUpdatedText"])
	assert.Equal(t, map[string]any{
		"/go/":        []any{"", "part0", "part1/"},
		"/interview/": "auto",
	}, theme["sidebar"])

	navbar := theme["navbar"].([]any)
	require.Len(t, navbar, 3)
	goEntry := navbar[1].(map[string]any)
	assert.Equal(t, "/go/", goEntry["link"])
	assert.Len(t, goEntry["children"], 2)
}

func TestRenderHugo(t *testing.T) {
	data, err := Render(sampleConfig(t), FormatHugo)
	require.NoError(t, err)

	var doc HugoConfig
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "学习笔记", doc.Title)
	assert.Equal(t, "notes", doc.Params["description"])
	assert.Equal(t, "更新时间", doc.Params["lastUpdated"])
	assert.Equal(t, 4, doc.Params["sidebarDepth"])
	assert.Equal(t, map[string]any{
		"/go/":        []any{"/go/", "/go/part0", "/go/part1/"},
		"/interview/": "auto",
	}, doc.Params["sidebar"])

	assert.Equal(t, []MenuItem{
		{Identifier: "nav-0", Name: "首页", URL: "/", Weight: 10},
		{Identifier: "go", Name: "Go", URL: "/go/", Weight: 20},
		{Identifier: "go-part0", Name: "Go基础", URL: "/go/part0", Weight: 1, Parent: "go"},
		{Identifier: "go-part1", Name: "包管理", URL: "/go/part1/", Weight: 2, Parent: "go"},
		{Identifier: "nav-2", Name: "External", URL: "https://google.com", Weight: 30, Params: map[string]any{"external": true}},
	}, doc.Menu["main"])
}

func TestHugoIdentifiersAreUnique(t *testing.T) {
	cfg, err := site.Resolve(map[string]any{
		"title": "Notes", "description": "x",
		"navbar": []any{"/go/part1", "/go/part1/"},
	})
	require.NoError(t, err)

	menu := HugoDocument(cfg).Menu["main"]
	require.Len(t, menu, 2)
	assert.Equal(t, "go-part1", menu[0].Identifier)
	assert.Equal(t, "go-part1-2", menu[1].Identifier)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleConfig(t), Format("jekyll"))
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestJSONSafe(t *testing.T) {
	in := map[string]any{"opts": map[any]any{1: "one", "two": []any{map[any]any{true: "yes"}}}}
	out := jsonSafe(in)
	_, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"opts": map[string]any{"1": "one", "two": []any{map[string]any{"true": "yes"}}}}, out)
}
