package pages

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Title returns the text of the first level-1 heading in a Markdown page,
// ignoring a leading YAML frontmatter block. It returns "" when none exists.
func Title(source []byte) string {
	body := stripFrontmatter(source)
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		var sb strings.Builder
		collectText(&sb, h, body)
		title = strings.TrimSpace(sb.String())
		return gmast.WalkStop, nil
	})
	return title
}

func collectText(sb *strings.Builder, n gmast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		default:
			collectText(sb, c, source)
		}
	}
}

func stripFrontmatter(source []byte) []byte {
	for _, open := range []string{"---\n", "---\r\n"} {
		if !bytes.HasPrefix(source, []byte(open)) {
			continue
		}
		rest := source[len(open):]
		for _, closing := range []string{"\n---\n", "\n---\r\n"} {
			if i := bytes.Index(rest, []byte(closing)); i >= 0 {
				return rest[i+len(closing):]
			}
		}
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return nil
		}
	}
	return source
}
