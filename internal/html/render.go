// Package html is the concrete render host: it turns a composed view tree
// into an HTML document. The view core never imports this package; trees
// are handed over once, fully built.
package html

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/3-lines-studio/heimdall/internal/style"
	"github.com/3-lines-studio/heimdall/internal/view"
)

// voidTags never carry children or a closing tag.
var voidTags = map[string]bool{
	"hr":  true,
	"br":  true,
	"img": true,
}

// Render writes the node tree rooted at root to w.
func Render(w io.Writer, root view.Node) error {
	var b strings.Builder
	writeNode(&b, root, 0)
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write rendered tree: %w", err)
	}
	return nil
}

func writeNode(b *strings.Builder, n view.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(n.Tag)
	if n.Keyed() {
		fmt.Fprintf(b, ` data-key="%d"`, n.Key)
	}
	if css := inlineStyle(n.Style); css != "" {
		fmt.Fprintf(b, ` style="%s"`, css)
	}

	if voidTags[n.Tag] {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">")

	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}

	if len(n.Children) > 0 {
		b.WriteString("\n")
		for _, child := range n.Children {
			writeNode(b, child, depth+1)
		}
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">\n")
}

// inlineStyle flattens the direct scalar entries of a resolved style into
// a declaration list, key-sorted so output is byte-stable. Nested variant
// maps have no inline representation and stay on the node.
func inlineStyle(res *style.Resolved) string {
	if res == nil || len(res.Style) == 0 {
		return ""
	}

	names := make([]string, 0, len(res.Style))
	for name := range res.Style {
		if _, nested := res.Style[name].(style.PropertyMap); nested {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]string, 0, len(names))
	for _, name := range names {
		decls = append(decls, name+": "+scalar(res.Style[name]))
	}
	return strings.Join(decls, "; ")
}

func scalar(v style.Value) string {
	switch val := v.(type) {
	case style.String:
		return string(val)
	case style.Number:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	default:
		return ""
	}
}
