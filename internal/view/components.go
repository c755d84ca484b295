package view

import "github.com/3-lines-studio/heimdall/internal/style"

// Divider is a leaf rule between content blocks. The caller map is the
// divider's entire style; there is no default map to merge into.
func Divider(props style.PropertyMap) Node {
	resolved := style.Resolve(props)
	return Node{Tag: "hr", Style: &resolved, Key: unkeyed}
}

// NavBar is the fixed top bar. It takes no overrides.
func NavBar() Node {
	return navBar(DefaultContent().Brand)
}

func navBar(brand string) Node {
	resolved := style.Resolve(style.PropertyMap{
		"background": style.String("--surface"),
		"padding":    style.String("16px 32px"),
		"box-shadow": style.String("--shadow-low"),
		"position":   style.String("sticky"),
		"top":        style.String("0"),
	})
	return Node{
		Tag:   "nav",
		Style: &resolved,
		Key:   unkeyed,
		Children: []Node{
			{Tag: "strong", Key: unkeyed, Text: brand},
		},
	}
}

// Footer is the fixed bottom bar. It takes no overrides.
func Footer() Node {
	return footer(DefaultContent().FooterNote)
}

func footer(note string) Node {
	resolved := style.Resolve(style.PropertyMap{
		"background": style.String("--surface-dim"),
		"color":      style.String("--text-muted"),
		"padding":    style.String("24px 32px"),
		"text-align": style.String("center"),
	})
	return Node{
		Tag:   "footer",
		Style: &resolved,
		Key:   unkeyed,
		Children: []Node{
			{Tag: "small", Key: unkeyed, Text: note},
		},
	}
}

// Container wraps the page's primary content region. Each child receives
// its zero-based position as identity key so a diffing host can match
// siblings of the same shape across renders. Keys are derived from the
// input order alone; no counter survives between calls.
func Container(children []Node) Node {
	keyed := make([]Node, len(children))
	for i, child := range children {
		child.Key = i
		keyed[i] = child
	}

	resolved := style.Resolve(style.PropertyMap{
		"max-width": style.String("720px"),
		"margin":    style.String("0 auto"),
		"padding":   style.String("48px 32px"),
		"color":     style.String("--text"),
	})
	return Node{Tag: "main", Style: &resolved, Key: unkeyed, Children: keyed}
}

// Section is an "About"-style content block: an optional caller style and
// fixed literal copy above a divider. The caller map fully replaces any
// section style; nothing is merged in.
func Section(props style.PropertyMap) Node {
	return section(DefaultContent().Sections[0], props)
}

func section(content SectionContent, props style.PropertyMap) Node {
	resolved := style.Resolve(props)
	return Node{
		Tag:   "section",
		Style: &resolved,
		Key:   unkeyed,
		Children: []Node{
			{Tag: "h2", Key: unkeyed, Text: content.Heading},
			{Tag: "p", Key: unkeyed, Text: content.Body},
			Divider(style.PropertyMap{
				"border":     style.String("none"),
				"border-top": style.String("1px solid"),
				"color":      style.String("--border"),
				"margin":     style.String("32px 0 0"),
			}),
		},
	}
}

// Landing composes the page root with the stock copy.
func Landing() Node {
	return LandingFrom(DefaultContent())
}

// LandingFrom composes the page root from the given content: nav bar,
// content container with one section per content block, footer, in that
// fixed order.
func LandingFrom(c Content) Node {
	sections := make([]Node, 0, len(c.Sections)+1)
	sections = append(sections, hero(c.Tagline))
	for _, s := range c.Sections {
		sections = append(sections, section(s, nil))
	}

	return Node{
		Tag: "div",
		Key: unkeyed,
		Children: []Node{
			navBar(c.Brand),
			Container(sections),
			footer(c.FooterNote),
		},
	}
}

func hero(tagline string) Node {
	resolved := style.Resolve(style.PropertyMap{
		"color":     style.String("--primary"),
		"font-size": style.String("28px"),
		"margin":    style.String("0 0 16px"),
	})
	return Node{
		Tag:   "header",
		Style: &resolved,
		Key:   unkeyed,
		Children: []Node{
			{Tag: "h1", Key: unkeyed, Text: tagline},
		},
	}
}
