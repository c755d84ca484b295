package heimdall

import (
	"io"

	"github.com/3-lines-studio/heimdall/internal/html"
	"github.com/3-lines-studio/heimdall/internal/style"
	"github.com/3-lines-studio/heimdall/internal/view"
)

// Aliases for the view core, so embedders can build and render their own
// trees without reaching into internal packages.

type PropertyMap = style.PropertyMap

type Value = style.Value

type String = style.String

type Number = style.Number

type Resolved = style.Resolved

type Node = view.Node

type Content = view.Content

type SectionContent = view.SectionContent

// Resolve converts a property map into its renderable style object,
// rewriting "--token" references to var() form.
func Resolve(props PropertyMap) Resolved {
	return style.Resolve(props)
}

func Divider(props PropertyMap) Node {
	return view.Divider(props)
}

func NavBar() Node {
	return view.NavBar()
}

func Footer() Node {
	return view.Footer()
}

func Container(children []Node) Node {
	return view.Container(children)
}

func Section(props PropertyMap) Node {
	return view.Section(props)
}

func Landing() Node {
	return view.Landing()
}

func LandingFrom(c Content) Node {
	return view.LandingFrom(c)
}

// Render serializes a composed tree to w using the built-in HTML host.
func Render(w io.Writer, root Node) error {
	return html.Render(w, root)
}
