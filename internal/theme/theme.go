// Package theme holds the named design variables that property maps
// reference through the "--token" syntax.
package theme

import "strings"

// Token is one named design variable.
type Token struct {
	Name  string // full custom-property name, e.g. "--primary"
	Value string
}

// Palette is an ordered set of tokens. Order is the emission order of the
// :root block, so output stays byte-stable.
type Palette struct {
	Tokens []Token
}

// Default returns the stock landing-page palette.
func Default() Palette {
	return Palette{Tokens: []Token{
		{Name: "--primary", Value: "#7d56f4"},
		{Name: "--accent", Value: "#89ddff"},
		{Name: "--surface", Value: "#ffffff"},
		{Name: "--surface-dim", Value: "#f4f2fb"},
		{Name: "--text", Value: "#1e1e2e"},
		{Name: "--text-muted", Value: "#6c7086"},
		{Name: "--border", Value: "#e2e0ee"},
		{Name: "--shadow-low", Value: "0 1px 3px rgba(30, 30, 46, 0.12)"},
		{Name: "--shadow-high", Value: "0 8px 24px rgba(30, 30, 46, 0.16)"},
	}}
}

// Lookup returns the value of a token by its full "--name" form.
func (p Palette) Lookup(name string) (string, bool) {
	for _, tok := range p.Tokens {
		if tok.Name == name {
			return tok.Value, true
		}
	}
	return "", false
}

// CSSVariables renders the palette as a :root declaration block, ready to
// inline into a document head so var() references resolve.
func (p Palette) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range p.Tokens {
		b.WriteString("  ")
		b.WriteString(tok.Name)
		b.WriteString(": ")
		b.WriteString(tok.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
