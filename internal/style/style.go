// Package style converts semantic property maps into renderable style
// objects. The only transformation is design-token substitution: a string
// value beginning with "--" is a reference to a named design variable and
// is rewritten to its var() form. Everything else passes through untouched.
package style

import "strings"

// tokenMarker prefixes a design-token reference, e.g. "--primary".
const tokenMarker = "--"

// Value is a single entry in a PropertyMap. The set of implementations is
// closed: a string literal, a number literal, or a nested map holding a
// state variant (a hover block and the like).
type Value interface {
	isValue()
}

// String is a literal string value or a token reference.
type String string

// Number is a literal numeric value.
type Number float64

// PropertyMap maps style-property names to values. Keys are unique and
// insertion order carries no meaning.
type PropertyMap map[string]Value

func (String) isValue()      {}
func (Number) isValue()      {}
func (PropertyMap) isValue() {}

// Resolved is the renderable form handed to a host: a single Style mapping
// in which every token reference has been rewritten to var(<token>).
type Resolved struct {
	Style PropertyMap
}

// Resolve maps a property map to its resolved style object. A nil map is
// treated as empty. Token substitution applies only to direct string
// values: token strings inside a nested variant map are left as-is.
// Resolve is pure; the input map is never mutated.
func Resolve(props PropertyMap) Resolved {
	out := make(PropertyMap, len(props))
	for name, v := range props {
		if s, ok := v.(String); ok && strings.HasPrefix(string(s), tokenMarker) {
			out[name] = String("var(" + string(s) + ")")
			continue
		}
		out[name] = v
	}
	return Resolved{Style: out}
}
