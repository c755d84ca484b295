// Package view composes the landing page as a tree of plain value nodes.
// Every producer is a single-pass, input-to-output mapping: build a
// property map, resolve it, wrap children. No producer holds state.
package view

import "github.com/3-lines-studio/heimdall/internal/style"

// unkeyed marks nodes that never participate in sibling reconciliation.
const unkeyed = -1

// Node describes one renderable element. Nodes are built once per render
// pass, handed to a host, and discarded.
type Node struct {
	Tag      string
	Style    *style.Resolved // nil when the element carries no style
	Key      int             // zero-based position assigned by Container; -1 when unkeyed
	Text     string
	Children []Node
}

// Keyed reports whether the node carries a positional identity key.
func (n Node) Keyed() bool {
	return n.Key != unkeyed
}
