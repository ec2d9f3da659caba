// Package doctree models the parsed document tree consumed by the DokuWiki
// translator. Trees are built by the parsers in docparse, or by hand in tests.
package doctree

import "strings"

// Node is one element of a document tree. Text nodes carry Value and have
// no children; every other kind uses Children. Parent is a back-reference
// maintained by Append and is only used for context queries.
type Node struct {
	Kind     Kind
	Value    string
	Attrs    map[string]string
	Children []*Node
	Parent   *Node
}

// New returns a node of the given kind adopting children.
func New(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	n.Append(children...)
	return n
}

// Text returns a text leaf.
func Text(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

// Append adds children in order and points their Parent at n. Nil children
// are skipped so parsers can append optional results directly.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// WithAttr sets an attribute and returns n for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// AsText concatenates the text of every leaf below n.
func (n *Node) AsText() string {
	if n.Kind == KindText {
		return n.Value
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.AsText())
	}
	return b.String()
}

// Walk calls fn for n and each descendant in document order. Returning
// false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
