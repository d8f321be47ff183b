package ir

// Package ir defines the intermediate representation selector documents are
// lowered to before compilation. This package is internal and not part of
// the public API.

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodeCompound NodeKind = iota
	NodeCombined
)

// Node is the root IR node interface.
type Node interface {
	Kind() NodeKind
}

// Part is one compound-selector part. Category holds the document key
// ("element", "id", "class", "attr", "pseudoClass", "pseudoElement").
type Part struct {
	Category string
	Value    string
}

// Compound is a sequence of parts rendered without separators.
type Compound struct {
	Parts []Part
}

func (c *Compound) Kind() NodeKind { return NodeCompound }

// Combined joins two nodes with a combinator.
type Combined struct {
	Left       Node
	Combinator string
	Right      Node
}

func (c *Combined) Kind() NodeKind { return NodeCombined }

// Walk visits n and its children depth-first, left to right.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	if c, ok := n.(*Combined); ok {
		Walk(c.Left, fn)
		Walk(c.Right, fn)
	}
}
