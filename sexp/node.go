// Package sexp defines the tree produced by reading S-expression text.
//
// A tree is built from uniform nodes tagged with a Kind. Lists are
// right-nested chains of cons cells terminated by a nil node, so
// (a b) is Cons(Symbol("a"), Cons(Symbol("b"), Nil())). Trees are
// finite and acyclic; constructors never share child nodes.
package sexp

type Kind int

const (
	KindNil Kind = iota
	KindCons
	KindSymbol
	KindString
	KindInteger
)

var kindNames = map[Kind]string{
	KindNil:     "nil",
	KindCons:    "cons",
	KindSymbol:  "symbol",
	KindString:  "string",
	KindInteger: "integer",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Node is one cell of a syntax tree. Which fields are meaningful
// depends on Kind: Head and Tail for cons cells, Text for symbols
// and strings, Int for integers.
type Node struct {
	Kind Kind

	Head *Node
	Tail *Node

	Text string
	Int  int64
}

// Nil returns a fresh empty-list terminator.
func Nil() *Node {
	return &Node{Kind: KindNil}
}

// Cons returns a cell holding head and tail.
func Cons(head, tail *Node) *Node {
	return &Node{Kind: KindCons, Head: head, Tail: tail}
}

// Symbol returns an unquoted token node. An empty name is legal.
func Symbol(text string) *Node {
	return &Node{Kind: KindSymbol, Text: text}
}

// String returns a quoted-string node holding the decoded text.
func String(text string) *Node {
	return &Node{Kind: KindString, Text: text}
}

// Integer returns a numeric literal node.
func Integer(v int64) *Node {
	return &Node{Kind: KindInteger, Int: v}
}

// IsList reports whether n is a list node (a cons cell or nil).
func (n *Node) IsList() bool {
	return n != nil && (n.Kind == KindCons || n.Kind == KindNil)
}

// Len returns the number of cons cells in the chain starting at n.
// Atoms and nil have length 0.
func (n *Node) Len() int {
	count := 0
	for n != nil && n.Kind == KindCons {
		count++
		n = n.Tail
	}
	return count
}

// Equal reports whether two trees have the same shape and atoms.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindCons:
		return Equal(a.Head, b.Head) && Equal(a.Tail, b.Tail)
	case KindSymbol, KindString:
		return a.Text == b.Text
	case KindInteger:
		return a.Int == b.Int
	}
	return false
}
