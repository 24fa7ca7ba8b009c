package ltlsynth

import "strings"

// Formula is an LTL syntax tree: what the Model Decoder unfolds a
// satisfying syntax-DAG assignment into, re-rendering shared
// subexpressions at each occurrence, so the DAG's sharing is gone once a
// Formula exists; it is a tree, not a DAG.
type Formula struct {
	// Atom holds the AP name when this node is a leaf (Op == "").
	Atom string
	// Op holds the operator when this node is internal.
	Op       Op
	Children []*Formula
}

// NewAtom builds a leaf formula naming atomic proposition a.
func NewAtom(a string) *Formula { return &Formula{Atom: a} }

// NewUnary builds a one-child formula for a unary operator.
func NewUnary(op Op, child *Formula) *Formula {
	return &Formula{Op: op, Children: []*Formula{child}}
}

// NewBinary builds a two-child formula for a binary operator.
func NewBinary(op Op, left, right *Formula) *Formula {
	return &Formula{Op: op, Children: []*Formula{left, right}}
}

// IsAtom reports whether this node is an atomic-proposition leaf.
func (f *Formula) IsAtom() bool { return f.Op == "" }

// String renders the prefix-with-parenthesized-arguments grammar:
// ATOM | UNARY '(' formula ')' | BINARY '(' formula ',' formula ')'.
func (f *Formula) String() string {
	var b strings.Builder
	f.write(&b)
	return b.String()
}

func (f *Formula) write(b *strings.Builder) {
	if f.IsAtom() {
		b.WriteString(f.Atom)
		return
	}
	b.WriteString(string(f.Op))
	b.WriteByte('(')
	for i, c := range f.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.write(b)
	}
	b.WriteByte(')')
}

// Size counts the nodes in the formula tree (atoms and operators alike),
// used by the Minimality testable property to compare against
// the syntax-DAG node count n that produced it.
func (f *Formula) Size() int {
	n := 1
	for _, c := range f.Children {
		n += c.Size()
	}
	return n
}
