package ltlsynth

import "fmt"

// Var is a dense, 1-based backend variable id, matching the DIMACS-style
// literal numbering the gini backend (backend_gini.go) expects. 0 is
// never a valid Var.
type Var int32

// Lit is a literal: a Var together with a polarity. A negated Lit asserts
// the variable's negation in a clause.
type Lit struct {
	V    Var
	Neg  bool
}

// Pos returns the positive literal for v.
func (v Var) Pos() Lit { return Lit{V: v} }

// NegLit returns the negative literal for v.
func (v Var) NegLit() Lit { return Lit{V: v, Neg: true} }

// Not returns the complement of l.
func (l Lit) Not() Lit { return Lit{V: l.V, Neg: !l.Neg} }

// Symbol is a node label: either an atomic proposition name or an
// operator token.
type Symbol string

func atomSymbol(name string) Symbol { return Symbol(name) }
func opSymbol(op Op) Symbol         { return Symbol(op) }

// atomLabelKey and opLabelKey are the only constructors callers should
// use to build a LabelKey, so the IsOp discriminant is never left
// unset by accident at a call site.
func atomLabelKey(node int, name string) LabelKey {
	return LabelKey{Node: node, Sym: atomSymbol(name), IsOp: false}
}

func opLabelKey(node int, op Op) LabelKey {
	return LabelKey{Node: node, Sym: opSymbol(op), IsOp: true}
}

// VarKey is the typed sum of the variable families the encoding needs
// (x, l/r and y, plus the Until auxiliaries in semantic_encoder.go),
// replacing the source's dash/underscore-joined string keys.
type VarKey interface {
	isVarKey()
	String() string
}

// LabelKey names x[i, label]: node i is labeled with label. IsOp
// discriminates the two label families an AP name and an operator token
// can otherwise collide on (e.g. an AP literally named "X"): atoms have
// IsOp false, operators have IsOp true, so x[i,"X"-the-atom] and
// x[i,"X"-the-Next-operator] intern to distinct variables.
type LabelKey struct {
	Node int
	Sym  Symbol
	IsOp bool
}

func (LabelKey) isVarKey() {}
func (k LabelKey) String() string {
	if k.IsOp {
		return fmt.Sprintf("x[%d,op:%s]", k.Node, k.Sym)
	}
	return fmt.Sprintf("x[%d,atom:%s]", k.Node, k.Sym)
}

// LeftKey names l[i, j]: node i's left child is j.
type LeftKey struct{ Node, Child int }

func (LeftKey) isVarKey() {}
func (k LeftKey) String() string {
	return fmt.Sprintf("l[%d,%d]", k.Node, k.Child)
}

// RightKey names r[i, j]: node i's right child is j.
type RightKey struct{ Node, Child int }

func (RightKey) isVarKey() {}
func (k RightKey) String() string {
	return fmt.Sprintf("r[%d,%d]", k.Node, k.Child)
}

// SemKey names y[i, s, k, t]: the truth of node i's subformula on trace k
// of kind s at position t. Trace is an explicit index into the Sample,
// replacing the source's dash-joined u/v stringification that could
// alias between two traces sharing a stringified loop.
type SemKey struct {
	Node  int
	Kind  SampleKind
	Trace int
	Pos   int
}

func (SemKey) isVarKey() {}
func (k SemKey) String() string {
	return fmt.Sprintf("y[%d,%s,%d,%d]", k.Node, k.Kind, k.Trace, k.Pos)
}

// Namespace interns VarKeys into dense Vars and supports the reverse
// lookup the Model Decoder needs.
type Namespace struct {
	forward map[VarKey]Var
	reverse map[Var]VarKey
	next    Var
}

// NewNamespace creates an empty Namespace. Var 0 is reserved/unused so
// the zero Var value can mean "not interned".
func NewNamespace() *Namespace {
	return &Namespace{
		forward: make(map[VarKey]Var),
		reverse: make(map[Var]VarKey),
		next:    1,
	}
}

// Intern returns the Var for key, creating one on first use.
func (ns *Namespace) Intern(key VarKey) Var {
	if v, ok := ns.forward[key]; ok {
		return v
	}
	v := ns.next
	ns.next++
	ns.forward[key] = v
	ns.reverse[v] = key
	return v
}

// Lookup reverses a Var back to its VarKey, used by the Model Decoder to
// read a satisfying assignment without re-parsing strings.
func (ns *Namespace) Lookup(v Var) (VarKey, bool) {
	k, ok := ns.reverse[v]
	return k, ok
}

// Len reports how many distinct variables have been interned.
func (ns *Namespace) Len() int { return len(ns.forward) }
