package ltlsynth

import "github.com/Yoiro/ltl-learner/internal/satutil"

// dagEncoder emits the propositional structure of an n-node syntax-DAG:
// label well-formedness, the root-atom rule, child edges gated by
// operator arity, distinct children, and parent reachability.
type dagEncoder struct {
	ns  *Namespace
	aps []string
	ops OperatorSet
	n   int
}

func newDAGEncoder(ns *Namespace, aps []string, ops OperatorSet, n int) *dagEncoder {
	return &dagEncoder{ns: ns, aps: aps, ops: ops, n: n}
}

// labelChoice is one (symbol, family) pair a node may be labeled with.
type labelChoice struct {
	sym  Symbol
	isOp bool
}

// symbols returns every label a node may carry: the declared APs plus the
// enabled operators, in deterministic order (APs first, then allOps
// order) so clause emission is reproducible. The isOp tag travels with
// each symbol so an AP name that collides with an operator token still
// interns to a distinct LabelKey.
func (e *dagEncoder) symbols() []labelChoice {
	out := make([]labelChoice, 0, len(e.aps)+len(e.ops.List()))
	for _, a := range e.aps {
		out = append(out, labelChoice{sym: atomSymbol(a), isOp: false})
	}
	for _, op := range e.ops.List() {
		out = append(out, labelChoice{sym: opSymbol(op), isOp: true})
	}
	return out
}

func negateLit(l Lit) Lit { return l.Not() }

// encode appends every DAG-structure clause to assertClause and returns
// nothing; backend.Assert is called once per clause.
func (e *dagEncoder) encode(assertClause func(...Lit)) {
	e.encodeLabels(assertClause)
	e.encodeRootAtom(assertClause)
	if e.n > 1 {
		for i := 1; i < e.n; i++ {
			e.encodeChildEdges(i, assertClause)
		}
	}
	e.encodeParentReachability(assertClause)
}

// encodeLabels asserts exactly-one label per node.
func (e *dagEncoder) encodeLabels(assertClause func(...Lit)) {
	syms := e.symbols()
	for i := 0; i < e.n; i++ {
		lits := make([]Lit, len(syms))
		for j, s := range syms {
			lits[j] = e.ns.Intern(LabelKey{Node: i, Sym: s.sym, IsOp: s.isOp}).Pos()
		}
		for _, clause := range satutil.ExactlyOne(lits, negateLit) {
			assertClause(clause...)
		}
	}
}

// encodeRootAtom asserts that node 0 is labeled with some atom, the
// induction base every child reference ultimately bottoms out at.
func (e *dagEncoder) encodeRootAtom(assertClause func(...Lit)) {
	lits := make([]Lit, len(e.aps))
	for i, a := range e.aps {
		lits[i] = e.ns.Intern(atomLabelKey(0, a)).Pos()
	}
	assertClause(lits...)
}

// encodeChildEdges asserts, for node i: operator labels require exactly
// one left child (and, if binary, exactly one right child); unary labels
// forbid a right child; atom labels forbid any child; and left/right
// children must differ.
func (e *dagEncoder) encodeChildEdges(i int, assertClause func(...Lit)) {
	childIdx := make([]int, i)
	for j := range childIdx {
		childIdx[j] = j
	}

	leftLits := func() []Lit {
		out := make([]Lit, len(childIdx))
		for k, j := range childIdx {
			out[k] = e.ns.Intern(LeftKey{Node: i, Child: j}).Pos()
		}
		return out
	}
	rightLits := func() []Lit {
		out := make([]Lit, len(childIdx))
		for k, j := range childIdx {
			out[k] = e.ns.Intern(RightKey{Node: i, Child: j}).Pos()
		}
		return out
	}

	// Operator node ⇒ exactly one left child (arity >= 1 requires i >= 1,
	// already guaranteed by the caller starting at i = 1).
	for _, op := range e.ops.List() {
		if op.arity() > i {
			// An operator whose arity exceeds its node index cannot be
			// placed here: reject the labeling outright rather than
			// emitting an edge constraint with no valid witness.
			assertClause(e.ns.Intern(opLabelKey(i, op)).NegLit())
			continue
		}
		opLit := e.ns.Intern(opLabelKey(i, op)).Pos()
		for _, clause := range satutil.ExactlyOne(leftLits(), negateLit) {
			assertClause(append([]Lit{opLit.Not()}, clause...)...)
		}
		if op.IsBinary() {
			for _, clause := range satutil.ExactlyOne(rightLits(), negateLit) {
				assertClause(append([]Lit{opLit.Not()}, clause...)...)
			}
		} else {
			for _, j := range childIdx {
				assertClause(opLit.Not(), e.ns.Intern(RightKey{Node: i, Child: j}).NegLit())
			}
		}
	}

	// Atom label ⇒ no children at all.
	for _, a := range e.aps {
		atomLit := e.ns.Intern(atomLabelKey(i, a)).Pos()
		for _, j := range childIdx {
			assertClause(atomLit.Not(), e.ns.Intern(LeftKey{Node: i, Child: j}).NegLit())
			assertClause(atomLit.Not(), e.ns.Intern(RightKey{Node: i, Child: j}).NegLit())
		}
	}

	// Distinct children: l[i,j] ⇒ ¬r[i,j].
	for _, j := range childIdx {
		assertClause(e.ns.Intern(LeftKey{Node: i, Child: j}).NegLit(), e.ns.Intern(RightKey{Node: i, Child: j}).NegLit())
	}
}

// encodeParentReachability asserts that every non-root node has at least
// one parent edge from a higher-indexed node, so every DAG node actually
// participates in the formula.
func (e *dagEncoder) encodeParentReachability(assertClause func(...Lit)) {
	for i := 0; i < e.n-1; i++ {
		var lits []Lit
		for p := i + 1; p < e.n; p++ {
			lits = append(lits, e.ns.Intern(LeftKey{Node: p, Child: i}).Pos())
			lits = append(lits, e.ns.Intern(RightKey{Node: p, Child: i}).Pos())
		}
		if len(lits) > 0 {
			assertClause(lits...)
		}
	}
}
