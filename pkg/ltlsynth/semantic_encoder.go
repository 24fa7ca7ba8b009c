package ltlsynth

import "fmt"

// semanticEncoder emits the consistency clauses tying each DAG node's
// y[i,s,k,t] family to its children's, per each operator's semantics,
// plus the root separation constraints.
type semanticEncoder struct {
	ns   *Namespace
	aps  []string
	ops  OperatorSet
	n    int
	pos  *Sample
	neg  *Sample
}

func newSemanticEncoder(ns *Namespace, aps []string, ops OperatorSet, n int, pos, neg *Sample) *semanticEncoder {
	return &semanticEncoder{ns: ns, aps: aps, ops: ops, n: n, pos: pos, neg: neg}
}

// sem interns y[i, s, k, t].
func (e *semanticEncoder) sem(i int, kind SampleKind, k, t int) Var {
	return e.ns.Intern(SemKey{Node: i, Kind: kind, Trace: k, Pos: t})
}

func (e *semanticEncoder) atomLabel(i int, a string) Lit {
	return e.ns.Intern(atomLabelKey(i, a)).Pos()
}

func (e *semanticEncoder) opLabel(i int, op Op) Lit {
	return e.ns.Intern(opLabelKey(i, op)).Pos()
}

func (e *semanticEncoder) left(i, j int) Lit  { return e.ns.Intern(LeftKey{Node: i, Child: j}).Pos() }
func (e *semanticEncoder) right(i, j int) Lit { return e.ns.Intern(RightKey{Node: i, Child: j}).Pos() }

// eachSample runs fn once per (kind, trace-index, trace) pair, covering
// both positive and negative samples: "for each node i, each sample
// trace w".
func (e *semanticEncoder) eachSample(fn func(kind SampleKind, k int, w *Trace)) {
	if e.pos != nil {
		for k, w := range e.pos.Traces {
			fn(Positive, k, w)
		}
	}
	if e.neg != nil {
		for k, w := range e.neg.Traces {
			fn(Negative, k, w)
		}
	}
}

// encode emits every operator's consistency clauses for every node, then
// the root separation constraints.
func (e *semanticEncoder) encode(assertClause func(...Lit)) {
	for i := 0; i < e.n; i++ {
		e.encodeAtom(i, assertClause)
		if i >= 1 {
			e.encodeUnary(i, assertClause)
		}
		if i >= 2 {
			e.encodeBinary(i, assertClause)
		}
	}
	e.encodeSeparation(assertClause)
}

// encodeAtom: x[i,a] ⇒ ∀t: y[i,s,k,t] ↔ (a ∈ w_k.letter(t)).
func (e *semanticEncoder) encodeAtom(i int, assertClause func(...Lit)) {
	for _, a := range e.aps {
		opLit := e.atomLabel(i, a)
		e.eachSample(func(kind SampleKind, k int, w *Trace) {
			for t := 0; t < w.Len(); t++ {
				y := e.sem(i, kind, k, t).Pos()
				if w.Letter(t).Has(a) {
					assertClause(opLit.Not(), y)
				} else {
					assertClause(opLit.Not(), y.Not())
				}
			}
		})
	}
}

// encodeUnary dispatches the Not/Next/Globally/Finally rules, each gated
// by x[i,op] ∧ l[i,j].
func (e *semanticEncoder) encodeUnary(i int, assertClause func(...Lit)) {
	for _, op := range e.ops.Unary() {
		opLit := e.opLabel(i, op)
		for j := 0; j < i; j++ {
			lLit := e.left(i, j)
			e.eachSample(func(kind SampleKind, k int, w *Trace) {
				switch op {
				case OpNot:
					e.encodeNot(i, j, kind, k, w, opLit, lLit, assertClause)
				case OpNext:
					e.encodeNext(i, j, kind, k, w, opLit, lLit, assertClause)
				case OpGlobally:
					e.encodeGlobally(i, j, kind, k, w, opLit, lLit, assertClause)
				case OpFinally:
					e.encodeFinally(i, j, kind, k, w, opLit, lLit, assertClause)
				}
			})
		}
	}
}

// encodeBinary dispatches Or/And/Implies/Until, each gated by
// x[i,op] ∧ l[i,j] ∧ r[i,j'].
func (e *semanticEncoder) encodeBinary(i int, assertClause func(...Lit)) {
	for _, op := range e.ops.Binary() {
		opLit := e.opLabel(i, op)
		for j := 0; j < i; j++ {
			lLit := e.left(i, j)
			// j' ranges over all of [0, i), including j itself; no j == j'
			// case is skipped here, since the DAG encoder's distinct-children
			// clause (l[i,j] ⇒ ¬r[i,j]) already rules it out.
			for jp := 0; jp < i; jp++ {
				rLit := e.right(i, jp)
				e.eachSample(func(kind SampleKind, k int, w *Trace) {
					switch op {
					case OpOr:
						e.encodePointwise(i, j, jp, kind, k, w, opLit, lLit, rLit, assertClause, func(a, b bool) bool { return a || b })
					case OpAnd:
						e.encodePointwise(i, j, jp, kind, k, w, opLit, lLit, rLit, assertClause, func(a, b bool) bool { return a && b })
					case OpImplies:
						e.encodePointwise(i, j, jp, kind, k, w, opLit, lLit, rLit, assertClause, func(a, b bool) bool { return !a || b })
					case OpUntil:
						e.encodeUntil(i, j, jp, kind, k, w, opLit, lLit, rLit, assertClause)
					}
				})
			}
		}
	}
}

// encodeNot: x[i,!] ∧ l[i,j] ⇒ ∀t: y[i,·,·,t] ↔ ¬y[j,·,·,t].
func (e *semanticEncoder) encodeNot(i, j int, kind SampleKind, k int, w *Trace, opLit, lLit Lit, assertClause func(...Lit)) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		yj := e.sem(j, kind, k, t).Pos()
		assertGatedIff(assertClause, opLit, lLit, yi, yj.Not())
	}
}

// encodeNext: x[i,X] ∧ l[i,j] ⇒ ∀t: y[i,·,·,t] ↔ y[j,·,·,next(t)].
func (e *semanticEncoder) encodeNext(i, j int, kind SampleKind, k int, w *Trace, opLit, lLit Lit, assertClause func(...Lit)) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		yj := e.sem(j, kind, k, w.Next(t)).Pos()
		assertGatedIff(assertClause, opLit, lLit, yi, yj)
	}
}

// encodeGlobally: x[i,G] ∧ l[i,j] ⇒ ∀t: y[i,·,·,t] ↔ ∧_{t' in AUX(t)} y[j,·,·,t'].
func (e *semanticEncoder) encodeGlobally(i, j int, kind SampleKind, k int, w *Trace, opLit, lLit Lit, assertClause func(...Lit)) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		aux := w.AuxRange(t)
		// yi ⇒ y[j,t'] for every t' (forward direction of the conjunction).
		for _, tp := range aux {
			assertClause(opLit.Not(), lLit.Not(), yi.Not(), e.sem(j, kind, k, tp).Pos())
		}
		// (∧ y[j,t']) ⇒ yi (reverse direction): ¬y[j,t'_0] ∨ ... ∨ yi.
		clause := []Lit{opLit.Not(), lLit.Not(), yi}
		for _, tp := range aux {
			clause = append(clause, e.sem(j, kind, k, tp).NegLit())
		}
		assertClause(clause...)
	}
}

// encodeFinally: x[i,F] ∧ l[i,j] ⇒ ∀t: y[i,·,·,t] ↔ ∨_{t' in AUX(t)} y[j,·,·,t'].
func (e *semanticEncoder) encodeFinally(i, j int, kind SampleKind, k int, w *Trace, opLit, lLit Lit, assertClause func(...Lit)) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		aux := w.AuxRange(t)
		// (∨ y[j,t']) ⇒ yi: for every t', y[j,t'] ⇒ yi.
		for _, tp := range aux {
			assertClause(opLit.Not(), lLit.Not(), e.sem(j, kind, k, tp).NegLit(), yi)
		}
		// yi ⇒ (∨ y[j,t']): ¬yi ∨ y[j,t'_0] ∨ ... .
		clause := []Lit{opLit.Not(), lLit.Not(), yi.Not()}
		for _, tp := range aux {
			clause = append(clause, e.sem(j, kind, k, tp).Pos())
		}
		assertClause(clause...)
	}
}

// encodePointwise handles Or/And/Implies uniformly: x[i,op] ∧ l[i,j] ∧
// r[i,j'] ⇒ ∀t: y[i,·,·,t] ↔ (y[j,·,·,t] ⊙ y[j',·,·,t]).
//
// Since ⊙ is one of a fixed set of two-valued Boolean operators, the four
// rows of its truth table are asserted directly as clauses rather than
// building a generic CNF-of-iff for an arbitrary gate — the table is
// small and fixed, so explicit rows stay readable.
func (e *semanticEncoder) encodePointwise(i, j, jp int, kind SampleKind, k int, w *Trace, opLit, lLit, rLit Lit, assertClause func(...Lit), op func(a, b bool) bool) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		yj := e.sem(j, kind, k, t).Pos()
		yjp := e.sem(jp, kind, k, t).Pos()
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				want := op(a, b)
				la, lb := yj, yjp
				if !a {
					la = la.Not()
				}
				if !b {
					lb = lb.Not()
				}
				gate := []Lit{opLit.Not(), lLit.Not(), rLit.Not(), la.Not(), lb.Not()}
				if want {
					gate = append(gate, yi)
				} else {
					gate = append(gate, yi.Not())
				}
				assertClause(gate...)
			}
		}
	}
}

// encodeUntil: x[i,U] ∧ l[i,j] ∧ r[i,j'] ⇒ ∀t: y[i,·,·,t] ↔
// ∨_{m=0..|AUX(t)|-1} ( y[j', AUX(t)[m]] ∧ ∧_{k<m} y[j, AUX(t)[k]] ).
func (e *semanticEncoder) encodeUntil(i, j, jp int, kind SampleKind, k int, w *Trace, opLit, lLit, rLit Lit, assertClause func(...Lit)) {
	for t := 0; t < w.Len(); t++ {
		yi := e.sem(i, kind, k, t).Pos()
		aux := w.AuxRange(t)

		// Introduce one auxiliary literal per disjunct m, d_m <-> (y[j',aux[m]] ∧ ∧_{k<m} y[j,aux[k]]),
		// then yi <-> ∨ d_m. Auxiliary variables keep the clause count
		// quadratic instead of exponential in |AUX(t)|.
		disjuncts := make([]Lit, len(aux))
		for m, tm := range aux {
			d := e.ns.Intern(untilAuxKey(i, j, jp, kind, k, t, m)).Pos()
			disjuncts[m] = d
			until2 := e.sem(jp, kind, k, tm).Pos()
			conj := []Lit{until2}
			for _, tk := range aux[:m] {
				conj = append(conj, e.sem(j, kind, k, tk).Pos())
			}
			// d ⇒ each conjunct.
			for _, c := range conj {
				assertClause(d.Not(), c)
			}
			// (∧ conjuncts) ⇒ d.
			clause := []Lit{d}
			for _, c := range conj {
				clause = append(clause, c.Not())
			}
			assertClause(clause...)
		}

		// yi ⇒ ∨ d_m.
		clause := []Lit{opLit.Not(), lLit.Not(), rLit.Not(), yi.Not()}
		clause = append(clause, disjuncts...)
		assertClause(clause...)
		// each d_m ⇒ yi.
		for _, d := range disjuncts {
			assertClause(opLit.Not(), lLit.Not(), rLit.Not(), d.Not(), yi)
		}
	}
}

// untilAuxKey names the Tseitin auxiliary variable introduced per Until
// disjunct. It is its own VarKey variant, distinct from SemKey, since the
// Model Decoder never looks one up — only x/l/r matter for decoding.
func untilAuxKey(i, j, jp int, kind SampleKind, k, t, m int) VarKey {
	return untilKey{Node: i, Left: j, Right: jp, Kind: kind, Trace: k, Pos: t, M: m}
}

type untilKey struct {
	Node, Left, Right int
	Kind              SampleKind
	Trace, Pos, M     int
}

func (untilKey) isVarKey() {}
func (k untilKey) String() string {
	return fmt.Sprintf("u[%d,%d,%d,%s,%d,%d,%d]", k.Node, k.Left, k.Right, k.Kind, k.Trace, k.Pos, k.M)
}

// assertGatedIff asserts opLit ∧ childLit ⇒ (a ↔ b) as two 4-wide clauses.
func assertGatedIff(assertClause func(...Lit), opLit, childLit, a, b Lit) {
	assertClause(opLit.Not(), childLit.Not(), a.Not(), b)
	assertClause(opLit.Not(), childLit.Not(), b.Not(), a)
}

// encodeSeparation asserts the root acceptance/rejection constraints:
// every positive trace satisfies the root at position 0, every negative
// trace refutes it.
func (e *semanticEncoder) encodeSeparation(assertClause func(...Lit)) {
	root := e.n - 1
	if e.pos != nil {
		for k := range e.pos.Traces {
			assertClause(e.sem(root, Positive, k, 0).Pos())
		}
	}
	if e.neg != nil {
		for k := range e.neg.Traces {
			assertClause(e.sem(root, Negative, k, 0).NegLit())
		}
	}
}
