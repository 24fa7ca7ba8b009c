package ltlsynth

// Evaluate is the reference LTL interpreter used to cross-check the SAT
// encoding's semantics. It walks the Formula tree directly against
// a Trace, using the same Next/AuxRange primitives the semantic encoder
// is built from, but without ever going through clauses or a solver.
func Evaluate(f *Formula, w *Trace, t int) bool {
	if f.IsAtom() {
		return w.Letter(t).Has(f.Atom)
	}
	switch f.Op {
	case OpNot:
		return !Evaluate(f.Children[0], w, t)
	case OpNext:
		return Evaluate(f.Children[0], w, w.Next(t))
	case OpGlobally:
		for _, p := range w.AuxRange(t) {
			if !Evaluate(f.Children[0], w, p) {
				return false
			}
		}
		return true
	case OpFinally:
		for _, p := range w.AuxRange(t) {
			if Evaluate(f.Children[0], w, p) {
				return true
			}
		}
		return false
	case OpOr:
		return Evaluate(f.Children[0], w, t) || Evaluate(f.Children[1], w, t)
	case OpAnd:
		return Evaluate(f.Children[0], w, t) && Evaluate(f.Children[1], w, t)
	case OpImplies:
		return !Evaluate(f.Children[0], w, t) || Evaluate(f.Children[1], w, t)
	case OpUntil:
		positions := w.AuxRange(t)
		for m, p := range positions {
			if !Evaluate(f.Children[1], w, p) {
				continue
			}
			holds := true
			for _, q := range positions[:m] {
				if !Evaluate(f.Children[0], w, q) {
					holds = false
					break
				}
			}
			if holds {
				return true
			}
		}
		return false
	default:
		panic("ltlsynth: Evaluate: unrecognized operator " + string(f.Op))
	}
}
