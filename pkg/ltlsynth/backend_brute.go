package ltlsynth

import "context"

// BruteBackend is a small DPLL-style SAT backend with no third-party
// dependency, used by unit tests that must not require gini's build
// tooling. It is not wired into the CLI — it exists purely as a second,
// simpler implementation of the same solving contract GiniBackend
// satisfies, useful here for cross-checking the encoder against a
// trivially-correct search instead of an opaque external library.
//
// Performance characteristics:
//   - Exponential time in the worst case (2^d for d variables)
//   - Adequate only for the small, hand-written fixtures in tests
type BruteBackend struct {
	clauses    [][]Lit
	assignment map[Var]bool
	maxVar     Var
}

// NewBruteBackend creates an empty brute-force backend.
func NewBruteBackend() *BruteBackend {
	b := &BruteBackend{}
	b.Reset()
	return b
}

func (b *BruteBackend) Reset() {
	b.clauses = nil
	b.assignment = nil
	b.maxVar = 0
}

func (b *BruteBackend) Assert(clause ...Lit) {
	cp := make([]Lit, len(clause))
	copy(cp, clause)
	b.clauses = append(b.clauses, cp)
	for _, l := range clause {
		if l.V > b.maxVar {
			b.maxVar = l.V
		}
	}
}

// Check performs exhaustive backtracking search over variables in
// ascending order, pruning a branch as soon as some clause is falsified
// (no unit propagation), checking ctx between decisions so long-running
// fixtures can still be cancelled. The search stops as soon as every
// clause is satisfied, so variables not yet reached stay unassigned.
func (b *BruteBackend) Check(ctx context.Context) (Status, error) {
	assign := make(map[Var]bool, b.maxVar)
	ok, err := b.search(ctx, assign, 1)
	if err != nil {
		return StatusUnknown, err
	}
	if ok {
		b.assignment = assign
		return StatusSAT, nil
	}
	b.assignment = nil
	return StatusUNSAT, nil
}

func (b *BruteBackend) search(ctx context.Context, assign map[Var]bool, next Var) (bool, error) {
	select {
	case <-ctx.Done():
		return false, newCancelled(ctx.Err())
	default:
	}

	ok, conflict := evalClauses(b.clauses, assign)
	if conflict {
		return false, nil
	}
	if ok || next > b.maxVar {
		return ok, nil
	}

	for _, v := range []bool{false, true} {
		assign[next] = v
		if sat, err := b.search(ctx, assign, next+1); err != nil {
			return false, err
		} else if sat {
			return true, nil
		}
	}
	delete(assign, next)
	return false, nil
}

// evalClauses reports (allSatisfied, conflict) for the current partial
// assignment: conflict is true iff some clause is already falsified by
// the literals currently assigned.
func evalClauses(clauses [][]Lit, assign map[Var]bool) (bool, bool) {
	allSatisfied := true
	for _, clause := range clauses {
		satisfied := false
		clauseDecided := true
		for _, l := range clause {
			v, ok := assign[l.V]
			if !ok {
				clauseDecided = false
				continue
			}
			if v != l.Neg {
				satisfied = true
			}
		}
		if !satisfied {
			if clauseDecided {
				return false, true
			}
			allSatisfied = false
		}
	}
	return allSatisfied, false
}

func (b *BruteBackend) Value(v Var) (bool, bool) {
	if b.assignment == nil {
		return false, false
	}
	val, ok := b.assignment[v]
	return val, ok
}

var _ BackendAdapter = (*BruteBackend)(nil)
var _ BackendAdapter = (*GiniBackend)(nil)
