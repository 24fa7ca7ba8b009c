package ltlsynth

import (
	"context"
	"fmt"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// GiniBackend implements BackendAdapter against github.com/irifrance/gini,
// a pure-Go incremental CNF SAT solver. It owns the mapping from our
// dense Var ids to gini's z.Var allocations, recreated wholesale on
// every Reset since a solver instance must never be carried over across
// growing lengths.
type GiniBackend struct {
	g       *gini.Gini
	toGini  map[Var]z.Var
	lastSAT bool
}

// NewGiniBackend creates a backend ready for the first length n = 1.
func NewGiniBackend() *GiniBackend {
	b := &GiniBackend{}
	b.Reset()
	return b
}

// Reset discards the prior solver instance and variable map entirely.
func (b *GiniBackend) Reset() {
	b.g = gini.New()
	b.toGini = make(map[Var]z.Var)
	b.lastSAT = false
}

func (b *GiniBackend) giniLit(l Lit) z.Lit {
	gv, ok := b.toGini[l.V]
	if !ok {
		gv = b.g.NewVar()
		b.toGini[l.V] = gv
	}
	if l.Neg {
		return gv.Neg()
	}
	return gv.Pos()
}

// Assert adds one CNF clause, terminating it with gini's 0-literal
// convention.
func (b *GiniBackend) Assert(clause ...Lit) {
	for _, l := range clause {
		b.g.Add(b.giniLit(l))
	}
	b.g.Add(0)
}

// Check runs gini's solver, honoring ctx's deadline (if any) via
// SolveWithin, satisfying the driver's cancellation requirement.
func (b *GiniBackend) Check(ctx context.Context) (Status, error) {
	var result int
	if dl, ok := ctx.Deadline(); ok {
		result = b.g.SolveWithin(time.Until(dl))
	} else {
		result = b.g.Solve()
	}
	select {
	case <-ctx.Done():
		return StatusUnknown, newCancelled(ctx.Err())
	default:
	}
	switch result {
	case 1:
		b.lastSAT = true
		return StatusSAT, nil
	case -1:
		b.lastSAT = false
		return StatusUNSAT, nil
	default:
		b.lastSAT = false
		return StatusUnknown, newBackendError(fmt.Errorf("gini solver returned UNKNOWN"))
	}
}

// Value reads the assignment gini produced for v on the last SAT Check.
func (b *GiniBackend) Value(v Var) (bool, bool) {
	if !b.lastSAT {
		return false, false
	}
	gv, ok := b.toGini[v]
	if !ok {
		return false, false
	}
	return b.g.Value(gv.Pos()), true
}
