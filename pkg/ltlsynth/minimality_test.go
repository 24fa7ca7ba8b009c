package ltlsynth

import (
	"context"
	"testing"
)

// TestMinimalityNeverReturnsSmallerThanActualMinimum re-derives the
// minimal n by brute-force iteration (independent of Driver.Learn) and
// checks Learn agrees, for a sample whose minimal separating formula is
// known to need two nodes: X discriminates the positive and negative
// traces, but no single-node formula does.
func TestMinimalityNeverReturnsSmallerThanActualMinimum(t *testing.T) {
	pos := NewSample(Positive, []*Trace{mustTrace(t, []string{"b", "a"}, 1)})
	neg := NewSample(Negative, []*Trace{mustTrace(t, []string{"b", "b"}, 1)})

	// n=1 must be UNSAT: position 0 is identical ({b}) in both samples, so
	// no atom alone can separate them.
	if satAtLength(t, []string{"a", "b"}, pos, neg, 1) {
		t.Fatal("n=1 should be UNSAT for this sample")
	}

	d := newTestDriver(4)
	res, err := d.Learn(context.Background(), []string{"a", "b"}, pos, neg, AllOperators())
	if err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if res.Length != 2 {
		t.Fatalf("Learn returned n=%d but the independently-checked minimum is 2", res.Length)
	}
}

// TestMinimalityStopsAtFirstSATLength checks that Learn never tries n
// larger than necessary: instrumenting Stats.AttemptsTried against a
// sample satisfiable at n=1 should show exactly one attempt.
func TestMinimalityStopsAtFirstSATLength(t *testing.T) {
	pos := NewSample(Positive, []*Trace{mustTrace(t, []string{"a"}, 0)})
	neg := NewSample(Negative, []*Trace{mustTrace(t, []string{"b"}, 0)})

	d := newTestDriver(5)
	res, err := d.Learn(context.Background(), []string{"a", "b"}, pos, neg, AllOperators())
	if err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if res.Stats.AttemptsTried != 1 {
		t.Fatalf("expected exactly 1 attempt for a sample separable at n=1, got %d", res.Stats.AttemptsTried)
	}
}

func satAtLength(t *testing.T, aps []string, pos, neg *Sample, n int) bool {
	t.Helper()
	ns := NewNamespace()
	backend := NewBruteBackend()
	dag := newDAGEncoder(ns, aps, AllOperators(), n)
	dag.encode(collectClauses(backend))
	sem := newSemanticEncoder(ns, aps, AllOperators(), n, pos, neg)
	sem.encode(collectClauses(backend))
	status, err := backend.Check(context.Background())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return status == StatusSAT
}
