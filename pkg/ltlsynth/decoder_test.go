package ltlsynth

import (
	"context"
	"testing"
)

// TestDecodeRoundTrip builds a synthetic satisfying model by hand (no
// solver involved) and checks that decode reconstructs the expected
// formula shape, confirming decode is the inverse of a hand-constructed
// syntax-DAG assignment.
func TestDecodeRoundTrip(t *testing.T) {
	ns := NewNamespace()
	backend := NewBruteBackend()

	// Node 0: atom "a". Node 1: X(node 0).
	n := 2
	set := func(key VarKey) {
		v := ns.Intern(key)
		backend.Assert(v.Pos())
	}
	set(atomLabelKey(0, "a"))
	set(opLabelKey(1, OpNext))
	set(LeftKey{Node: 1, Child: 0})

	if status, err := backend.Check(context.Background()); err != nil || status != StatusSAT {
		t.Fatalf("expected a trivially SAT hand-built model, got %v %v", status, err)
	}

	f, err := decode(ns, backend, n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := f.String(), "X(a)"; got != want {
		t.Fatalf("decode = %q, want %q", got, want)
	}
}

func TestDecodeRoundTripBinaryWithSharedChild(t *testing.T) {
	ns := NewNamespace()
	backend := NewBruteBackend()
	set := func(key VarKey) {
		backend.Assert(ns.Intern(key).Pos())
	}

	// Node 0: atom a. Node 1: X(node0). Node 2: Or(node0, node1), so node 0
	// is shared and must be rendered at both of its occurrences.
	set(atomLabelKey(0, "a"))
	set(opLabelKey(1, OpNext))
	set(LeftKey{Node: 1, Child: 0})
	set(opLabelKey(2, OpOr))
	set(LeftKey{Node: 2, Child: 0})
	set(RightKey{Node: 2, Child: 1})

	if _, err := backend.Check(context.Background()); err != nil {
		t.Fatalf("check: %v", err)
	}
	f, err := decode(ns, backend, 3)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := f.String(), "|(a,X(a))"; got != want {
		t.Fatalf("decode = %q, want %q", got, want)
	}
}
