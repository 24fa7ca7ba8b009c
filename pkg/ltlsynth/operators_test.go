package ltlsynth

import "testing"

func TestAllOperatorsEnablesEveryOp(t *testing.T) {
	s := AllOperators()
	for _, op := range allOps {
		if !s.Enabled(op) {
			t.Fatalf("AllOperators should enable %s", op)
		}
	}
}

func TestNewOperatorSetRejectsUnknownTokens(t *testing.T) {
	_, err := NewOperatorSet([]string{"X", "Q"})
	lerr, ok := err.(*LearnerError)
	if !ok || lerr.Kind != UnsupportedOperator {
		t.Fatalf("expected UnsupportedOperator, got %v", err)
	}
}

func TestNewOperatorSetRestrictsToGivenTokens(t *testing.T) {
	s, err := NewOperatorSet([]string{"X", "G"})
	if err != nil {
		t.Fatalf("NewOperatorSet: %v", err)
	}
	if !s.Enabled(OpNext) || !s.Enabled(OpGlobally) {
		t.Fatal("expected X and G enabled")
	}
	if s.Enabled(OpUntil) {
		t.Fatal("U should not be enabled in a restricted set")
	}
}

func TestZeroValueOperatorSetEnablesEverything(t *testing.T) {
	var s OperatorSet
	for _, op := range allOps {
		if !s.Enabled(op) {
			t.Fatalf("zero-value OperatorSet should enable %s", op)
		}
	}
}

func TestListOrderIsDeterministic(t *testing.T) {
	s, err := NewOperatorSet([]string{"U", "!", "X"})
	if err != nil {
		t.Fatalf("NewOperatorSet: %v", err)
	}
	got := s.List()
	want := []Op{OpNot, OpNext, OpUntil}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("List order = %v, want %v (allOps order)", got, want)
		}
	}
}

func TestUnaryAndBinarySplit(t *testing.T) {
	s := AllOperators()
	for _, op := range s.Unary() {
		if op.IsBinary() {
			t.Fatalf("%s returned by Unary() but IsBinary() is true", op)
		}
	}
	for _, op := range s.Binary() {
		if !op.IsBinary() {
			t.Fatalf("%s returned by Binary() but IsBinary() is false", op)
		}
	}
	if len(s.Unary())+len(s.Binary()) != len(allOps) {
		t.Fatal("Unary+Binary should partition the full operator set")
	}
}
