package satutil

import "testing"

func negateInt(l int) int { return -l }

func TestExactlyOneEncodesAtLeastAndAtMost(t *testing.T) {
	clauses := ExactlyOne([]int{1, 2, 3}, negateInt)

	if len(clauses) != 1+3 { // one at-least clause + C(3,2) pairwise
		t.Fatalf("expected 4 clauses, got %d", len(clauses))
	}
	if got := clauses[0]; len(got) != 3 {
		t.Fatalf("at-least-one clause should list all 3 literals, got %v", got)
	}
	for _, c := range clauses[1:] {
		if len(c) != 2 {
			t.Fatalf("pairwise exclusion clause should have 2 literals, got %v", c)
		}
	}
}

func TestAtMostOneEmptyAndSingleton(t *testing.T) {
	if got := AtMostOne([]int{}, negateInt); len(got) != 0 {
		t.Fatalf("expected no clauses for empty input, got %v", got)
	}
	if got := AtMostOne([]int{1}, negateInt); len(got) != 0 {
		t.Fatalf("expected no clauses for a singleton, got %v", got)
	}
}
