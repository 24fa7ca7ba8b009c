package ltlsynth

import (
	"strings"
	"testing"
)

func mustDecodeInput(t *testing.T, s string) *InputFile {
	t.Helper()
	in, err := DecodeInputFile(strings.NewReader(s))
	if err != nil {
		t.Fatalf("DecodeInputFile: %v", err)
	}
	return in
}

func TestDecodeInputFileHappyPath(t *testing.T) {
	in := mustDecodeInput(t, `{
		"variables": ["a", "b"],
		"positives": [{"traces": [["a"], ["a", "b"]], "repeat": 1}],
		"negatives": [{"traces": [["b"]], "repeat": 0}],
		"expected": "a"
	}`)
	if len(in.Variables) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(in.Variables))
	}
	if len(in.Positives) != 1 || len(in.Negatives) != 1 {
		t.Fatal("expected one positive and one negative trace spec")
	}
}

func TestDecodeInputFileRejectsUnknownFields(t *testing.T) {
	_, err := DecodeInputFile(strings.NewReader(`{"variables": ["a"], "bogus": 1}`))
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestBuildAggregatesMultipleProblems(t *testing.T) {
	in := &InputFile{
		Variables: []string{"a", "a"},
		Positives: nil,
		Negatives: nil,
	}
	_, _, _, err := in.Build()
	lerr, ok := err.(*LearnerError)
	if !ok || lerr.Kind != InvalidInput {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	// duplicate variable "a" and both-samples-empty should both surface.
	if !strings.Contains(lerr.Error(), "duplicate variable") {
		t.Fatalf("expected duplicate-variable problem in %v", lerr)
	}
	if !strings.Contains(lerr.Error(), "empty") {
		t.Fatalf("expected both-empty problem in %v", lerr)
	}
}

func TestBuildRejectsEmptyVariables(t *testing.T) {
	in := &InputFile{
		Positives: []TraceSpec{{Traces: [][]string{{"a"}}, Repeat: 0}},
	}
	_, _, _, err := in.Build()
	if err == nil {
		t.Fatal("expected an error for empty variables")
	}
}

func TestBuildConvertsTraceSpecsIntoSamples(t *testing.T) {
	in := &InputFile{
		Variables: []string{"a"},
		Positives: []TraceSpec{{Traces: [][]string{{"a"}, {}}, Repeat: 1}},
		Negatives: []TraceSpec{{Traces: [][]string{{}}, Repeat: 0}},
	}
	aps, pos, neg, err := in.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(aps) != 1 || aps[0] != "a" {
		t.Fatalf("unexpected aps: %v", aps)
	}
	if len(pos.Traces) != 1 || pos.Traces[0].Len() != 2 {
		t.Fatalf("unexpected positive traces: %v", pos.Traces)
	}
	if len(neg.Traces) != 1 {
		t.Fatalf("unexpected negative traces: %v", neg.Traces)
	}
}

func TestBuildSurfacesPerTraceErrors(t *testing.T) {
	in := &InputFile{
		Variables: []string{"a"},
		Positives: []TraceSpec{{Traces: [][]string{{"a"}, {"b"}}, Repeat: 5}},
	}
	_, _, _, err := in.Build()
	if err == nil {
		t.Fatal("expected an out-of-range repeat index to surface as a problem")
	}
}

func TestOperatorSpecBuild(t *testing.T) {
	spec, err := DecodeOperatorSpec(strings.NewReader(`{"operators": ["X", "G"]}`))
	if err != nil {
		t.Fatalf("DecodeOperatorSpec: %v", err)
	}
	set, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !set.Enabled(OpNext) || set.Enabled(OpUntil) {
		t.Fatal("operator set did not match the requested subset")
	}
}
