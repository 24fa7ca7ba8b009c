package ltlsynth

import (
	"encoding/json"
	"fmt"
	"io"
)

// InputFile mirrors the on-disk Input JSON schema. Decoding it is in
// scope for the learner (the CLI must read the already-converted JSON on
// disk); producing it from raw traces is the out-of-scope converter.
type InputFile struct {
	Variables []string    `json:"variables"`
	Positives []TraceSpec `json:"positives"`
	Negatives []TraceSpec `json:"negatives"`
	Expected  string      `json:"expected,omitempty"`
}

// TraceSpec is one trace as it appears in the Input JSON: an ordered list
// of letters (each an array of AP names present at that step) plus the
// loop-start index.
type TraceSpec struct {
	Traces [][]string `json:"traces"`
	Repeat int        `json:"repeat"`
}

// OperatorSpec mirrors the optional operator-subset JSON file.
type OperatorSpec struct {
	Operators []string `json:"operators"`
}

// DecodeInputFile parses the Input JSON from r.
func DecodeInputFile(r io.Reader) (*InputFile, error) {
	var in InputFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, newInvalidInput(fmt.Errorf("decoding input JSON: %w", err))
	}
	return &in, nil
}

// DecodeOperatorSpec parses the optional operator-subset JSON from r.
func DecodeOperatorSpec(r io.Reader) (*OperatorSpec, error) {
	var spec OperatorSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return nil, newInvalidInput(fmt.Errorf("decoding operator JSON: %w", err))
	}
	return &spec, nil
}

// Build validates the InputFile and converts it into the Samples the
// Driver consumes, aggregating every problem found via go-multierror
// rather than stopping at the first one.
func (in *InputFile) Build() (aps []string, pos, neg *Sample, err error) {
	var problems []error

	if len(in.Variables) == 0 {
		problems = append(problems, fmt.Errorf("variables must be non-empty"))
	}
	seen := make(map[string]bool, len(in.Variables))
	for _, v := range in.Variables {
		if seen[v] {
			problems = append(problems, fmt.Errorf("duplicate variable %q", v))
		}
		seen[v] = true
		if isKnownOp(Op(v)) {
			problems = append(problems, fmt.Errorf("variable %q collides with an operator token", v))
		}
	}

	posTraces, posErrs := buildTraces(in.Positives)
	negTraces, negErrs := buildTraces(in.Negatives)
	problems = append(problems, posErrs...)
	problems = append(problems, negErrs...)

	if len(in.Positives) == 0 && len(in.Negatives) == 0 {
		problems = append(problems, fmt.Errorf("both positives and negatives are empty"))
	}

	if len(problems) > 0 {
		return nil, nil, nil, newInvalidInput(problems...)
	}

	return in.Variables, NewSample(Positive, posTraces), NewSample(Negative, negTraces), nil
}

func buildTraces(specs []TraceSpec) ([]*Trace, []error) {
	var traces []*Trace
	var errs []error
	for i, spec := range specs {
		letters := make([]Letter, len(spec.Traces))
		for j, aps := range spec.Traces {
			letters[j] = NewLetter(aps...)
		}
		tr, err := NewTrace(letters, spec.Repeat)
		if err != nil {
			errs = append(errs, fmt.Errorf("trace %d: %w", i, err))
			continue
		}
		traces = append(traces, tr)
	}
	return traces, errs
}

// Build validates an OperatorSpec into an OperatorSet, rejecting any
// token outside the fixed operator universe.
func (s *OperatorSpec) Build() (OperatorSet, error) {
	return NewOperatorSet(s.Operators)
}
