package ltlsynth

import "fmt"

// validateSample checks the malformed-input rules that must be rejected
// before any encoding begins: empty AP set, and no
// traces at all in either sample. Individual trace validation (the
// repeat-out-of-range check) already happens in NewTrace, at trace
// construction time; this function catches the sample-level conditions
// that only make sense once the whole sample is assembled.
func validateSample(aps []string, pos, neg *Sample) error {
	var problems []error
	if len(aps) == 0 {
		problems = append(problems, fmt.Errorf("no atomic propositions declared"))
	}
	if (pos == nil || len(pos.Traces) == 0) && (neg == nil || len(neg.Traces) == 0) {
		problems = append(problems, fmt.Errorf("both positive and negative sample sets are empty"))
	}
	seen := make(map[string]bool, len(aps))
	for _, a := range aps {
		if seen[a] {
			problems = append(problems, fmt.Errorf("duplicate atomic proposition %q", a))
		}
		seen[a] = true
		if isKnownOp(Op(a)) {
			problems = append(problems, fmt.Errorf("atomic proposition %q collides with an operator token", a))
		}
	}
	if len(problems) > 0 {
		return newInvalidInput(problems...)
	}
	return nil
}
