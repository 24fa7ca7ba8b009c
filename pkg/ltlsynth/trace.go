package ltlsynth

import "fmt"

// Letter is the set of atomic propositions true at one position of a
// trace. Membership, not order, is what matters; APs absent from a
// letter are false there.
type Letter map[string]struct{}

// Has reports whether AP a holds in this letter.
func (l Letter) Has(a string) bool {
	_, ok := l[a]
	return ok
}

// NewLetter builds a Letter from the AP names present at one step.
func NewLetter(aps ...string) Letter {
	l := make(Letter, len(aps))
	for _, a := range aps {
		l[a] = struct{}{}
	}
	return l
}

// Trace is an ultimately periodic word w = u . v^omega, represented by
// its finite unrolled prefix-plus-one-loop-iteration path and the index
// where the loop starts.
type Trace struct {
	path   []Letter
	repeat int
}

// NewTrace builds a Trace, validating the invariant 0 <= repeat <
// len(path) for any non-empty path.
func NewTrace(path []Letter, repeat int) (*Trace, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("trace has an empty path")
	}
	if repeat < 0 || repeat >= len(path) {
		return nil, fmt.Errorf("repeat index %d out of range [0, %d)", repeat, len(path))
	}
	return &Trace{path: path, repeat: repeat}, nil
}

// Len returns the length of the unrolled representation used to size the
// per-trace y[i,s,k,t] variable family.
func (t *Trace) Len() int { return len(t.path) }

// Repeat returns the loop-start index.
func (t *Trace) Repeat() int { return t.repeat }

// Letter returns the letter at position p, which must be in [0, Len()).
func (t *Trace) Letter(p int) Letter { return t.path[p] }

// Next implements the sole temporal primitive the operator encodings
// consult: next(t) = t+1 if t+1 < len(path), otherwise repeat (wrap to
// loop start).
func (t *Trace) Next(p int) int {
	if p+1 < len(t.path) {
		return p + 1
	}
	return t.repeat
}

// AuxRange returns the finite ordered set of positions AUX(t) visited by
// the Globally/Finally/Until encodings starting from position p: the
// remainder of the unroll from p to the end, then the loop positions
// [repeat, len) if the loop wasn't already covered by that remainder.
// Results never repeat a position twice; finiteness comes from treating
// the loop as visited at most once per evaluation.
func (t *Trace) AuxRange(p int) []int {
	n := len(t.path)
	if p < t.repeat {
		out := make([]int, 0, n-p)
		for i := p; i < n; i++ {
			out = append(out, i)
		}
		return out
	}
	// p is already inside the loop: walk from p to the end, then wrap
	// once through [repeat, p) to complete exactly one loop iteration.
	out := make([]int, 0, n-t.repeat)
	for i := p; i < n; i++ {
		out = append(out, i)
	}
	for i := t.repeat; i < p; i++ {
		out = append(out, i)
	}
	return out
}

// Equal is a total, symmetric equality over (repeat, path), replacing the
// source's asymmetric, index-unsafe Trace.__eq__.
func (t *Trace) Equal(other *Trace) bool {
	if other == nil {
		return false
	}
	if t.repeat != other.repeat || len(t.path) != len(other.path) {
		return false
	}
	for i, letter := range t.path {
		o := other.path[i]
		if len(letter) != len(o) {
			return false
		}
		for a := range letter {
			if !o.Has(a) {
				return false
			}
		}
	}
	return true
}

// SampleKind distinguishes the positive and negative sample sets; it is
// also the "s" index in y[i, s, k, t].
type SampleKind int

const (
	Positive SampleKind = iota
	Negative
)

func (s SampleKind) String() string {
	if s == Positive {
		return "positive"
	}
	return "negative"
}

// Sample is an ordered collection of Traces of one kind. Duplicates are
// not rejected; the encoder simply asserts consistency per trace.
type Sample struct {
	Kind   SampleKind
	Traces []*Trace
}

// NewSample wraps a slice of Traces with its kind tag.
func NewSample(kind SampleKind, traces []*Trace) *Sample {
	return &Sample{Kind: kind, Traces: traces}
}

// Satisfies reports whether every trace in the sample evaluates f to true
// at position 0, whatever the sample's Kind; checking that no negative
// trace satisfies f is left to the caller. It uses the independent
// evaluator in eval.go rather than the SAT encoding, so the encoding can
// be cross-checked against a plain interpreter.
func (s *Sample) Satisfies(f *Formula) bool {
	for _, tr := range s.Traces {
		if !Evaluate(f, tr, 0) {
			return false
		}
	}
	return true
}
