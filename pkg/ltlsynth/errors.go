// Package ltlsynth implements SAT-based synthesis of a minimal LTL formula
// separating two finite sets of ultimately periodic traces, following the
// syntax-DAG encoding of Neider & Gavran (2018).
package ltlsynth

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Kind classifies the ways a learning run can fail to produce a formula.
type Kind int

const (
	// InvalidInput marks malformed samples or input JSON: missing fields,
	// an empty AP set, a repeat index out of range, or no traces at all.
	InvalidInput Kind = iota
	// UnsupportedOperator marks an operator-subset token outside the
	// fixed set {!, X, G, F, |, &, >, U}.
	UnsupportedOperator
	// BackendError marks a SAT backend reporting UNKNOWN or an internal
	// failure unrelated to satisfiability.
	BackendError
	// CutoffReached marks exhausting n = 1..K without finding a SAT
	// model. Not a process error: callers get a distinguished result.
	CutoffReached
	// Cancelled marks an external cancellation firing during Check.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case UnsupportedOperator:
		return "UnsupportedOperator"
	case BackendError:
		return "BackendError"
	case CutoffReached:
		return "CutoffReached"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// LearnerError is the single error type returned across the package. It
// carries a Kind so callers can branch with errors.As without parsing a
// formatted message, and wraps the underlying cause(s) for %w-style
// unwrapping.
type LearnerError struct {
	Kind Kind
	Err  error
}

func (e *LearnerError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LearnerError) Unwrap() error { return e.Err }

// newInvalidInput wraps one or more validation problems into a single
// InvalidInput error, aggregating them via multierror (even when there is
// only one) so callers can range over .Errors without re-parsing a string.
func newInvalidInput(problems ...error) *LearnerError {
	if len(problems) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, p := range problems {
		if p != nil {
			merr = multierror.Append(merr, p)
		}
	}
	if merr == nil {
		return nil
	}
	return &LearnerError{Kind: InvalidInput, Err: merr.ErrorOrNil()}
}

func newUnsupportedOperator(err error) *LearnerError {
	return &LearnerError{Kind: UnsupportedOperator, Err: err}
}

func newBackendError(err error) *LearnerError {
	return &LearnerError{Kind: BackendError, Err: err}
}

func newCancelled(err error) *LearnerError {
	return &LearnerError{Kind: Cancelled, Err: err}
}
