package ltlsynth

import "context"

// Status is a SAT backend's verdict for one check().
type Status int

const (
	StatusUnknown Status = iota
	StatusSAT
	StatusUNSAT
)

// BackendAdapter is the thin contract the enumeration driver asks of a
// SAT/SMT solver: assert, check, read back the model, and reset between
// growing lengths. A solver instance must never be reused incrementally
// across growing n, so Reset must discard all prior state rather than
// pop a solver stack.
type BackendAdapter interface {
	// Reset discards all asserted clauses and variable state, starting a
	// fresh encoding for the next length n.
	Reset()
	// Assert adds one clause (a disjunction of literals) to the backend.
	Assert(clause ...Lit)
	// Check runs the solver. ctx carries the external cancellation
	// signal; a backend that cannot itself be interrupted should still
	// return promptly once ctx is done if it polls between steps.
	Check(ctx context.Context) (Status, error)
	// Value returns the truth value assigned to v by the last SAT Check,
	// and whether the backend holds a value for v at all (a variable that
	// was never asserted, or that the search left unassigned, has no
	// defined value and is not an error).
	Value(v Var) (value bool, defined bool)
}
