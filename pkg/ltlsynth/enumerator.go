package ltlsynth

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
)

var errUnknownStatus = errors.New("backend returned an unknown status")

// Result is what Learn returns on success: the formula, the DAG size it
// was found at, and observability stats the CLI/CSV writer can report
// without re-timing.
type Result struct {
	Formula *Formula
	Length  int
	Stats   Stats

	// namespace and backend hold the winning iteration's interned
	// variables and solved backend, kept around only so DumpAssignment
	// can render the reproducibility dump without the
	// driver needing to expose its internals more broadly.
	namespace *Namespace
	backend   BackendAdapter
}

// Dump writes the winning iteration's satisfying assignment via
// DumpAssignment. It is a no-op error if called on a Result that didn't
// find a formula.
func (r Result) Dump(w io.Writer) error {
	if r.namespace == nil || r.backend == nil {
		return errors.New("no satisfying assignment to dump")
	}
	return DumpAssignment(w, r.namespace, r.backend)
}

// Stats carries per-run observability the Enumeration Driver accumulates,
// logged at hclog.Debug and also handed back to the caller.
type Stats struct {
	Elapsed       time.Duration
	AttemptsTried int
	Variables     int
	Clauses       int
}

// Driver implements the Enumeration Driver: for n = 1..K,
// reset the backend, build the DAG + semantic encoding, check SAT, and
// either decode a model or grow n.
type Driver struct {
	Backend BackendAdapter
	Logger  hclog.Logger
	Cutoff  int
}

// NewDriver builds a Driver with sane defaults: a GiniBackend and a null
// logger when none is supplied.
func NewDriver(cutoff int) *Driver {
	return &Driver{
		Backend: NewGiniBackend(),
		Logger:  hclog.NewNullLogger(),
		Cutoff:  cutoff,
	}
}

// Learn runs an iterative-deepening search over increasing syntax-DAG
// size n, stopping at the first n for which a separating formula
// exists. Each iteration is independent: no clauses carry over across
// n. ctx lets an external harness cancel a long-running Check or stop
// before the next n starts.
func (d *Driver) Learn(ctx context.Context, aps []string, pos, neg *Sample, ops OperatorSet) (Result, error) {
	if err := validateSample(aps, pos, neg); err != nil {
		return Result{}, err
	}
	logger := d.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	start := time.Now()
	var attempts int
	for n := 1; n <= d.Cutoff; n++ {
		attempts++
		if err := ctx.Err(); err != nil {
			return Result{}, newCancelled(err)
		}

		d.Backend.Reset()
		ns := NewNamespace()

		var clauseCount int
		assert := func(clause ...Lit) {
			d.Backend.Assert(clause...)
			clauseCount++
		}

		dag := newDAGEncoder(ns, aps, ops, n)
		dag.encode(assert)
		sem := newSemanticEncoder(ns, aps, ops, n, pos, neg)
		sem.encode(assert)

		iterLogger := logger.With("n", n, "variables", ns.Len(), "clauses", clauseCount)
		iterLogger.Debug("checking syntax-DAG length")

		status, err := d.Backend.Check(ctx)
		if err != nil {
			if lerr, ok := err.(*LearnerError); ok && lerr.Kind == Cancelled {
				return Result{}, lerr
			}
			return Result{}, newBackendError(err)
		}

		switch status {
		case StatusSAT:
			f, derr := decode(ns, d.Backend, n)
			if derr != nil {
				return Result{}, newBackendError(derr)
			}
			stats := Stats{
				Elapsed:       time.Since(start),
				AttemptsTried: attempts,
				Variables:     ns.Len(),
				Clauses:       clauseCount,
			}
			iterLogger.Info("found separating formula", "formula", f.String(), "elapsed", stats.Elapsed)
			return Result{Formula: f, Length: n, Stats: stats, namespace: ns, backend: d.Backend}, nil
		case StatusUNSAT:
			iterLogger.Debug("no formula of this length separates the sample")
			continue
		default:
			return Result{}, newBackendError(errUnknownStatus)
		}
	}

	logger.Info("cutoff reached without a separating formula", "cutoff", d.Cutoff, "elapsed", time.Since(start))
	return Result{}, &LearnerError{Kind: CutoffReached}
}
