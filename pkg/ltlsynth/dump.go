package ltlsynth

import (
	"bufio"
	"io"
)

// DumpAssignment writes every variable the last Check assigned true, one
// VarKey.String() per line, in ascending Var order. This is a plain
// reproducibility dump, a text rendering of interned VarKeys rather than
// an actual SMTLIB2 model, since SMTLIB2 dumping is explicitly out of
// scope.
func DumpAssignment(w io.Writer, ns *Namespace, backend BackendAdapter) error {
	bw := bufio.NewWriter(w)
	for v := Var(1); v <= Var(ns.Len()); v++ {
		val, defined := backend.Value(v)
		if !defined || !val {
			continue
		}
		key, ok := ns.Lookup(v)
		if !ok {
			continue
		}
		if _, err := bw.WriteString(key.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
