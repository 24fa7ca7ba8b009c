package ltlsynth

import (
	"encoding/csv"
	"os"
	"strconv"
)

// csvHeaders is the column set for the experiment harness's results
// file. The harness's multiprocess/per-sample-timeout
// loop stays out of scope; this is just the row shape, usable
// by a CLI invocation that wants to append one row per run.
var csvHeaders = []string{
	"timestamp",
	"sample_file",
	"learned",
	"expected",
	"elapsed_seconds",
	"num_variables",
	"positive_length",
	"negative_length",
	"cutoff",
	"comment",
}

// ExperimentRow is one row of the results CSV.
type ExperimentRow struct {
	Timestamp      string
	SampleFile     string
	Learned        string
	Expected       string
	ElapsedSeconds float64
	NumVariables   int
	PositiveLen    int
	NegativeLen    int
	Cutoff         int
	Comment        string
}

func (r ExperimentRow) record() []string {
	return []string{
		r.Timestamp,
		r.SampleFile,
		r.Learned,
		r.Expected,
		strconv.FormatFloat(r.ElapsedSeconds, 'f', 6, 64),
		strconv.Itoa(r.NumVariables),
		strconv.Itoa(r.PositiveLen),
		strconv.Itoa(r.NegativeLen),
		strconv.Itoa(r.Cutoff),
		r.Comment,
	}
}

// AppendCSVRow appends one ExperimentRow to path, writing the header
// first if the file is new or empty.
func AppendCSVRow(path string, row ExperimentRow) error {
	info, statErr := os.Stat(path)
	needsHeader := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if needsHeader {
		if err := w.Write(csvHeaders); err != nil {
			return err
		}
	}
	return w.Write(row.record())
}
