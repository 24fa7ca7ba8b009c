package ltlsynth

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestAppendCSVRowWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	row := ExperimentRow{
		Timestamp:      "2026-07-31T00:00:00Z",
		SampleFile:     "mutex.json",
		Learned:        "a",
		Expected:       "a",
		ElapsedSeconds: 0.5,
		NumVariables:   3,
		PositiveLen:    2,
		NegativeLen:    1,
		Cutoff:         5,
		Comment:        "ok",
	}
	if err := AppendCSVRow(path, row); err != nil {
		t.Fatalf("AppendCSVRow: %v", err)
	}
	if err := AppendCSVRow(path, row); err != nil {
		t.Fatalf("AppendCSVRow (second): %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 1 header + 2 data rows, got %d records", len(records))
	}
	if len(records[0]) != len(csvHeaders) {
		t.Fatalf("header has %d columns, want %d", len(records[0]), len(csvHeaders))
	}
	if records[1][1] != "mutex.json" || records[1][2] != "a" {
		t.Fatalf("unexpected data row: %v", records[1])
	}
}
