// Command ltl-learner searches for a minimal LTL formula separating a
// set of positive and negative ultimately periodic traces.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Yoiro/ltl-learner/pkg/ltlsynth"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ltl-learner", flag.ContinueOnError)
	inputPath := fs.String("f", "", "input JSON file (required)")
	cutoff := fs.Int("k", 10, "maximum syntax-DAG size to search")
	opsPath := fs.String("o", "", "optional operator-subset JSON file")
	csvPath := fs.String("csv", "", "optional results CSV to append a row to")
	dumpPath := fs.String("dump", "", "optional path to dump the satisfying assignment")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logLevel := hclog.Info
	if *verbose {
		logLevel = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: "ltl-learner", Level: logLevel})

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -f PATH")
		return 1
	}
	if *cutoff <= 0 {
		fmt.Fprintln(os.Stderr, "-k must be a strictly positive integer")
		return 1
	}

	in, err := readInputFile(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	aps, pos, neg, err := in.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ops := ltlsynth.AllOperators()
	if *opsPath != "" {
		ops, err = readOperatorSpec(*opsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	driver := ltlsynth.NewDriver(*cutoff)
	driver.Logger = logger

	start := time.Now()
	result, err := driver.Learn(context.Background(), aps, pos, neg, ops)
	elapsed := time.Since(start)

	if *csvPath != "" {
		row := ltlsynth.ExperimentRow{
			Timestamp:    start.Format("2006-01-02 15:04:05"),
			SampleFile:   *inputPath,
			Expected:     in.Expected,
			NumVariables: len(aps),
			PositiveLen:  len(pos.Traces),
			NegativeLen:  len(neg.Traces),
			Cutoff:       *cutoff,
		}
		row.ElapsedSeconds = elapsed.Seconds()
		if err == nil {
			row.Learned = result.Formula.String()
		} else {
			row.Comment = err.Error()
		}
		if werr := ltlsynth.AppendCSVRow(*csvPath, row); werr != nil {
			fmt.Fprintf(os.Stderr, "writing CSV row: %v\n", werr)
		}
	}

	var lerr *ltlsynth.LearnerError
	if errors.As(err, &lerr) && lerr.Kind == ltlsynth.CutoffReached {
		fmt.Println("Unable to determine a formula within the given constraint.")
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(result.Formula.String())

	if *dumpPath != "" {
		f, derr := os.Create(*dumpPath)
		if derr != nil {
			fmt.Fprintf(os.Stderr, "dumping assignment: %v\n", derr)
			return 0
		}
		defer f.Close()
		if derr := result.Dump(f); derr != nil {
			fmt.Fprintf(os.Stderr, "dumping assignment: %v\n", derr)
		}
	}

	return 0
}

func readInputFile(path string) (*ltlsynth.InputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()
	return ltlsynth.DecodeInputFile(f)
}

func readOperatorSpec(path string) (ltlsynth.OperatorSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ltlsynth.OperatorSet{}, fmt.Errorf("opening operator file: %w", err)
	}
	defer f.Close()
	spec, err := ltlsynth.DecodeOperatorSpec(f)
	if err != nil {
		return ltlsynth.OperatorSet{}, err
	}
	return spec.Build()
}
