package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growvec/internal/logger"
	"github.com/joshuapare/growvec/vector"
)

var (
	replayContents bool
	replayMaxBytes int
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().BoolVar(&replayContents, "contents", false, "Show the elements after every operation")
	cmd.Flags().IntVar(&replayMaxBytes, "max-bytes", blockLimit, "Largest storage block in bytes")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a script of vector operations",
		Long: `The replay command applies a script of operations to an empty vector of
strings and prints the length and capacity after every step.

Each line holds one operation:
  push <value>          append a value
  insert <pos> <value>  insert a value before position pos
  erase <pos>           remove the element at pos
  pop                   remove the last element
  reserve <n>           make room for at least n elements
  resize <n>            grow with empty strings or shrink to n elements
  clear                 remove every element
  shrink                release unused capacity
Blank lines and lines starting with # are ignored. Use - to read stdin.

Example:
  vecctl replay ops.txt
  vecctl replay ops.txt --contents
  cat ops.txt | vecctl replay - --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args)
		},
	}
	return cmd
}

// traceRecord describes the vector after one replayed operation.
type traceRecord struct {
	Line     int      `json:"line"`
	Op       string   `json:"op"`
	Len      int      `json:"len"`
	Cap      int      `json:"cap"`
	Realloc  bool     `json:"realloc"`
	Contents []string `json:"contents,omitempty"`
}

func runReplay(args []string) error {
	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	printVerbose("Reading script: %s\n", args[0])
	steps, err := parseScript(in)
	if err != nil {
		return err
	}
	printVerbose("Parsed %d operation(s)\n", len(steps))

	trace, err := replay(steps, func(rec traceRecord) {
		if !jsonOut {
			printTraceRecord(rec)
		}
	})
	if jsonOut {
		if jerr := printJSON(trace); jerr != nil {
			return jerr
		}
	}
	if err != nil {
		return fmt.Errorf("replay stopped: %w", err)
	}

	logger.Info("replay finished", "ops", len(trace))
	return nil
}

// replay applies steps to a fresh vector, calling emit after each one, and
// returns the trace up to the first failing step.
func replay(steps []step, emit func(traceRecord)) ([]traceRecord, error) {
	v := vector.New(&vector.Options[string]{
		Logger:   logger.L,
		MaxBytes: replayMaxBytes,
	})
	defer v.Release()

	trace := make([]traceRecord, 0, len(steps))
	for _, s := range steps {
		before := v.Cap()
		if err := apply(v, s); err != nil {
			logger.Warn("replay step failed", "line", s.Line, "op", s.Op, "err", err)
			return trace, err
		}

		rec := traceRecord{
			Line:    s.Line,
			Op:      s.String(),
			Len:     v.Len(),
			Cap:     v.Cap(),
			Realloc: v.Cap() != before,
		}
		if replayContents {
			rec.Contents = slices.Clone(v.Slice())
		}
		trace = append(trace, rec)
		logger.Debug("replay step", "line", rec.Line, "op", rec.Op, "len", rec.Len, "cap", rec.Cap)
		emit(rec)
	}
	return trace, nil
}

func printTraceRecord(rec traceRecord) {
	marker := ""
	if rec.Realloc {
		marker = " *"
	}
	printInfo("%4d  %-24s len=%-4d cap=%d%s\n", rec.Line, rec.Op, rec.Len, rec.Cap, marker)
	if rec.Contents != nil {
		printInfo("      [%s]\n", strings.Join(rec.Contents, ", "))
	}
}
