package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growvec/internal/logger"
	"github.com/joshuapare/growvec/vector"
)

func init() {
	rootCmd.AddCommand(newGrowthCmd())
}

func newGrowthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth <n>",
		Short: "Show the capacities reached while appending n elements",
		Long: `The growth command appends n elements to an empty vector, one at a time,
and prints every distinct capacity it passes through.

Example:
  vecctl growth 100
  vecctl growth 1000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(args)
		},
	}
	return cmd
}

// growthResult is the JSON form of the growth command's output.
type growthResult struct {
	N             int   `json:"n"`
	Capacities    []int `json:"capacities"`
	Reallocations int   `json:"reallocations"`
}

func runGrowth(args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid element count %q", args[0])
	}

	caps, err := growthSequence(n)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(growthResult{N: n, Capacities: caps, Reallocations: len(caps) - 1})
	}

	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = strconv.Itoa(c)
	}
	printVerbose("Appended %d element(s)\n", n)
	printInfo("%s\n", strings.Join(parts, " "))
	printVerbose("%d reallocation(s)\n", len(caps)-1)
	return nil
}

// growthSequence appends n elements and returns the capacities observed,
// starting from the empty vector's.
func growthSequence(n int) ([]int, error) {
	v := vector.New(&vector.Options[int]{Logger: logger.L, MaxBytes: blockLimit})
	defer v.Release()

	caps := []int{v.Cap()}
	for i := range n {
		if err := v.PushBack(i); err != nil {
			return caps, fmt.Errorf("append element %d: %w", i, err)
		}
		if c := v.Cap(); c != caps[len(caps)-1] {
			caps = append(caps, c)
		}
	}
	return caps, nil
}
