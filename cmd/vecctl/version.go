package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionInfo is the JSON form of the version command's output.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func versionLine() string {
	return "vecctl " + version
}

func runVersion() error {
	if jsonOut {
		return printJSON(versionInfo{Version: version, Commit: commit, Built: date})
	}
	fmt.Println(versionLine())
	printVerbose("  commit: %s\n", commit)
	printVerbose("  built: %s\n", date)
	return nil
}
