// Command rapidx is a standalone runner for properties defined outside of
// `go test`, for ad hoc exploration and CI smoke checks (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rapidx",
		Short: "rapidx runs property-based checks outside of go test",
		Long: `rapidx drives the same generator/shrink engine go test properties use,
for standalone exploration, CI smoke checks, and demoing built-in
generators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCheckCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rapidx: %v\n", err)
		os.Exit(1)
	}
}
