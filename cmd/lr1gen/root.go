package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lr1gen",
	Short: "Build the canonical LR(1) automaton for a TOML grammar document",
	Long: `lr1gen is a demonstration front end for the clr1 module:
- Reads a grammar described in TOML (see build --help).
- Builds FIRST, the canonical LR(1) collection, and its transition map.
- Prints the result as a readable state listing.

It does not build a shift/reduce parsing table or resolve conflicts;
that is a distinct concern layered on top of the canonical collection
this tool prints.`,
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) { initTracing(*rootFlags.verbose) },
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace construction steps to stderr")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
