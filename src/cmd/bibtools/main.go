package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bibtools",
	Short:         "Validate and reformat biblatex bibliographies",
	SilenceErrors: true,
}

func execute() error {
	// Attach subcommands
	rootCmd.AddCommand(newCrossrefsCmd())
	rootCmd.AddCommand(newReferencesCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newFixkeysCmd())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
