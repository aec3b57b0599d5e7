package main

import (
	"github.com/spf13/cobra"

	"bibtools/src/cmd/bibtools/referencescmd"
)

// newReferencesCmd creates the "references" command to compare document citations with the bibliography.
func newReferencesCmd() *cobra.Command { return referencescmd.New() }
