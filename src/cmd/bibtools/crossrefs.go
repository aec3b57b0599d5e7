package main

import (
	"github.com/spf13/cobra"

	"bibtools/src/cmd/bibtools/crossrefscmd"
)

// newCrossrefsCmd creates the "crossrefs" command to validate crossref edges.
func newCrossrefsCmd() *cobra.Command { return crossrefscmd.New() }
