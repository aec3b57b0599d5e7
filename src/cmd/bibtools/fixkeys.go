package main

import (
	"github.com/spf13/cobra"

	"bibtools/src/cmd/bibtools/fixkeyscmd"
)

// newFixkeysCmd creates the "fixkeys" command to repair entries missing a citation key.
func newFixkeysCmd() *cobra.Command { return fixkeyscmd.New() }
