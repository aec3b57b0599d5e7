package main

import (
	"github.com/spf13/cobra"

	"bibtools/src/cmd/bibtools/formatcmd"
)

// newFormatCmd creates the "format" command to normalize entry fields in place.
func newFormatCmd() *cobra.Command { return formatcmd.New() }
