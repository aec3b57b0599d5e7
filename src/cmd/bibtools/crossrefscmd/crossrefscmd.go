package crossrefscmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bibtools/src/internal/crossref"
	"bibtools/src/internal/store"
)

// New returns the crossrefs command to validate crossref edges and,
// with --expand, inline target fields into dependent entries.
func New() *cobra.Command {
	var expand bool
	cmd := &cobra.Command{
		Use:          "crossrefs <bibliography>",
		Short:        "Check that crossref targets exist and have compatible types",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			set, err := store.Load(path)
			if err != nil {
				return err
			}
			findings := crossref.Check(set)
			for _, f := range findings {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f.Error()); err != nil {
					return err
				}
			}
			if len(findings) > 0 {
				return findings
			}
			if !expand {
				return nil
			}
			targets := crossref.Expand(set)
			if len(targets) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no crossrefs to expand")
				return err
			}
			backup, err := store.Save(path, set)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "expanded %s into dependent entries\n", strings.Join(targets, ", ")); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (backup at %s)\n", path, backup)
			return err
		},
	}
	cmd.Flags().BoolVar(&expand, "expand", false, "Copy fields from crossref targets into dependents and rewrite the file")
	return cmd
}
