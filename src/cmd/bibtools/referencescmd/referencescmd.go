package referencescmd

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"bibtools/src/internal/config"
	"bibtools/src/internal/refs"
	"bibtools/src/internal/store"
)

// New returns the references command to compare the citation keys a
// document uses against the keys a bibliography defines.
func New() *cobra.Command {
	var unused bool
	var cfgPath string
	cmd := &cobra.Command{
		Use:          "references <document> <bibliography>",
		Short:        "Check citation keys in a document against a bibliography",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			pattern := refs.DefaultPattern
			if cfg.References.Pattern != "" {
				pattern, err = regexp.Compile(cfg.References.Pattern)
				if err != nil {
					return fmt.Errorf("invalid references pattern: %w", err)
				}
			}
			doc, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			set, err := store.Load(args[1])
			if err != nil {
				return err
			}
			cited := refs.Scan(string(doc), pattern)
			if unused {
				for _, f := range refs.Unused(cited, set) {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), f.Error()); err != nil {
						return err
					}
				}
				return nil
			}
			missing := refs.Missing(cited, set)
			for _, f := range missing {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f.Error()); err != nil {
					return err
				}
			}
			if len(missing) > 0 {
				return missing
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&unused, "unused", "u", false, "Report bibliography entries never cited instead of missing keys")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Config file (default "+config.DefaultFile+" when present)")
	return cmd
}
