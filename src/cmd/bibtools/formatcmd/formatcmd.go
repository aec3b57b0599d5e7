package formatcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bibtools/src/internal/config"
	"bibtools/src/internal/normalize"
	"bibtools/src/internal/store"
)

// New returns the format command to normalize entry fields in place.
// Rule selection order: --rules beats the config file beats the
// defaults.
func New() *cobra.Command {
	var ruleNames string
	var cfgPath string
	var list bool
	cmd := &cobra.Command{
		Use:          "format <bibliography>",
		Short:        "Normalize authors, titles, pages, and other fields in place",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return printRules(cmd)
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a bibliography file argument")
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			requested := cfg.Format.Rules
			if strings.TrimSpace(ruleNames) != "" {
				requested = strings.Split(ruleNames, ",")
			}
			rules := normalize.Default()
			if len(requested) > 0 {
				rules, err = normalize.ByNames(requested)
				if err != nil {
					return err
				}
			}
			path := args[0]
			set, err := store.Load(path)
			if err != nil {
				return err
			}
			normalize.Apply(set, rules)
			backup, err := store.Save(path, set)
			if err != nil {
				return err
			}
			if backup == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "formatted %s (%d entries)\n", path, set.Len())
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "formatted %s (%d entries, backup at %s)\n", path, set.Len(), backup)
			return err
		},
	}
	cmd.Flags().StringVar(&ruleNames, "rules", "", "Comma-separated rules to run instead of the defaults (see --list)")
	cmd.Flags().BoolVar(&list, "list", false, "List available rules and exit")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Config file (default "+config.DefaultFile+" when present)")
	return cmd
}

func printRules(cmd *cobra.Command) error {
	defaults := map[string]bool{}
	for _, r := range normalize.Default() {
		defaults[r.Name] = true
	}
	for _, r := range normalize.All() {
		mark := ""
		if defaults[r.Name] {
			mark = " (default)"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", r.Name, mark); err != nil {
			return err
		}
	}
	return nil
}
