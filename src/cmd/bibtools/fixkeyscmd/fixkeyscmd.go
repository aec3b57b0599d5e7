package fixkeyscmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bibtools/src/internal/fixkeys"
)

// New returns the fixkeys command to assign placeholder citation keys
// to entries missing one. Input and output default to stdin and stdout
// so the command composes in pipelines; "-" also means stdin.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fixkeys [input [output]]",
		Short:        "Assign placeholder citation keys to entries that lack one",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) >= 1 && args[0] != "-" {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			out, assigned := fixkeys.Repair(string(src))
			if len(args) == 2 {
				if err := os.WriteFile(args[1], []byte(out), 0o644); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d keys assigned)\n", args[1], assigned)
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	return cmd
}
