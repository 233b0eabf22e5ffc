package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmxmxh/navcaps/dom"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the user-agent rules that veto capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := dom.Rules()
			switch rootOpts.Format {
			case FormatJSON:
				return writeJSON(cmd.OutOrStdout(), rules)
			case FormatYAML:
				return writeYAML(cmd.OutOrStdout(), rules)
			}
			return fmt.Errorf("format %q is not supported by rules", rootOpts.Format)
		},
	}
}
