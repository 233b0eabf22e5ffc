// Package cli implements the navcaps diagnostic tool, which evaluates the
// dom capability layer against simulated browsers.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nmxmxh/navcaps/config"
	"github.com/nmxmxh/navcaps/utils"
)

// Output formats.
const (
	FormatYAML      = "yaml"
	FormatJSON      = "json"
	FormatProtoJSON = "protojson"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatYAML, FormatJSON, FormatProtoJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	Format   string
	Config   config.Config
}

// NewRootCommand creates the root command. cfg supplies flag defaults.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "navcaps",
		Short: "Inspect browser navigation capabilities",
		Long: `Evaluate the history, popstate and storage capability checks a
client-side router relies on, against a simulated browser described by
flags or a TOML profile.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level, err := utils.ParseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			utils.SetGlobalLogger(utils.NewLogger(utils.LoggerConfig{
				Level:     level,
				Component: "navcaps",
				Output:    cmd.ErrOrStderr(),
			}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (yaml|json|protojson)")

	cmd.AddCommand(NewDetectCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}
