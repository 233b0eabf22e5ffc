package cli

import (
	"github.com/spf13/cobra"

	"github.com/nmxmxh/navcaps/config"
	"github.com/nmxmxh/navcaps/dom"
	"github.com/nmxmxh/navcaps/utils"
)

// DetectOptions holds detect command flags.
type DetectOptions struct {
	UserAgent   string
	Profile     string
	NoDocument  bool
	NoHistory   bool
	NoPushState bool
	Local       string
	Session     string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Evaluate every capability check against a simulated browser",
		Long: `Build a simulated browser from a TOML profile (or the built-in
desktop Chrome default), apply flag overrides, and print what the router
would see. Storage states: ok, full, firefox-full, disabled, broken,
missing, access-error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.UserAgent, "ua", rootOpts.Config.UserAgent, "navigator.userAgent")
	cmd.Flags().StringVar(&opts.Profile, "profile", rootOpts.Config.Profile, "TOML profile describing the browser")
	cmd.Flags().BoolVar(&opts.NoDocument, "no-document", false, "remove window.document")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "remove window.history")
	cmd.Flags().BoolVar(&opts.NoPushState, "no-push-state", false, "keep history but drop pushState")
	cmd.Flags().StringVar(&opts.Local, "local", "", "localStorage state")
	cmd.Flags().StringVar(&opts.Session, "session", "", "sessionStorage state")

	return cmd
}

func runDetect(rootOpts *RootOptions, opts *DetectOptions, cmd *cobra.Command) error {
	profile, err := resolveProfile(opts)
	if err != nil {
		return err
	}

	w, err := profile.Window()
	if err != nil {
		return err
	}

	caps := dom.Detect(w)
	utils.Debug("detect complete",
		utils.String("profile", profile.Name),
		utils.String("routing", caps.Routing),
	)

	out := cmd.OutOrStdout()
	switch rootOpts.Format {
	case FormatJSON:
		return writeJSON(out, caps)
	case FormatProtoJSON:
		return writeProtoJSON(out, caps)
	}
	return writeYAML(out, caps)
}

func resolveProfile(opts *DetectOptions) (config.Profile, error) {
	profile := config.DefaultProfile()
	if opts.Profile != "" {
		var err error
		if profile, err = config.LoadProfile(opts.Profile); err != nil {
			return config.Profile{}, err
		}
	}

	if opts.UserAgent != "" {
		profile.UserAgent = opts.UserAgent
	}
	if opts.NoDocument {
		profile.Document = false
	}
	if opts.NoHistory {
		profile.History = false
	}
	if opts.NoPushState {
		profile.PushState = false
	}
	if opts.Local != "" {
		profile.Storage.Local = opts.Local
	}
	if opts.Session != "" {
		profile.Storage.Session = opts.Session
	}
	return profile, nil
}
