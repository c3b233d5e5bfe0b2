package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quake/pkg/commands/options"
	"tableflip.dev/quake/pkg/config"
	"tableflip.dev/quake/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, cfg config.Config) {
	fo := &options.FeedOptions{}
	noLanding := false
	debug := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the earthquake visualizer",
		Example: `
quake ui
quake ui --feed 4.5_week --sort largest --no-landing
quake ui --search alaska
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			u := ui.UI{
				Fetcher:     fo.Client(userAgent()),
				Feed:        fo.Feed.Feed,
				Sort:        fo.Sort.Mode,
				Search:      fo.Search,
				SkipLanding: noLanding,
				FocusZoom:   cfg.FocusZoom,
				FlyDuration: cfg.FlyDuration,
				DebugLog:    cfg.DebugLog,
				Debug:       debug,
			}
			return u.Do(cmd.Context())
		},
	}

	options.AddFeedArgs(cmd, fo, cfg)
	cmd.Flags().BoolVar(&noLanding, "no-landing", false,
		"Skip the landing page and load the feed right away.")
	cmd.Flags().BoolVar(&debug, "debug", false,
		"Open the event log at start.")

	topLevel.AddCommand(cmd)
}
