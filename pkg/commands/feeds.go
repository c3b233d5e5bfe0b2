package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quake/pkg/commands/options"
	"tableflip.dev/quake/pkg/config"
	"tableflip.dev/quake/pkg/runner/feeds"
)

func addFeeds(topLevel *cobra.Command, cfg config.Config) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "list the USGS summary feeds",
		Example: `
quake feeds
quake feeds -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			f := feeds.Feeds{Current: cfg.Feed, Output: oo.Format()}
			return oo.HandleError(f.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
