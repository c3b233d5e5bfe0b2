package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quake/pkg/commands/options"
	"tableflip.dev/quake/pkg/config"
	"tableflip.dev/quake/pkg/runner/list"
	"tableflip.dev/quake/pkg/timeutil"
)

func addList(topLevel *cobra.Command, cfg config.Config) {
	fo := &options.FeedOptions{}
	oo := &options.OutputOptions{}
	lo := &options.ListingOptions{}
	since := ""
	limit := 0

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "print recent earthquakes",
		Example: `
quake list
quake list --sort largest --limit 10
quake list --search japan --since 6h
quake list --feed significant_week --json
quake list -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			window, err := timeutil.ParseSince(since)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Fetcher:     fo.Client(userAgent()),
				Feed:        fo.Feed.Feed,
				Sort:        fo.Sort.Mode,
				Search:      fo.Search,
				Since:       window,
				Limit:       limit,
				ShowID:      lo.ShowID,
				Output:      oo.Format(),
				Interactive: lo.Interactive,
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddFeedArgs(cmd, fo, cfg)
	options.AddOutputArg(cmd, oo)
	options.AddListingArgs(cmd, lo)
	cmd.Flags().StringVar(&since, "since", "",
		"Only events newer than this window, e.g. 90m, 6h, 1d12h.")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0,
		"Print at most this many events after sorting.")

	topLevel.AddCommand(cmd)
}
