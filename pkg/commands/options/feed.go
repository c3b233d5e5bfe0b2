package options

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/quake/pkg/config"
	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
)

// FeedValue is a pflag.Value accepting catalog feed names.
type FeedValue struct {
	Feed feed.Feed
}

var (
	_ pflag.Value = (*FeedValue)(nil)
	_ pflag.Value = (*SortValue)(nil)
)

func (v *FeedValue) String() string { return v.Feed.Name }

func (v *FeedValue) Set(s string) error {
	f, err := feed.Lookup(s)
	if err != nil {
		return err
	}
	v.Feed = f
	return nil
}

func (v *FeedValue) Type() string { return "feed" }

// SortValue is a pflag.Value accepting newest|oldest|largest|smallest.
type SortValue struct {
	Mode query.Mode
}

func (v *SortValue) String() string { return v.Mode.String() }

func (v *SortValue) Set(s string) error {
	m, err := query.ParseMode(s)
	if err != nil {
		return err
	}
	v.Mode = m
	return nil
}

func (v *SortValue) Type() string { return "sort" }

// FeedOptions selects the feed and the derived view.
type FeedOptions struct {
	Feed    FeedValue
	Sort    SortValue
	Search  string
	Timeout time.Duration
}

// AddFeedArgs registers --feed, --sort, --search and --timeout, defaulting
// to the loaded config.
func AddFeedArgs(cmd *cobra.Command, o *FeedOptions, cfg config.Config) {
	if err := o.Feed.Set(cfg.Feed); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "quake: config: %v, using %s\n", err, feed.DefaultFeed)
		_ = o.Feed.Set(feed.DefaultFeed)
	}
	if err := o.Sort.Set(cfg.Sort); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "quake: config: %v\n", err)
	}

	cmd.Flags().VarP(&o.Feed, "feed", "f",
		"USGS summary feed to read (see `quake feeds`).")
	cmd.Flags().VarP(&o.Sort, "sort", "s",
		"List order: newest, oldest, largest or smallest.")
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Only list events whose place contains this text.")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", cfg.Timeout,
		"Request timeout; 0 disables it.")

	_ = cmd.RegisterFlagCompletionFunc("feed", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return feed.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return query.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Client builds the feed client for the selected feed.
func (o *FeedOptions) Client(userAgent string) *feed.Client {
	return feed.New(feed.Options{
		Feed:      o.Feed.Feed,
		Timeout:   o.Timeout,
		UserAgent: userAgent,
	})
}
