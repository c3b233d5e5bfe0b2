package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/quake/pkg/commands/options"
	"tableflip.dev/quake/pkg/config"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func userAgent() string {
	return "quake/" + version
}

func New() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "quake: config: %v\n", err)
	}

	co := &options.ColorOptions{}
	cmd := &cobra.Command{
		Use:   "quake",
		Short: base.Wrap80("Recent earthquakes from the USGS feed, on a terminal world map."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			co.Apply()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddColorArgs(cmd, co)

	AddCommands(cmd, cfg)
	return cmd
}

func AddCommands(topLevel *cobra.Command, cfg config.Config) {
	addUI(topLevel, cfg)
	addList(topLevel, cfg)
	addFeeds(topLevel, cfg)
	addVersion(topLevel)
	addCompletions(topLevel)
}
