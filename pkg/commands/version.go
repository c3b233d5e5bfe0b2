package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

func addVersion(topLevel *cobra.Command) {
	var (
		short  bool
		agent  bool
		output = "json"
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the quake build",
		Example: `
quake version
quake version --short
quake version --user-agent
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if agent {
				_, _ = fmt.Fprintln(out, userAgent())
				return
			}
			_, _ = fmt.Fprint(out, goversion.FuncWithOutput(short, version, commit, date, output))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	cmd.Flags().BoolVar(&agent, "user-agent", false, "Print the User-Agent sent to the USGS feed.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
