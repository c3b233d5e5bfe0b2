package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputOptions selects between the table printer and machine output.
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON. Same as -o json.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'json' or 'yaml'.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Format resolves --json and -o into "", "json" or "yaml".
func (o *OutputOptions) Format() string {
	if o.JSON {
		return "json"
	}
	return o.Output
}

func (o *OutputOptions) Validate() error {
	switch o.Format() {
	case "", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q, want json or yaml", o.Output)
}

// HandleError prints err in the selected machine format and swallows it, so
// scripted callers always get parseable output. Table output returns it.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	out := map[string]string{"error": err.Error()}
	switch o.Format() {
	case "json":
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	case "yaml":
		b, merr := yaml.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprint(color.Output, string(b))
		return nil
	}
	return err
}
