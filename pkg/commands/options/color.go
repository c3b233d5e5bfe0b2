package options

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ColorOptions
type ColorOptions struct {
	NoColor bool
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false,
		"Disable colored output.")
}

// Apply turns colors off when asked to or when stdout is not a terminal.
func (o *ColorOptions) Apply() {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	color.NoColor = o.NoColor || !tty
}
