package options

import (
	"github.com/spf13/cobra"
)

// ListingOptions controls how individual events are printed.
type ListingOptions struct {
	ShowID      bool
	Interactive bool
}

func AddListingArgs(cmd *cobra.Command, o *ListingOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the USGS id of each event.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Pick an event from a menu and print its details.")
}
