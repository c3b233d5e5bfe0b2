// Package feeds lists the USGS summary feeds quake can read.
package feeds

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/printers"
)

// Feeds prints the catalog, marking Current.
type Feeds struct {
	Current string
	Output  string
	Out     io.Writer
}

type entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	Current     bool   `json:"current,omitempty" yaml:"current,omitempty"`
}

// Do runs the command.
func (f *Feeds) Do(_ context.Context) error {
	out := f.Out
	if out == nil {
		out = color.Output
	}
	all := feed.All()
	if f.Output == "" {
		pp := printers.PrettyPrint{Out: out}
		pp.Feeds(f.Current, all...)
		return nil
	}

	entries := make([]entry, len(all))
	for i, fd := range all {
		entries[i] = entry{Name: fd.Name, Description: fd.Description, URL: fd.URL(), Current: fd.Name == f.Current}
	}
	if f.Output == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(entries)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
