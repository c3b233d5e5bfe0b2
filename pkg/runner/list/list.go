// Package list prints the derived earthquake view without the TUI.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"gopkg.in/yaml.v3"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/printers"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/timeutil"
)

// Output formats.
const (
	OutputPretty = ""
	OutputJSON   = "json"
	OutputYAML   = "yaml"
)

// List fetches once and prints the sorted, filtered events.
type List struct {
	Fetcher feed.Fetcher
	Feed    feed.Feed
	Sort    query.Mode
	Search  string
	// Since drops events older than now minus Since; zero keeps all.
	Since time.Duration
	// Limit caps the rows after sorting; zero keeps all.
	Limit  int
	ShowID bool
	Output string
	// Interactive lets the user pick one event and prints its details.
	Interactive bool

	Out io.Writer
	In  io.ReadCloser
	Now func() time.Time
}

// Report is the machine-readable output.
type Report struct {
	Feed    string        `json:"feed" yaml:"feed"`
	Sort    string        `json:"sort" yaml:"sort"`
	Search  string        `json:"search,omitempty" yaml:"search,omitempty"`
	Skipped int           `json:"skipped" yaml:"skipped"`
	Events  []quake.Event `json:"events" yaml:"events"`
}

// Do runs the command.
func (l *List) Do(ctx context.Context) error {
	if l.Fetcher == nil {
		return errors.New("list: no feed configured")
	}
	res, err := l.Fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	events := l.Select(res.Events)

	switch strings.ToLower(l.Output) {
	case OutputJSON:
		enc := json.NewEncoder(l.out())
		enc.SetIndent("", "  ")
		return enc.Encode(l.report(res, events))
	case OutputYAML:
		enc := yaml.NewEncoder(l.out())
		defer enc.Close()
		return enc.Encode(l.report(res, events))
	case OutputPretty:
	default:
		return fmt.Errorf("list: unknown output %q (want json or yaml)", l.Output)
	}

	pp := printers.PrettyPrint{Out: l.Out, ShowID: l.ShowID, Now: l.now()}
	if l.Interactive {
		return l.pick(pp, events)
	}
	_, _ = fmt.Fprintln(l.out(), "")
	pp.Title(fmt.Sprintf("%s (%s)", l.Feed.Description, l.Sort.Label()), len(events))
	pp.Events(events...)
	if res.Skipped > 0 {
		_, _ = color.New(color.Faint).Fprintf(l.out(), "%d malformed features skipped\n", res.Skipped)
	}
	return nil
}

// Select applies the since window, then sort and search, then the limit.
func (l *List) Select(events []quake.Event) []quake.Event {
	if l.Since > 0 {
		cutoff := l.now().Add(-l.Since)
		recent := make([]quake.Event, 0, len(events))
		for _, ev := range events {
			if !ev.OccurredAt().Before(cutoff) {
				recent = append(recent, ev)
			}
		}
		events = recent
	}
	out := query.Apply(events, l.Sort, l.Search)
	if l.Limit > 0 && len(out) > l.Limit {
		out = out[:l.Limit]
	}
	return out
}

func (l *List) report(res feed.Result, events []quake.Event) Report {
	if events == nil {
		events = []quake.Event{}
	}
	return Report{
		Feed:    l.Feed.Name,
		Sort:    l.Sort.String(),
		Search:  l.Search,
		Skipped: res.Skipped,
		Events:  events,
	}
}

type choice struct {
	Mag   string
	Place string
	Ago   string
	Event quake.Event
}

func (l *List) pick(pp printers.PrettyPrint, events []quake.Event) error {
	if len(events) == 0 {
		pp.Events()
		return nil
	}
	now := l.now()
	items := make([]choice, len(events))
	for i, ev := range events {
		items[i] = choice{
			Mag:   quake.FormatMagnitude(ev.Magnitude),
			Place: ev.Label(),
			Ago:   timeutil.Ago(ev.OccurredAt(), now),
			Event: ev,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Mag | red | bold }} {{ .Place | bold }} {{ .Ago | faint }}",
		Inactive: "   {{ .Mag | red }} {{ .Place }} {{ .Ago | faint }}",
		Selected: "{{ .Place | bold }}",
	}
	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(items[index].Place), strings.ToLower(strings.TrimSpace(input)))
	}
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Earthquake",
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     l.In,
		Stdout:    nopCloser{l.out()},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return err
	}
	pp.Event(items[i].Event)
	return nil
}

func (l *List) out() io.Writer {
	if l.Out == nil {
		return color.Output
	}
	return l.Out
}

func (l *List) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
