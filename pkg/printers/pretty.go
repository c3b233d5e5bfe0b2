// Package printers renders earthquake events for the CLI.
package printers

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/timeutil"
)

// PrettyPrint writes colored tables. Out defaults to color.Output.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Now anchors the "ago" column; zero means time.Now.
	Now time.Time
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

// MagnitudeColor picks the attribute used for a magnitude cell.
func MagnitudeColor(mag float64) *color.Color {
	switch {
	case mag >= 6:
		return color.New(color.FgHiRed, color.Bold)
	case mag >= 4.5:
		return color.New(color.FgRed)
	case mag >= 2.5:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Faint)
	}
}

// Title prints a bold heading followed by a faint count.
func (pp *PrettyPrint) Title(title string, count int) {
	w := pp.out()
	_, _ = color.New(color.Bold, color.Underline).Fprint(w, title)
	noun := "earthquakes"
	if count == 1 {
		noun = "earthquake"
	}
	_, _ = color.New(color.Faint).Fprintf(w, " - %d %s\n", count, noun)
}

// Events prints one row per event in the given order.
func (pp *PrettyPrint) Events(events ...quake.Event) {
	w := pp.out()
	if len(events) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " No earthquakes found.\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	header := []interface{}{bold.Sprint("Mag"), bold.Sprint("Place"), bold.Sprint("When"), bold.Sprint("Depth")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	now := pp.now()
	for _, ev := range events {
		row := []interface{}{
			MagnitudeColor(ev.Magnitude).Sprint(quake.FormatMagnitude(ev.Magnitude)),
			ev.Label(),
			faint.Sprint(timeutil.Ago(ev.OccurredAt(), now)),
			quake.FormatDepth(ev.Coordinates.DepthKm),
		}
		if pp.ShowID {
			row = append([]interface{}{id.Sprint(ev.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	tbl.RightAlign(0)
	if pp.ShowID {
		tbl.RightAlign(1)
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
}

// Event prints the detail view of a single event.
func (pp *PrettyPrint) Event(ev quake.Event) {
	w := pp.out()
	_, _ = color.New(color.Bold).Fprintln(w, ev.Label())

	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	tbl.AddRow(faint.Sprint("Magnitude"), MagnitudeColor(ev.Magnitude).Sprint(quake.FormatMagnitude(ev.Magnitude)))
	tbl.AddRow(faint.Sprint("Time"), timeutil.Stamp(ev.OccurredAt()))
	tbl.AddRow(faint.Sprint("Depth"), quake.FormatDepth(ev.Coordinates.DepthKm))
	tbl.AddRow(faint.Sprint("Location"), ev.Coordinates.Location())
	tbl.AddRow(faint.Sprint("ID"), ev.ID)
	if ev.URL != "" {
		tbl.AddRow(faint.Sprint("More info"), color.New(color.FgCyan, color.Underline).Sprint(ev.URL))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}

// Feeds prints the feed catalog, marking the current feed.
func (pp *PrettyPrint) Feeds(current string, feeds ...feed.Feed) {
	w := pp.out()
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Feed"), bold.Sprint("Description"))
	for _, f := range feeds {
		mark := ""
		name := f.Name
		if f.Name == current {
			mark = "*"
			name = color.New(color.FgGreen).Sprint(f.Name)
		}
		tbl.AddRow(mark, name, f.Description)
	}
	_, _ = fmt.Fprintln(w, tbl)
}
