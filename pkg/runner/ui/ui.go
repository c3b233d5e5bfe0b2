// Package ui runs the interactive earthquake visualizer.
package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/tui/app"
)

// UI holds the resolved settings of `quake ui`.
type UI struct {
	Fetcher     feed.Fetcher
	Feed        feed.Feed
	Sort        query.Mode
	Search      string
	SkipLanding bool
	FocusZoom   int
	FlyDuration time.Duration
	// DebugLog receives stdlib log output; empty discards it.
	DebugLog string
	// Debug opens the in-app event log at start.
	Debug bool
}

// Do blocks until the program exits.
func (u *UI) Do(ctx context.Context) error {
	if u.Fetcher == nil {
		return fmt.Errorf("ui: no feed configured")
	}

	if u.DebugLog == "" {
		log.SetOutput(io.Discard)
	} else {
		path, err := homedir.Expand(u.DebugLog)
		if err != nil {
			return fmt.Errorf("ui: debug log: %w", err)
		}
		f, err := tea.LogToFile(path, "quake")
		if err != nil {
			return fmt.Errorf("ui: debug log: %w", err)
		}
		defer f.Close()
		log.Printf("starting on feed %s", u.Feed.Name)
	}

	return app.Run(app.Options{
		Fetcher:     u.Fetcher,
		Feed:        u.Feed,
		Sort:        u.Sort,
		Search:      u.Search,
		SkipLanding: u.SkipLanding,
		FocusZoom:   float64(u.FocusZoom),
		FlyDuration: u.FlyDuration,
		Debug:       u.Debug,
		Hyperlinks:  isatty.IsTerminal(os.Stdout.Fd()),
	},
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}
