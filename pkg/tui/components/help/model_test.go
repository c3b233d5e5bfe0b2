package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/tui/theme"
)

func TestViewRendersKeyTable(t *testing.T) {
	m := New(theme.Default().Help, "all_day", 100, 400)
	view := ansi.Strip(m.View())
	if m.err != nil {
		t.Fatalf("render failed: %v", m.err)
	}
	for _, want := range []string{"quake", "switch focus", "zoom in / out", "toggles the event log", "Largest Magnitude First"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help:\n%s", want, view)
		}
	}
}

func TestMarkdownListsCatalog(t *testing.T) {
	m := New(theme.Default().Help, "4.5_week", 80, 20)
	md := m.Markdown()
	if !strings.Contains(md, "| `4.5_week` (current) |") {
		t.Fatalf("expected the current feed to be marked:\n%s", md)
	}
	if strings.Count(md, "(current)") != 1 {
		t.Fatalf("expected exactly one current feed")
	}
	for _, want := range []string{"| `newest` |", "| `smallest` |", "`significant_week`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown", want)
		}
	}
}

func TestSetSizeClampsToMinimum(t *testing.T) {
	m := New(theme.Default().Help, "", 4, 2)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected 32x8 minimum, got %dx%d", m.width, m.height)
	}
}
