// Package eventviewer is the debug pane listing the messages routed through
// the root model, newest first.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var levelNames = []string{"info", "warn", "error"}

func (l Level) String() string {
	if l < LevelInfo || l > LevelError {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts info, warn or error.
func ParseLevel(raw string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(raw), name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q, want info, warn or error", raw)
}

// Entry is one logged message.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Describer is implemented by every message type the UI defines.
type Describer interface {
	Describe() string
}

// Model keeps a capped log of entries and shows those at or above MinLevel.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	minLevel Level

	maxEntries int
	now        func() time.Time

	width  int
	height int

	styles theme.LogTheme
}

var _ ui.Component = (*Model)(nil)

func NewModel(maxEntries int, styles theme.LogTheme) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	return &Model{
		viewport:   vp,
		maxEntries: maxEntries,
		now:        time.Now,
		styles:     styles,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize keeps one row for the header inside the border.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refreshContent()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := fmt.Sprintf("Events (%d)", len(m.entries))
	if m.minLevel > LevelInfo {
		title = fmt.Sprintf("Events (%d of %d, %s and up)", m.visible(), len(m.entries), m.minLevel)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.styles.Header.Render(title), m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Record logs msg when it describes itself. Key presses and frames do not.
func (m *Model) Record(msg tea.Msg, level Level) bool {
	d, ok := msg.(Describer)
	if !ok {
		return false
	}
	source := "app"
	if id, ok := events.Source(msg); ok && id != "" {
		source = string(id)
	}
	m.Append(Entry{
		Source:  source,
		Summary: typeName(msg),
		Detail:  d.Describe(),
		Level:   level,
	})
	return true
}

func typeName(msg tea.Msg) string {
	name := fmt.Sprintf("%T", msg)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Msg")
}

// Append inserts entry at the top and drops the oldest past the cap.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	if entry.Source == "" {
		entry.Source = "tea"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Entries returns every entry regardless of MinLevel, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Model) MinLevel() Level { return m.minLevel }

// SetMinLevel hides entries below level. Hidden entries are kept.
func (m *Model) SetMinLevel(level Level) {
	m.minLevel = level
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

func (m *Model) Clear() {
	m.entries = nil
	m.refreshContent()
}

func (m *Model) visible() int {
	n := 0
	for _, e := range m.entries {
		if e.Level >= m.minLevel {
			n++
		}
	}
	return n
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		if entry.Level < m.minLevel {
			continue
		}
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No events yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05.000"))
	source := m.styles.Source.Render("[" + entry.Source + "]")
	msg := entry.Summary
	if entry.Detail != "" {
		msg += " " + entry.Detail
	}
	if w := m.viewport.Width() - 24; w > 8 {
		msg = ansi.Truncate(msg, w, "…")
	}
	style := m.styles.Info
	switch entry.Level {
	case LevelWarn:
		style = m.styles.Warn
	case LevelError:
		style = m.styles.Error
	}
	return ts + " " + source + " " + style.Render(msg)
}
