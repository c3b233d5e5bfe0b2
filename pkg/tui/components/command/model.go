package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
	overlaymgr "tableflip.dev/quake/pkg/tui/ui/overlay"
)

// Options configures the command bar.
type Options struct {
	ID           events.ComponentID
	PromptPrefix string
	SearchPrefix string
	Placeholder  string
	StatusText   string
	HelpText     string
	Styles       theme.FooterTheme
}

// SuggestionOption represents a possible command the prompt can surface.
type SuggestionOption struct {
	Name        string
	Description string
}

// Mode identifies the command component operating state.
type Mode int

const (
	// ModePassive displays the command bar in status mode.
	ModePassive Mode = iota
	// ModeInput collects a ":" command.
	ModeInput
	// ModeSearch collects live search text.
	ModeSearch
)

// Model renders a sticky command bar above which the page content and the
// suggestion overlay are composed.
type Model struct {
	id      events.ComponentID
	mode    Mode
	focused bool
	styles  theme.FooterTheme

	width         int
	height        int
	contentHeight int

	contentView   string
	contentCursor *tea.Cursor

	status string
	help   string

	prompt       textinput.Model
	promptPrefix string
	searchPrefix string

	lastPromptValue string

	suggestions           []SuggestionOption
	filteredSuggestions   []SuggestionOption
	suggestionLimit       int
	suggestionIndex       int
	suggestionOriginal    string
	suggestionOverlay     string
	suggestionWindowStart int
	suggestionPlacement   overlaymgr.Placement
}

// NewModel constructs a command bar with the provided options.
func NewModel(opts Options) *Model {
	prompt := textinput.New()
	prompt.Placeholder = opts.Placeholder
	prompt.Prompt = ""
	prompt.CharLimit = 128
	prompt.Blur()

	id := opts.ID
	if id == "" {
		id = events.ComponentID("command")
	}
	prefix := opts.PromptPrefix
	if prefix == "" {
		prefix = ":"
	}
	search := opts.SearchPrefix
	if search == "" {
		search = "/"
	}

	return &Model{
		id:              id,
		mode:            ModePassive,
		styles:          opts.Styles,
		status:          opts.StatusText,
		help:            opts.HelpText,
		prompt:          prompt,
		promptPrefix:    prefix,
		searchPrefix:    search,
		suggestionIndex: -1,
		suggestionLimit: 8,
		suggestionPlacement: overlaymgr.Placement{
			Vertical: lipgloss.Bottom,
		},
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize configures the full area the component manages: content plus the
// one-line bar.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 2)
	m.contentHeight = m.height - 1
	m.prompt.SetWidth(max(m.width-len(m.promptPrefix)-1, 1))
	m.suggestionWindowStart = 0
	m.suggestionIndex = -1
	m.updateSuggestionWindow()
	m.refreshSuggestionOverlay()
}

// Width is the managed width.
func (m *Model) Width() int { return m.width }

// Height is the managed height including the bar.
func (m *Model) Height() int { return m.height }

// ContentHeight is the number of rows left for the page above the bar.
func (m *Model) ContentHeight() int { return m.contentHeight }

// SetContent stores the view that appears above the command bar.
func (m *Model) SetContent(view string, cursor *tea.Cursor) {
	m.contentView = view
	m.contentCursor = nil
	if cursor != nil {
		c := *cursor
		m.contentCursor = &c
	}
}

// SetStatus updates the passive status text shown on the right.
func (m *Model) SetStatus(text string) { m.status = text }

// Status is the passive status text.
func (m *Model) Status() string { return m.status }

// SetHelp updates the key hint shown on the left in passive mode.
func (m *Model) SetHelp(text string) { m.help = text }

// SetSuggestions configures the available suggestion list.
func (m *Model) SetSuggestions(options []SuggestionOption) {
	m.suggestions = append([]SuggestionOption(nil), options...)
	m.applySuggestionFilter(m.prompt.Value(), true)
}

// Suggestions returns the suggestions matching the current input, in order.
func (m *Model) Suggestions() []SuggestionOption {
	return append([]SuggestionOption(nil), m.filteredSuggestions...)
}

// SetSuggestionLimit adjusts the maximum number of suggestions displayed.
func (m *Model) SetSuggestionLimit(limit int) {
	if limit <= 0 {
		limit = 8
	}
	m.suggestionLimit = limit
	m.updateSuggestionWindow()
	m.refreshSuggestionOverlay()
}

// applySuggestionFilter lists prefix matches first, then substring matches.
func (m *Model) applySuggestionFilter(value string, resetSelection bool) {
	if m.mode != ModeInput {
		m.filteredSuggestions = nil
		m.suggestionOverlay = ""
		m.suggestionWindowStart = 0
		return
	}

	needle := strings.TrimSpace(strings.ToLower(value))
	matches := make([]SuggestionOption, 0, len(m.suggestions))
	if needle == "" {
		matches = append(matches, m.suggestions...)
	} else {
		seen := make(map[string]struct{}, len(m.suggestions))
		for _, opt := range m.suggestions {
			if strings.HasPrefix(strings.ToLower(opt.Name), needle) {
				matches = append(matches, opt)
				seen[opt.Name] = struct{}{}
			}
		}
		for _, opt := range m.suggestions {
			if _, ok := seen[opt.Name]; ok {
				continue
			}
			if strings.Contains(strings.ToLower(opt.Name), needle) {
				matches = append(matches, opt)
			}
		}
	}
	m.filteredSuggestions = matches

	if resetSelection {
		m.suggestionIndex = -1
		m.suggestionWindowStart = 0
		m.suggestionOriginal = value
	} else {
		m.suggestionIndex = min(m.suggestionIndex, len(m.filteredSuggestions)-1)
		m.suggestionIndex = max(m.suggestionIndex, -1)
	}

	m.updateSuggestionWindow()
	m.refreshSuggestionOverlay()
}

func (m *Model) effectiveSuggestionLimit() int {
	total := len(m.filteredSuggestions)
	if total == 0 {
		return 0
	}
	limit := m.suggestionLimit
	if limit <= 0 || limit > total {
		limit = total
	}
	return max(min(limit, m.height-1), 0)
}

func (m *Model) updateSuggestionWindow() {
	total := len(m.filteredSuggestions)
	limit := m.effectiveSuggestionLimit()
	if total == 0 || limit <= 0 {
		m.suggestionWindowStart = 0
		return
	}
	m.suggestionWindowStart = max(min(m.suggestionWindowStart, total-limit), 0)
	if m.suggestionIndex >= 0 {
		if m.suggestionIndex < m.suggestionWindowStart {
			m.suggestionWindowStart = m.suggestionIndex
		} else if m.suggestionIndex >= m.suggestionWindowStart+limit {
			m.suggestionWindowStart = m.suggestionIndex - limit + 1
		}
	}
}

func (m *Model) refreshSuggestionOverlay() {
	limit := m.effectiveSuggestionLimit()
	if m.mode != ModeInput || limit <= 0 {
		m.suggestionOverlay = ""
		return
	}
	start := max(min(m.suggestionWindowStart, len(m.filteredSuggestions)-limit), 0)
	end := min(start+limit, len(m.filteredSuggestions))

	rows := make([]string, 0, end-start)
	maxWidth := 0
	for i := start; i < end; i++ {
		opt := m.filteredSuggestions[i]
		marker := "  "
		name := m.styles.CommandName.Render(opt.Name)
		desc := m.styles.CommandDescription.Render(strings.TrimSpace(opt.Description))
		if i == m.suggestionIndex {
			marker = "→ "
			name = m.styles.CommandSelectedName.Render(opt.Name)
			desc = m.styles.CommandSelectedDesc.Render(strings.TrimSpace(opt.Description))
		}
		line := marker + name
		if strings.TrimSpace(opt.Description) != "" {
			line += "  " + desc
		}
		rows = append(rows, line)
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	maxWidth = min(maxWidth, m.width)
	row := lipgloss.NewStyle().Width(maxWidth)
	for i := range rows {
		rows[i] = row.Render(rows[i])
	}
	m.suggestionOverlay = strings.Join(rows, "\n")
	m.suggestionPlacement = overlaymgr.Placement{
		Vertical: lipgloss.Bottom,
		Width:    maxWidth,
		Height:   len(rows),
	}
}

func (m *Model) cycleSuggestion(delta int) bool {
	total := len(m.filteredSuggestions)
	if m.mode != ModeInput || total == 0 || m.effectiveSuggestionLimit() == 0 {
		return false
	}
	if m.suggestionIndex == -1 {
		if delta > 0 {
			m.suggestionIndex = 0
		} else {
			m.suggestionIndex = total - 1
		}
		m.suggestionOriginal = m.prompt.Value()
	} else {
		m.suggestionIndex = ((m.suggestionIndex+delta)%total + total) % total
	}
	m.prompt.SetValue(m.filteredSuggestions[m.suggestionIndex].Name)
	m.prompt.CursorEnd()
	m.updateSuggestionWindow()
	m.refreshSuggestionOverlay()
	return true
}

func (m *Model) clearSuggestionSelection() bool {
	if m.suggestionIndex == -1 {
		return false
	}
	m.prompt.SetValue(m.suggestionOriginal)
	m.prompt.CursorEnd()
	m.suggestionIndex = -1
	m.updateSuggestionWindow()
	m.refreshSuggestionOverlay()
	return true
}

// Focus ensures the command component receives focus.
func (m *Model) Focus() {
	m.focused = true
	if m.mode != ModePassive {
		m.prompt.Focus()
	}
}

// Blur releases focus.
func (m *Model) Blur() {
	m.focused = false
	m.prompt.Blur()
}

// BeginInput switches the command bar into command input mode.
func (m *Model) BeginInput(initial string) tea.Cmd {
	m.mode = ModeInput
	return m.begin(initial, events.CommandModeInput)
}

// BeginSearch switches the command bar into search mode, starting from the
// current search text.
func (m *Model) BeginSearch(current string) tea.Cmd {
	m.mode = ModeSearch
	return m.begin(current, events.CommandModeSearch)
}

func (m *Model) begin(initial string, mode events.CommandMode) tea.Cmd {
	m.prompt.SetValue(initial)
	m.lastPromptValue = initial
	m.prompt.CursorEnd()
	m.Focus()
	m.applySuggestionFilter(initial, true)
	return tea.Batch(m.prompt.Focus(), events.CommandChangeCmd(m.id, initial, mode))
}

// ExitInput returns the command bar to passive mode.
func (m *Model) ExitInput() tea.Cmd {
	m.mode = ModePassive
	m.prompt.Blur()
	m.lastPromptValue = ""
	m.filteredSuggestions = nil
	m.suggestionOverlay = ""
	m.suggestionIndex = -1
	m.suggestionOriginal = ""
	m.suggestionWindowStart = 0
	return events.CommandChangeCmd(m.id, "", events.CommandModePassive)
}

// Mode reports the current operating state.
func (m *Model) Mode() Mode { return m.mode }

// InInputMode reports if a prompt is active.
func (m *Model) InInputMode() bool { return m.mode != ModePassive }

// Value returns the current prompt contents.
func (m *Model) Value() string { return m.prompt.Value() }

// Update routes messages to the prompt and suggestion overlay.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.mode == ModePassive {
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case ModePassive:
		switch key.String() {
		case ":":
			return m, m.BeginInput("")
		case "/":
			return m, m.BeginSearch("")
		}
		return m, nil
	case ModeSearch:
		return m, m.updateSearch(key)
	default:
		return m, m.updateInput(key)
	}
}

func (m *Model) updateInput(key tea.KeyPressMsg) tea.Cmd {
	var cmds []tea.Cmd
	switch key.String() {
	case "esc":
		if m.clearSuggestionSelection() {
			return m.emitChange(events.CommandModeInput)
		}
		return tea.Batch(m.ExitInput(), events.CommandCancelCmd(m.id))
	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		if value != "" {
			cmds = append(cmds, events.CommandSubmitCmd(m.id, value))
		}
		cmds = append(cmds, m.ExitInput())
		return tea.Batch(cmds...)
	case "up", "shift+tab":
		if m.cycleSuggestion(-1) {
			return m.emitChange(events.CommandModeInput)
		}
		return nil
	case "down", "tab":
		if m.cycleSuggestion(1) {
			return m.emitChange(events.CommandModeInput)
		}
		return nil
	}

	prev := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(key)
	cmds = append(cmds, cmd)
	if m.prompt.Value() != prev {
		m.applySuggestionFilter(m.prompt.Value(), true)
		cmds = append(cmds, m.emitChange(events.CommandModeInput))
	}
	return tea.Batch(cmds...)
}

// updateSearch publishes every edit as a live search. Enter keeps the text,
// esc clears it.
func (m *Model) updateSearch(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.ExitInput()
	case "esc":
		cmds := []tea.Cmd{m.ExitInput(), events.CommandCancelCmd(m.id)}
		cmds = append(cmds, events.SearchChangeCmd(m.id, ""))
		return tea.Batch(cmds...)
	}

	prev := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(key)
	if m.prompt.Value() == prev {
		return cmd
	}
	return tea.Batch(cmd, m.emitChange(events.CommandModeSearch), events.SearchChangeCmd(m.id, m.prompt.Value()))
}

func (m *Model) emitChange(mode events.CommandMode) tea.Cmd {
	value := m.prompt.Value()
	if value == m.lastPromptValue {
		return nil
	}
	m.lastPromptValue = value
	return events.CommandChangeCmd(m.id, value, mode)
}

// View renders the content, the suggestion overlay, and the command bar.
func (m *Model) View() (string, *tea.Cursor) {
	content := normalizeHeight(m.contentView, m.contentHeight)

	var cursor *tea.Cursor
	if m.contentCursor != nil {
		c := *m.contentCursor
		cursor = &c
	}

	if m.suggestionOverlay != "" {
		content = overlaymgr.Compose(content, m.width, m.contentHeight, m.suggestionOverlay, m.suggestionPlacement)
	}

	bar, barCursor := m.renderCommandBar()
	if barCursor != nil {
		cursor = barCursor
	}
	if content == "" {
		return bar, cursor
	}
	return content + "\n" + bar, cursor
}

func (m *Model) renderCommandBar() (string, *tea.Cursor) {
	if m.mode != ModePassive {
		prefix := m.promptPrefix
		if m.mode == ModeSearch {
			prefix = m.searchPrefix
		}
		var cursor *tea.Cursor
		if c := m.prompt.Cursor(); c != nil {
			cc := *c
			cc.X += lipgloss.Width(prefix)
			cc.Y = m.contentHeight
			cursor = &cc
		}
		return padToWidth(prefix+m.prompt.View(), m.width), cursor
	}

	status := m.status
	if status == "" {
		status = "Ready"
	}
	right := m.styles.Status.Render(status)
	left := m.styles.Help.Render(m.help)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return padToWidth(right, m.width), nil
	}
	return left + strings.Repeat(" ", gap) + right, nil
}

func normalizeHeight(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func padToWidth(s string, width int) string {
	current := lipgloss.Width(s)
	if current >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-current)
}
