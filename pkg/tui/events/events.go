package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/quake"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SelectRequestMsg is emitted when a view asks for an event to become the
// selection (list row activated, map marker clicked).
type SelectRequestMsg struct {
	Component ComponentID
	EventID   string
}

// Describe renders the request for logs.
func (m SelectRequestMsg) Describe() string {
	return fmt.Sprintf(`component:%q id:%q`, m.Component, m.EventID)
}

// SelectRequestCmd wraps SelectRequestMsg in a tea.Cmd.
func SelectRequestCmd(component ComponentID, id string) tea.Cmd {
	return func() tea.Msg {
		return SelectRequestMsg{Component: component, EventID: id}
	}
}

// ClearSelectionMsg is emitted when the detail panel is closed.
type ClearSelectionMsg struct {
	Component ComponentID
}

// Describe renders the request for logs.
func (m ClearSelectionMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// ClearSelectionCmd wraps ClearSelectionMsg in a tea.Cmd.
func ClearSelectionCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return ClearSelectionMsg{Component: component}
	}
}

// SelectionChangeMsg announces that the shared selection actually changed.
// Either side may be nil: nil Previous means nothing was selected, nil
// Current means the selection was cleared.
type SelectionChangeMsg struct {
	Component ComponentID
	Previous  *quake.Event
	Current   *quake.Event
}

// Describe renders the change for logs.
func (m SelectionChangeMsg) Describe() string {
	return fmt.Sprintf(`prev:%q current:%q`, eventID(m.Previous), eventID(m.Current))
}

// SelectionChangeCmd wraps SelectionChangeMsg in a tea.Cmd.
func SelectionChangeCmd(component ComponentID, prev, current *quake.Event) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangeMsg{Component: component, Previous: prev, Current: current}
	}
}

// SortChangeMsg asks for a new list ordering.
type SortChangeMsg struct {
	Component ComponentID
	Mode      query.Mode
}

// Describe renders the sort change for logs.
func (m SortChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q mode:%q`, m.Component, m.Mode)
}

// SortChangeCmd wraps SortChangeMsg in a tea.Cmd.
func SortChangeCmd(component ComponentID, mode query.Mode) tea.Cmd {
	return func() tea.Msg {
		return SortChangeMsg{Component: component, Mode: mode}
	}
}

// SearchChangeMsg carries the live search text. It fires on every keystroke
// of the search prompt.
type SearchChangeMsg struct {
	Component ComponentID
	Text      string
}

// Describe renders the search change for logs.
func (m SearchChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q text:%q`, m.Component, m.Text)
}

// SearchChangeCmd wraps SearchChangeMsg in a tea.Cmd.
func SearchChangeCmd(component ComponentID, text string) tea.Cmd {
	return func() tea.Msg {
		return SearchChangeMsg{Component: component, Text: text}
	}
}

// CommandMode represents the current state of the command prompt.
type CommandMode string

const (
	// CommandModePassive indicates the command bar is idle.
	CommandModePassive CommandMode = "passive"
	// CommandModeInput indicates the command bar is collecting a command.
	CommandModeInput CommandMode = "input"
	// CommandModeSearch indicates the command bar is collecting search text.
	CommandModeSearch CommandMode = "search"
)

// CommandChangeMsg is emitted when the command input value changes.
type CommandChangeMsg struct {
	Component ComponentID
	Value     string
	Mode      CommandMode
}

// Describe implements the logging helper.
func (m CommandChangeMsg) Describe() string {
	return fmt.Sprintf(`value:%q mode:%q`, m.Value, m.Mode)
}

// CommandSubmitMsg is emitted when the command input is submitted.
type CommandSubmitMsg struct {
	Component ComponentID
	Value     string
}

// Describe implements the logging helper.
func (m CommandSubmitMsg) Describe() string {
	return fmt.Sprintf(`value:%q`, m.Value)
}

// CommandCancelMsg is emitted when command entry is cancelled.
type CommandCancelMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m CommandCancelMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// CommandChangeCmd wraps CommandChangeMsg.
func CommandChangeCmd(component ComponentID, value string, mode CommandMode) tea.Cmd {
	return func() tea.Msg {
		return CommandChangeMsg{
			Component: component,
			Value:     value,
			Mode:      mode,
		}
	}
}

// CommandSubmitCmd wraps CommandSubmitMsg.
func CommandSubmitCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return CommandSubmitMsg{
			Component: component,
			Value:     value,
		}
	}
}

// CommandCancelCmd wraps CommandCancelMsg.
func CommandCancelCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return CommandCancelMsg{
			Component: component,
		}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}

// Source reports the component that emitted msg, for the event log.
func Source(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case SelectRequestMsg:
		return v.Component, true
	case ClearSelectionMsg:
		return v.Component, true
	case SelectionChangeMsg:
		return v.Component, true
	case SortChangeMsg:
		return v.Component, true
	case SearchChangeMsg:
		return v.Component, true
	case CommandChangeMsg:
		return v.Component, true
	case CommandSubmitMsg:
		return v.Component, true
	case CommandCancelMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	case DebugMsg:
		return v.Component, true
	default:
		return "", false
	}
}

func eventID(ev *quake.Event) string {
	if ev == nil {
		return ""
	}
	return ev.ID
}
