package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/tui/components/command"
	"tableflip.dev/quake/pkg/tui/components/eventviewer"
	"tableflip.dev/quake/pkg/tui/events"
)

func suggestions() []command.SuggestionOption {
	opts := make([]command.SuggestionOption, 0, 16)
	for _, mode := range query.Modes() {
		opts = append(opts, command.SuggestionOption{
			Name:        "sort " + mode.String(),
			Description: mode.Label(),
		})
	}
	return append(opts,
		command.SuggestionOption{Name: "search", Description: "Filter the list by place"},
		command.SuggestionOption{Name: "clear", Description: "Close the detail panel"},
		command.SuggestionOption{Name: "select", Description: "Select an earthquake by id"},
		command.SuggestionOption{Name: "reset", Description: "Reset the map view"},
		command.SuggestionOption{Name: "copy", Description: "Copy the selected event URL"},
		command.SuggestionOption{Name: "home", Description: "Back to the landing page"},
		command.SuggestionOption{Name: "help", Description: "Toggle the key reference"},
		command.SuggestionOption{Name: "debug", Description: "Toggle the event log"},
		command.SuggestionOption{Name: "log warn", Description: "Show warnings and errors only"},
		command.SuggestionOption{Name: "log info", Description: "Show every logged event"},
		command.SuggestionOption{Name: "quit", Description: "Exit quake"},
	)
}

// runCommand executes a submitted ":" command. Selection, sort and search
// changes are re-emitted as messages so they take the same path as keys.
func (m *Model) runCommand(raw string) tea.Cmd {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), fields[0]))

	switch name {
	case "quit", "q", "exit":
		m.unmount()
		return tea.Quit
	case "help":
		m.toggleHelp()
		return nil
	case "debug":
		m.toggleDebug()
		return nil
	case "home":
		m.leave()
		return nil
	case "log":
		level, err := eventviewer.ParseLevel(arg)
		if err != nil {
			m.command.SetStatus(err.Error())
			return nil
		}
		m.log.SetMinLevel(level)
		m.logVisible = true
		m.command.SetStatus(fmt.Sprintf("Event log: %s and up", level))
		return nil
	case "sort", "search", "clear", "select", "reset", "copy":
	default:
		m.command.SetStatus("Unknown command: " + name)
		return nil
	}

	if m.mount == nil {
		m.command.SetStatus(fmt.Sprintf(":%s needs the visualizer (press enter)", name))
		return nil
	}
	switch name {
	case "sort":
		mode, err := query.ParseMode(arg)
		if err != nil {
			m.command.SetStatus(err.Error())
			return nil
		}
		return events.SortChangeCmd(commandID, mode)
	case "search":
		return events.SearchChangeCmd(commandID, arg)
	case "clear":
		return events.ClearSelectionCmd(commandID)
	case "select":
		if arg == "" {
			m.command.SetStatus("Usage: :select <id>")
			return nil
		}
		return events.SelectRequestCmd(commandID, arg)
	case "reset":
		m.mount.world.Reset()
		m.command.SetStatus("Map view reset")
		return nil
	default:
		return m.copySelected()
	}
}
