package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is a sizable Bubble Tea widget owned by a parent model.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a Component that takes keyboard input only while focused.
type Focusable interface {
	Component
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}
