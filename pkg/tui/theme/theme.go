package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer  FooterTheme
	Panel   PanelTheme
	List    ListTheme
	Map     MapTheme
	Detail  DetailTheme
	Landing LandingTheme
	Help    HelpTheme
	Log     LogTheme
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help                lipgloss.Style
	Status              lipgloss.Style
	CommandName         lipgloss.Style
	CommandDescription  lipgloss.Style
	CommandSelectedName lipgloss.Style
	CommandSelectedDesc lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Error        lipgloss.Style
}

// ListTheme styles the earthquake list rows.
type ListTheme struct {
	Place    lipgloss.Style
	Meta     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// MarkerStyle is the stroke/fill pair of one marker state.
type MarkerStyle struct {
	Stroke lipgloss.Style
	Fill   lipgloss.Style
}

// MapTheme styles the world map.
type MapTheme struct {
	Land        lipgloss.Style
	Graticule   lipgloss.Style
	Crosshair   lipgloss.Style
	Marker      MarkerStyle
	Selected    MarkerStyle
	Popup       lipgloss.Style
	Attribution lipgloss.Style
}

// DetailTheme styles the selected event panel.
type DetailTheme struct {
	Frame lipgloss.Style
	Close lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Link  lipgloss.Style
}

// LandingTheme styles the landing page.
type LandingTheme struct {
	Blurb  lipgloss.Style
	Button lipgloss.Style
	Hint   lipgloss.Style
}

// HelpTheme styles the key reference overlay.
type HelpTheme struct {
	Frame lipgloss.Style
	// Glamour style name for the markdown body.
	Markdown string
}

// LogTheme styles the event log pane.
type LogTheme struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	commandName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)
	commandDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Footer: FooterTheme{
			Help:                lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:              lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
			CommandName:         commandName,
			CommandDescription:  commandDesc,
			CommandSelectedName: commandName.Reverse(true),
			CommandSelectedDesc: commandDesc.Reverse(true),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color("39")),
			Title:        lipgloss.NewStyle().Bold(true),
			Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
		},
		List: ListTheme{
			Place:    lipgloss.NewStyle().Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("#A5F3FC")).Foreground(lipgloss.Color("#0B1220")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Map: MapTheme{
			Land:      lipgloss.NewStyle().Foreground(lipgloss.Color("#3F6F4A")),
			Graticule: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			Crosshair: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
			Marker: MarkerStyle{
				Stroke: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
				Fill:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
			},
			Selected: MarkerStyle{
				Stroke: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")).Bold(true),
				Fill:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
			},
			Popup: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("244")).
				Padding(0, 1),
			Attribution: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("252")).
				Padding(0, 1),
			Close: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
			Link:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Underline(true),
		},
		Landing: LandingTheme{
			Blurb: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Button: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7C3AED")).
				Foreground(lipgloss.Color("#1D4ED8")).
				Background(lipgloss.Color("#FFFFFF")).
				Bold(true).
				Padding(0, 3),
			Hint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Help: HelpTheme{
			Frame:    frame.BorderForeground(lipgloss.Color("39")),
			Markdown: "dark",
		},
		Log: LogTheme{
			Frame:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
			Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
			Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
			Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}
