// Package app is the root Bubble Tea model. It routes between the landing
// page and the visualizer, owns the single fetch of each visualizer mount and
// keeps the list, map and detail views in sync through the shared store.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/tui/components/command"
	"tableflip.dev/quake/pkg/tui/components/eventviewer"
	"tableflip.dev/quake/pkg/tui/components/help"
	"tableflip.dev/quake/pkg/tui/components/landing"
	"tableflip.dev/quake/pkg/tui/components/panel"
	"tableflip.dev/quake/pkg/tui/components/quakedetail"
	"tableflip.dev/quake/pkg/tui/components/quakelist"
	"tableflip.dev/quake/pkg/tui/components/worldmap"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/state"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
	"tableflip.dev/quake/pkg/tui/ui/overlay"
)

const (
	appID     = events.ComponentID("app")
	listID    = events.ComponentID("list")
	mapID     = events.ComponentID("map")
	detailID  = events.ComponentID("detail")
	commandID = events.ComponentID("command")
)

// Options configures the root model.
type Options struct {
	Fetcher feed.Fetcher
	// Feed is shown in the header.
	Feed   feed.Feed
	Sort   query.Mode
	Search string
	// SkipLanding mounts the visualizer immediately.
	SkipLanding bool
	FocusZoom   float64
	FlyDuration time.Duration
	// Debug opens the event log at start.
	Debug      bool
	Hyperlinks bool
	// Clipboard receives copied URLs; nil means the system clipboard.
	Clipboard func(string) error
	Now       func() time.Time
	Theme     *theme.Theme
}

// Page is the routed page.
type Page int

const (
	// PageLanding is the start page.
	PageLanding Page = iota
	// PageVisualizer shows the list, map and detail views.
	PageVisualizer
)

func (p Page) String() string {
	if p == PageVisualizer {
		return "visualizer"
	}
	return "landing"
}

type pane int

const (
	paneList pane = iota
	paneMap
)

// loadedMsg carries the fetch outcome of the mount identified by generation.
type loadedMsg struct {
	generation int
	result     feed.Result
	err        error
}

func (m loadedMsg) Describe() string {
	if m.err != nil {
		return fmt.Sprintf(`generation:%d error:%q`, m.generation, m.err.Error())
	}
	return fmt.Sprintf(`generation:%d events:%d skipped:%d`, m.generation, len(m.result.Events), m.result.Skipped)
}

// copiedMsg reports the clipboard write.
type copiedMsg struct {
	url string
	err error
}

func (m copiedMsg) Describe() string {
	if m.err != nil {
		return fmt.Sprintf(`url:%q error:%q`, m.url, m.err.Error())
	}
	return fmt.Sprintf(`url:%q`, m.url)
}

// mount is the per-visit visualizer state. It is discarded on Home.
type mount struct {
	generation int
	ctx        context.Context
	cancel     context.CancelFunc

	store  *state.Store
	list   *quakelist.Model
	world  *worldmap.Model
	detail *quakedetail.Model
	focus  pane

	listPanel panel.Model
	mapPanel  panel.Model
}

// Model is the root model.
type Model struct {
	opts  Options
	theme theme.Theme

	width  int
	height int

	page       Page
	generation int
	mount      *mount

	landing *landing.Model
	command *command.Model
	spinner spinner.Model

	help        *help.Model
	helpVisible bool

	log        *eventviewer.Model
	logVisible bool

	listRect   overlay.Rect
	mapRect    overlay.Rect
	detailRect overlay.Rect
}

// New builds the root model on the landing page.
func New(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Feed.Name == "" {
		opts.Feed, _ = feed.Lookup(feed.DefaultFeed)
	}

	cmd := command.NewModel(command.Options{
		ID:          commandID,
		Placeholder: "command",
		StatusText:  "Ready",
		Styles:      th.Footer,
	})
	cmd.SetSuggestions(suggestions())

	return &Model{
		opts:       opts,
		theme:      th,
		landing:    landing.New(th.Landing),
		command:    cmd,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(th.Help, opts.Feed.Name, 80, 24),
		log:        eventviewer.NewModel(400, th.Log),
		logVisible: opts.Debug,
	}
}

// Run launches the program and blocks until it exits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := New(opts)
	defer m.unmount()
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}

// Page reports the routed page.
func (m *Model) Page() Page { return m.page }

// Store is the state of the current mount, nil on the landing page.
func (m *Model) Store() *state.Store {
	if m.mount == nil {
		return nil
	}
	return m.mount.store
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.SkipLanding {
		return m.enter()
	}
	return nil
}

// enter mounts the visualizer: a fresh store and views, and one fetch
// scoped to the mount.
func (m *Model) enter() tea.Cmd {
	if m.mount != nil {
		return nil
	}
	m.generation++
	ctx, cancel := context.WithCancel(context.Background())
	mt := &mount{
		generation: m.generation,
		ctx:        ctx,
		cancel:     cancel,
		store:      state.New(m.opts.Sort, m.opts.Search),
		list:       quakelist.New(quakelist.Options{ID: listID, Styles: m.theme.List, Now: m.opts.Now}),
		world: worldmap.New(worldmap.Options{
			ID:          mapID,
			FocusZoom:   m.opts.FocusZoom,
			FlyDuration: m.opts.FlyDuration,
			Styles:      m.theme.Map,
		}),
		detail:    quakedetail.New(quakedetail.Options{ID: detailID, Styles: m.theme.Detail, Hyperlinks: m.opts.Hyperlinks}),
		listPanel: panel.New(m.theme.Panel, "Earthquakes"),
		mapPanel:  panel.New(m.theme.Panel, "World"),
	}
	m.mount = mt
	m.page = PageVisualizer
	m.command.SetStatus("Loading earthquakes...")

	return tea.Batch(
		fetchCmd(ctx, m.opts.Fetcher, mt.generation),
		m.spinner.Tick,
		m.setFocus(paneList),
	)
}

// unmount cancels the in-flight fetch and drops the mount.
func (m *Model) unmount() {
	if m.mount == nil {
		return
	}
	m.mount.cancel()
	m.mount = nil
}

// leave returns to the landing page.
func (m *Model) leave() {
	m.unmount()
	m.page = PageLanding
	m.command.SetStatus("Ready")
}

func fetchCmd(ctx context.Context, f feed.Fetcher, generation int) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return loadedMsg{generation: generation, err: fmt.Errorf("no feed configured")}
		}
		res, err := f.Fetch(ctx)
		return loadedMsg{generation: generation, result: res, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.record(msg)
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleClick(msg.Mouse())
	case tea.MouseWheelMsg:
		if m.helpVisible {
			_, cmd := m.help.Update(msg)
			return cmd
		}
		return nil
	case landing.EnterMsg:
		return m.enter()
	case loadedMsg:
		return m.handleLoaded(msg)
	case events.SelectRequestMsg:
		return m.selectEvent(msg.EventID)
	case events.ClearSelectionMsg:
		return m.clearSelection()
	case events.SortChangeMsg:
		m.setSort(msg.Mode)
		return nil
	case events.SearchChangeMsg:
		m.setSearch(msg.Text)
		return nil
	case events.CommandSubmitMsg:
		return m.runCommand(msg.Value)
	case events.CommandCancelMsg:
		m.command.SetStatus("Ready")
		return nil
	case copiedMsg:
		if msg.err != nil {
			m.command.SetStatus("Copy failed: " + msg.err.Error())
		} else {
			m.command.SetStatus("Copied " + msg.url)
		}
		return nil
	case worldmap.FrameMsg:
		if m.mount == nil {
			return nil
		}
		_, cmd := m.mount.world.Update(msg)
		return cmd
	case spinner.TickMsg:
		if m.mount == nil || m.mount.store.Status().Phase != feed.Loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}

	if m.command.InInputMode() {
		_, cmd := m.command.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleLoaded(msg loadedMsg) tea.Cmd {
	mt := m.mount
	if mt == nil || msg.generation != mt.generation {
		return nil
	}
	if msg.err != nil {
		log.Printf("fetch %s: %v", m.opts.Feed.Name, msg.err)
		if mt.store.Fail(msg.err) {
			m.command.SetStatus("Error: " + msg.err.Error())
		}
		return nil
	}
	if !mt.store.Load(msg.result.Events, msg.result.Skipped) {
		return nil
	}
	mt.list.SetEvents(mt.store.View())
	mt.world.SetEvents(mt.store.Events(), mt.store.Skipped())

	log.Printf("fetch %s: %d events, %d skipped", m.opts.Feed.Name, len(msg.result.Events), msg.result.Skipped)
	status := fmt.Sprintf("Loaded %d earthquakes", len(mt.store.Events()))
	if n := mt.store.Skipped(); n > 0 {
		status += fmt.Sprintf(" (%d skipped)", n)
		m.log.Record(events.DebugMsg{
			Component: appID,
			Context:   "decode",
			Detail:    fmt.Sprintf("skipped %d malformed features", n),
		}, eventviewer.LevelWarn)
	}
	m.command.SetStatus(status)
	return nil
}

// selectEvent asks the store for a new selection and, when it changed,
// hands the change to every view before any other message is handled.
func (m *Model) selectEvent(id string) tea.Cmd {
	if m.mount == nil {
		return nil
	}
	change, err := m.mount.store.Select(id)
	if err != nil {
		m.command.SetStatus(fmt.Sprintf("No earthquake with id %q", id))
		return nil
	}
	return m.dispatch(change)
}

func (m *Model) clearSelection() tea.Cmd {
	if m.mount == nil {
		return nil
	}
	return m.dispatch(m.mount.store.Clear())
}

func (m *Model) dispatch(change state.Change) tea.Cmd {
	if !change.Changed() {
		return nil
	}
	mt := m.mount
	msg := events.SelectionChangeMsg{Component: appID, Previous: change.Previous, Current: change.Current}
	m.record(msg)

	var cmds []tea.Cmd
	_, cmd := mt.list.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = mt.detail.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = mt.world.Update(msg)
	cmds = append(cmds, cmd)

	if change.Current != nil {
		m.command.SetStatus("Selected " + change.Current.Label())
	} else {
		m.command.SetStatus("Selection cleared")
	}
	return tea.Batch(cmds...)
}

func (m *Model) setSort(mode query.Mode) {
	if m.mount == nil {
		return
	}
	if m.mount.store.SetSort(mode) {
		m.mount.list.SetEvents(m.mount.store.View())
	}
	m.command.SetStatus("Sort: " + mode.Label())
}

func (m *Model) setSearch(text string) {
	if m.mount == nil {
		return
	}
	if m.mount.store.SetSearch(text) {
		m.mount.list.SetEvents(m.mount.store.View())
	}
	if text == "" {
		m.command.SetStatus("Search cleared")
		return
	}
	m.command.SetStatus(fmt.Sprintf("Search %q: %d matches", text, len(m.mount.store.View())))
}

func (m *Model) setFocus(p pane) tea.Cmd {
	mt := m.mount
	if mt == nil {
		return nil
	}
	mt.focus = p
	mt.listPanel.SetFocused(p == paneList)
	mt.mapPanel.SetFocused(p == paneMap)
	return tea.Batch(mt.pane(otherPane(p)).Blur(), mt.pane(p).Focus())
}

func (mt *mount) pane(p pane) ui.Focusable {
	if p == paneMap {
		return mt.world
	}
	return mt.list
}

func otherPane(p pane) pane {
	if p == paneList {
		return paneMap
	}
	return paneList
}

func (m *Model) copySelected() tea.Cmd {
	if m.mount == nil {
		return nil
	}
	ev, ok := m.mount.store.Selected()
	if !ok || ev.URL == "" {
		m.command.SetStatus("Nothing to copy")
		return nil
	}
	write := m.opts.Clipboard
	url := ev.URL
	return func() tea.Msg {
		return copiedMsg{url: url, err: write(url)}
	}
}

func (m *Model) toggleHelp() {
	m.helpVisible = !m.helpVisible
}

func (m *Model) toggleDebug() {
	m.logVisible = !m.logVisible
	if m.logVisible {
		m.command.SetStatus("Event log visible")
	} else {
		m.command.SetStatus("Event log hidden")
	}
}

// record adds msg to the event log. Animation frames are left out.
func (m *Model) record(msg tea.Msg) {
	level := eventviewer.LevelInfo
	switch msg := msg.(type) {
	case worldmap.FrameMsg:
		return
	case loadedMsg:
		if msg.err != nil {
			level = eventviewer.LevelError
		}
	case copiedMsg:
		if msg.err != nil {
			level = eventviewer.LevelError
		}
	}
	m.log.Record(msg, level)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	return m.command.View()
}
