package ui

import (
	"reflect"

	"github.com/atomicstack/pacsift/internal/logging/events"
	"github.com/atomicstack/pacsift/internal/pacman"
	"github.com/atomicstack/pacsift/internal/theme"
	uistate "github.com/atomicstack/pacsift/internal/ui/state"
	"github.com/atomicstack/pacsift/internal/upgrade"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the top-level interaction state governing how input commands are
// interpreted.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearching
	ModeSyncing
	ModeExiting
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearching:
		return "searching"
	case ModeSyncing:
		return "syncing"
	case ModeExiting:
		return "exiting"
	}
	return "unknown"
}

// Options carries presentation and subprocess settings into the model.
type Options struct {
	PacmanBin string
	Width     int
	Height    int
	Verbose   bool
}

type msgHandler func(tea.Msg) tea.Cmd

// runnerFunc spawns the upgrade subprocess; tests substitute it.
type runnerFunc func(bin string, packages []string) (*upgrade.Runner, error)

// Model implements the Bubble Tea model for the package browser. It owns
// every piece of mutable session state: the filtered list, the selection
// set, the dependency tab, and at most one sync session. Rendering reads
// this state and never mutates it.
type Model struct {
	mode      Mode
	list      *uistate.List
	selection *uistate.Selection
	tab       DepTab
	search    textinput.Model
	sync      *syncSession

	source pacman.Source
	styles *theme.Styles
	opts   Options

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	errMsg      string

	handlers    map[reflect.Type]msgHandler
	startRunner runnerFunc
}

// NewModel initialises the UI state over the loaded package table.
func NewModel(source pacman.Source, packages []pacman.Package, styles *theme.Styles, opts Options) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	search := textinput.New()
	search.Placeholder = "type to search"
	search.Prompt = ""
	search.CharLimit = 128

	m := &Model{
		mode:        ModeNormal,
		list:        uistate.NewList(packages),
		selection:   uistate.NewSelection(),
		search:      search,
		source:      source,
		styles:      styles,
		opts:        opts,
		startRunner: upgrade.Start,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(syncEventMsg{}):        m.handleSyncEventMsg,
		reflect.TypeOf(syncClosedMsg{}):       m.handleSyncClosedMsg,
		reflect.TypeOf(packagesReloadedMsg{}): m.handlePackagesReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	cmd, recognised := Translate(keyMsg)
	switch m.mode {
	case ModeNormal:
		if !recognised {
			return nil
		}
		return m.handleNormalCommand(cmd)
	case ModeSearching:
		return m.handleSearchingKey(cmd, recognised, keyMsg)
	case ModeSyncing:
		if !recognised {
			return nil
		}
		return m.handleSyncingCommand(cmd)
	}
	return nil
}

func (m *Model) handleNormalCommand(cmd Command) tea.Cmd {
	switch cmd.Kind {
	case KindQuit:
		return m.exit()
	case KindBack:
		if m.search.Value() != "" {
			m.clearQuery()
			return nil
		}
		return m.exit()
	case KindToggleSearch:
		m.setMode(ModeSearching)
		return m.search.Focus()
	case KindToggleFilter:
		m.list.ToggleUpgradableFilter()
		m.syncViewport()
		events.Filter.UpgradablesOnly(m.list.UpgradablesOnly)
	case KindToggleSelect:
		m.toggleCurrentSelection()
	case KindToggleSelectAllUpgradable:
		m.selection.ToggleUpgradables(m.list.UpgradableNames())
		events.Selection.BulkToggle(m.selection.Len())
	case KindStartSync:
		return m.requestSync()
	case KindNavigate:
		m.navigate(cmd.Move)
	case KindTabCycle:
		m.cycleTab(cmd.Move)
	}
	return nil
}

func (m *Model) handleSearchingKey(cmd Command, recognised bool, keyMsg tea.KeyMsg) tea.Cmd {
	if recognised {
		switch cmd.Kind {
		case KindConfirm:
			m.search.Blur()
			m.setMode(ModeNormal)
			return nil
		case KindBack:
			m.clearQuery()
			m.search.Blur()
			m.setMode(ModeNormal)
			return nil
		}
	}
	var teaCmd tea.Cmd
	m.search, teaCmd = m.search.Update(keyMsg)
	m.list.SetQuery(m.search.Value())
	m.syncViewport()
	events.Filter.Query(m.search.Value(), m.list.Len())
	return teaCmd
}

func (m *Model) handleSyncingCommand(cmd Command) tea.Cmd {
	session := m.sync
	if session == nil {
		// inconsistent state; fall back to browsing
		m.setMode(ModeNormal)
		return nil
	}
	switch session.phase {
	case phaseConfirmation:
		switch cmd.Kind {
		case KindConfirm:
			return m.startSync(session)
		case KindBack:
			m.abandonSync(false)
		}
	case phaseRunning:
		switch cmd.Kind {
		case KindNavigate:
			switch cmd.Move {
			case MoveNext:
				session.scrollBack--
			case MovePrevious:
				session.scrollBack++
			}
		case KindBack:
			return m.abandonSync(!session.done)
		}
	}
	return nil
}

func (m *Model) startSync(session *syncSession) tea.Cmd {
	runner, err := m.startRunner(m.opts.PacmanBin, session.packages)
	if err != nil {
		events.Sync.SpawnFailed(err)
		m.errMsg = err.Error()
		m.sync = nil
		m.setMode(ModeNormal)
		return nil
	}
	session.phase = phaseRunning
	session.runner = runner
	events.Sync.Started(session.packages)
	return waitForSyncEvent(runner)
}

// abandonSync leaves the sync session. A still-running subprocess is
// terminated rather than orphaned; a finished one triggers a package table
// refresh so new versions show up in the list.
func (m *Model) abandonSync(running bool) tea.Cmd {
	session := m.sync
	m.sync = nil
	m.setMode(ModeNormal)
	if session == nil {
		return nil
	}
	if session.runner != nil && running {
		session.runner.Stop()
	}
	events.Sync.Abandoned(running)
	if session.done {
		return m.reloadPackagesCmd()
	}
	return nil
}

func (m *Model) requestSync() tea.Cmd {
	if m.selection.Empty() {
		return nil
	}
	packages := m.selection.Names(m.list)
	if len(packages) == 0 {
		return nil
	}
	m.errMsg = ""
	m.sync = newSyncSession(packages)
	m.setMode(ModeSyncing)
	events.Sync.Requested(packages)
	return nil
}

func (m *Model) toggleCurrentSelection() {
	name, ok := m.list.CurrentName()
	if !ok {
		return
	}
	m.selection.Toggle(name)
	events.Selection.Toggle(name, m.selection.Contains(name), m.selection.Len())
}

func (m *Model) navigate(move Move) {
	moved := false
	switch move {
	case MoveFirst:
		moved = m.list.MoveCursorFirst()
	case MoveLast:
		moved = m.list.MoveCursorLast()
	case MoveNext:
		moved = m.list.MoveCursorNext()
	case MovePrevious:
		moved = m.list.MoveCursorPrevious()
	case MovePageUp:
		moved = m.list.MoveCursorPageUp()
	case MovePageDown:
		moved = m.list.MoveCursorPageDown()
	}
	if moved {
		events.UI.Cursor(m.list.Cursor, m.list.Len())
	}
	m.syncViewport()
}

func (m *Model) cycleTab(move Move) {
	switch move {
	case MoveNext:
		m.tab = m.tab.Next()
	case MovePrevious:
		m.tab = m.tab.Previous()
	default:
		return
	}
	events.UI.Tab(m.tab.Title())
}

func (m *Model) clearQuery() {
	m.search.SetValue("")
	m.list.SetQuery("")
	m.syncViewport()
	events.Filter.Cleared()
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.UI.Mode(mode.String())
}

func (m *Model) exit() tea.Cmd {
	m.setMode(ModeExiting)
	return tea.Quit
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// Mode exposes the current session mode to the presentation layer.
func (m *Model) Mode() Mode {
	return m.mode
}

// List exposes the filtered list view model read-only.
func (m *Model) List() *uistate.List {
	return m.list
}

// Selection exposes the selection set read-only.
func (m *Model) Selection() *uistate.Selection {
	return m.selection
}

// Tab returns the active dependency detail tab.
func (m *Model) Tab() DepTab {
	return m.tab
}

// Query returns the current search query text.
func (m *Model) Query() string {
	return m.search.Value()
}

// Err returns the most recent recoverable error message, if any.
func (m *Model) Err() string {
	return m.errMsg
}
