package ui

import (
	"strings"

	"github.com/atomicstack/pacsift/internal/logging/events"
	"github.com/atomicstack/pacsift/internal/pacman"
	"github.com/atomicstack/pacsift/internal/upgrade"
	tea "github.com/charmbracelet/bubbletea"
)

type syncPhase int

const (
	phaseConfirmation syncPhase = iota
	phaseRunning
)

// syncSession holds the state of one upgrade workflow, from the
// confirmation prompt until the user backs out. The session owns the
// runner; its output buffer only ever grows.
type syncSession struct {
	phase    syncPhase
	packages []string
	runner   *upgrade.Runner
	output   strings.Builder
	// scrollBack counts lines scrolled up from the tail of the output.
	// Values beyond the buffer are tolerated and clamped at render time.
	scrollBack int
	done       bool
	exitErr    error
}

func newSyncSession(packages []string) *syncSession {
	return &syncSession{phase: phaseConfirmation, packages: packages}
}

// lines splits the accumulated output for display. Carriage returns from
// pacman's progress bars collapse to the final state of each line.
func (s *syncSession) lines() []string {
	text := strings.ReplaceAll(s.output.String(), "\r\n", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
			line = line[idx+1:]
		}
		lines = append(lines, line)
	}
	return lines
}

// syncEventMsg delivers one runner event into the update loop.
type syncEventMsg struct {
	event upgrade.Event
}

// syncClosedMsg signals that the runner's event channel is drained.
type syncClosedMsg struct{}

// packagesReloadedMsg carries the refreshed package table after a sync.
type packagesReloadedMsg struct {
	packages []pacman.Package
	err      error
}

func waitForSyncEvent(r *upgrade.Runner) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-r.Events()
		if !ok {
			return syncClosedMsg{}
		}
		return syncEventMsg{event: evt}
	}
}

func (m *Model) handleSyncEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(syncEventMsg)
	if !ok {
		return nil
	}
	session := m.sync
	if session == nil || session.runner == nil {
		// the user already backed out; drop the event and stop waiting
		return nil
	}
	evt := eventMsg.event
	if evt.Done {
		session.done = true
		session.exitErr = evt.Err
		events.Sync.Exited(evt.Err)
	} else if evt.Output != "" {
		session.output.WriteString(evt.Output)
	}
	return waitForSyncEvent(session.runner)
}

func (m *Model) handleSyncClosedMsg(tea.Msg) tea.Cmd {
	if m.sync != nil {
		m.sync.runner = nil
	}
	return nil
}

func (m *Model) handlePackagesReloadedMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(packagesReloadedMsg)
	if !ok {
		return nil
	}
	if reload.err != nil {
		m.errMsg = reload.err.Error()
		events.App.PackagesReloadFailed(reload.err)
		return nil
	}
	m.list.SetPackages(reload.packages)
	m.selection.Cleanup(m.list.Contains)
	upgradable := m.list.UpgradableCount()
	events.App.PackagesLoaded(m.list.Total(), upgradable)
	return nil
}

func (m *Model) reloadPackagesCmd() tea.Cmd {
	source := m.source
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		packages, err := source.Packages()
		return packagesReloadedMsg{packages: packages, err: err}
	}
}
