package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/pacsift/internal/format/table"
	"github.com/atomicstack/pacsift/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	headerHeight    = 3
	searchBoxHeight = 3
	infoPanelHeight = 12
	minListWidth    = 24
)

const listLegend = "↑↓ (k/j) (g/G) (c-d/c-u) | filter (alt+u) | select (x/X) | sync (S)"

// View renders the whole screen from session state. It never mutates the
// model.
func (m *Model) View() string {
	width := m.width
	height := m.height
	if width <= 0 || height <= 0 {
		return ""
	}
	header := m.renderHeader(width)
	bodyHeight := height - headerHeight
	if bodyHeight < 3 {
		return header
	}
	if m.mode == ModeSyncing && m.sync != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderSync(width, bodyHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderBrowser(width, bodyHeight))
}

func (m *Model) renderHeader(width int) string {
	title := m.styles.Header.Render("pacsift package browser")
	if m.errMsg != "" {
		title = m.styles.Error.Render(truncate.String(m.errMsg, uint(max(0, width-4))))
	}
	return m.box(width, headerHeight, false).
		Align(lipgloss.Center).
		Render(title)
}

func (m *Model) renderBrowser(width, height int) string {
	listWidth := width / 3
	if listWidth < minListWidth {
		listWidth = min(width, minListWidth)
	}
	infoWidth := width - listWidth
	left := m.renderListColumn(listWidth, height)
	if infoWidth < 20 {
		return left
	}
	right := m.renderInfoColumn(infoWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderListColumn(width, height int) string {
	listHeight := height - searchBoxHeight - 1
	if listHeight < 3 {
		listHeight = 3
	}
	listBox := m.box(width, listHeight, false).Render(m.renderListRows(width-4, listHeight-2))
	searchBox := m.renderSearchBox(width)
	legend := m.styles.Legend.Render(truncate.String(listLegend, uint(max(1, width))))
	return lipgloss.JoinVertical(lipgloss.Left, listBox, searchBox, legend)
}

func (m *Model) renderListRows(width, maxRows int) string {
	l := m.list
	countText := fmt.Sprintf("packages %d · upgradable %d", l.Total(), l.UpgradableCount())
	if l.UpgradablesOnly {
		countText += " · showing upgradable only"
	}
	counts := m.styles.Legend.Render(countText)
	rowCap := maxRows - 1
	if rowCap < 1 {
		rowCap = 1
	}
	if l.Len() == 0 {
		msg := "(no packages)"
		if m.Query() != "" {
			msg = fmt.Sprintf("No matches for %q", m.Query())
		}
		return counts + "\n" + m.styles.Info.Render(msg)
	}

	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + rowCap
	if end > l.Len() {
		end = l.Len()
	}
	lines := make([]string, 0, rowCap+1)
	lines = append(lines, counts)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(l.Rows[i], i == l.Cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(row state.Row, atCursor bool, width int) string {
	marker := "  "
	if atCursor {
		marker = m.styles.CursorSymbol.Render("→ ")
	}
	badge := state.BadgeFor(row.Upgradable, m.selection.Contains(row.Name), m.selection.Empty())
	name := row.Name
	if row.Upgradable {
		name += " ↑"
	}
	name = truncate.String(name, uint(max(1, width-4)))
	switch badge {
	case state.BadgeSelected:
		return marker + m.styles.SelectedItem.Render("✔ "+name)
	case state.BadgeDimmed:
		return marker + m.styles.DimmedItem.Render("· "+name)
	default:
		if atCursor {
			return marker + m.styles.Key.Render(name)
		}
		return marker + m.styles.Item.Render(name)
	}
}

func (m *Model) renderSearchBox(width int) string {
	style := m.styles.FilterIdle
	active := m.mode == ModeSearching
	if active {
		style = m.styles.FilterText
	}
	value := m.search.View()
	if !active && m.Query() == "" {
		value = m.styles.FilterPlaceholder.Render("search (/)")
	}
	return m.box(width, searchBoxHeight, active).
		Render(style.Render(truncate.String(value, uint(max(1, width-4)))))
}

func (m *Model) renderInfoColumn(width, height int) string {
	info := m.box(width, infoPanelHeight, false).Render(m.renderPackageInfo(width - 4))
	tabsHeight := height - infoPanelHeight
	if tabsHeight < 4 {
		return info
	}
	tabs := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabHeader(width),
		m.box(width, tabsHeight-1, false).Render(m.renderTabBody(width-4, tabsHeight-3)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, info, tabs)
}

func (m *Model) renderPackageInfo(width int) string {
	pkg, ok := m.list.CurrentPackage()
	if !ok {
		return m.styles.Legend.Render("(no package selected)")
	}
	rows := [][]string{
		{"Name", pkg.Name},
		{"Version", pkg.Version},
	}
	if pkg.Description != "" {
		rows = append(rows, []string{"Description", pkg.Description})
	}
	if pkg.Architecture != "" {
		rows = append(rows, []string{"Architecture", pkg.Architecture})
	}
	if pkg.URL != "" {
		rows = append(rows, []string{"URL", pkg.URL})
	}
	if pkg.Size > 0 {
		rows = append(rows, []string{"Size", humanize.IBytes(pkg.Size)})
	}
	if !pkg.InstallDate.IsZero() {
		rows = append(rows, []string{"Installed", pkg.InstallDate.Format(time.RFC1123)})
	}
	if pkg.Packager != "" {
		rows = append(rows, []string{"Packager", pkg.Packager})
	}
	if pkg.Upgradable() {
		rows = append(rows, []string{"New version", pkg.Version + " → " + pkg.NewVersion})
	}
	lines := table.Format(rows)
	for i, line := range lines {
		lines[i] = m.styles.Info.Render(truncate.String(line, uint(max(1, width))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabHeader(width int) string {
	parts := make([]string, 0, len(AllTabs()))
	for _, tab := range AllTabs() {
		title := " " + tab.Title() + " "
		if tab == m.tab {
			parts = append(parts, m.styles.TabActive.Render(title))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(title))
		}
	}
	return truncate.String(strings.Join(parts, ""), uint(max(1, width)))
}

func (m *Model) renderTabBody(width, maxRows int) string {
	pkg, ok := m.list.CurrentPackage()
	if !ok {
		return ""
	}
	entries := m.tab.Lines(pkg)
	if len(entries) == 0 {
		return m.styles.Legend.Render("(none)")
	}
	if maxRows > 0 && len(entries) > maxRows {
		entries = entries[:maxRows]
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = m.styles.Info.Render(truncate.String(entry, uint(max(1, width))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSync(width, height int) string {
	session := m.sync
	message := "Sync packages? [Enter/ESC]"
	if session.phase == phaseRunning {
		switch {
		case !session.done:
			message = "Syncing " + strings.Join(session.packages, ", ")
		case session.exitErr != nil:
			message = "Sync failed: " + session.exitErr.Error()
		default:
			message = "Sync finished [ESC]"
		}
	}
	msgBox := m.box(width, 3, true).
		Align(lipgloss.Center).
		Render(m.styles.SyncMessage.Render(truncate.String(message, uint(max(1, width-4)))))

	logHeight := height - 3
	if logHeight < 3 {
		return msgBox
	}
	var body string
	if session.phase == phaseConfirmation {
		body = m.styles.SyncLog.Render(strings.Join(m.confirmationRows(), "\n"))
	} else {
		body = m.renderSyncLog(width-4, logHeight-2)
	}
	logBox := m.box(width, logHeight, false).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, msgBox, logBox)
}

// confirmationRows lists the pending packages with their version jump,
// aligned in columns.
func (m *Model) confirmationRows() []string {
	rows := make([][]string, 0, len(m.sync.packages))
	for _, name := range m.sync.packages {
		pkg, ok := m.list.Package(name)
		if !ok {
			rows = append(rows, []string{name, ""})
			continue
		}
		rows = append(rows, []string{name, pkg.Version + " → " + pkg.NewVersion})
	}
	return table.Format(rows)
}

// renderSyncLog shows the tail of the subprocess output, backed off by the
// session's scroll offset. The offset is clamped here, at render time, so
// out-of-range intermediate values are harmless.
func (m *Model) renderSyncLog(width, visible int) string {
	session := m.sync
	lines := session.lines()
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	back := session.scrollBack
	if back < 0 {
		back = 0
	}
	if back > maxScroll {
		back = maxScroll
	}
	start := len(lines) - visible - back
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	out := make([]string, 0, visible)
	for _, line := range lines[start:end] {
		line = ansi.Strip(line)
		out = append(out, m.styles.SyncLog.Render(truncate.String(line, uint(max(1, width)))))
	}
	return strings.Join(out, "\n")
}

func (m *Model) box(width, height int, active bool) lipgloss.Style {
	border := m.styles.Border
	if active {
		border = m.styles.ActiveBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border.GetForeground()).
		Width(max(0, width-2)).
		Height(max(0, height-2))
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	// header, list border, counts line, search box, legend
	visible := m.height - headerHeight - searchBoxHeight - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}
