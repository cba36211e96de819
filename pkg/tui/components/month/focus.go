package month

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/tui/components/day"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/ui/overlay"
)

// FocusedDay returns the cell holding keyboard focus.
func (m *Model) FocusedDay() *day.Model {
	if m.focusRow < 0 || m.focusRow >= len(m.weeks) {
		return nil
	}
	return m.weeks[m.focusRow].Day(m.focusCol)
}

// MoveFocus shifts keyboard focus by whole days (dx) and weeks (dy), staying
// inside the visible grid.
func (m *Model) MoveFocus(dx, dy int) {
	if len(m.weeks) == 0 {
		return
	}
	idx := m.focusRow*calendar.DaysPerWeek + m.focusCol + dx + dy*calendar.DaysPerWeek
	last := len(m.weeks)*calendar.DaysPerWeek - 1
	idx = max(0, min(idx, last))
	m.setFocus(idx/calendar.DaysPerWeek, idx%calendar.DaysPerWeek)
}

// FocusDay moves keyboard focus to d when it is visible.
func (m *Model) FocusDay(d calendar.Date) bool {
	_, row, col, ok := m.grid.Lookup(d)
	if !ok {
		return false
	}
	m.setFocus(row, col)
	return true
}

// ActivateFocused publishes an activation intent for the focused cell. A
// rejected intent comes back as a DebugMsg.
func (m *Model) ActivateFocused() tea.Cmd {
	if c := m.FocusedDay(); c != nil {
		m.activate(c)
	}
	return m.Flush()
}

func (m *Model) activate(c *day.Model) {
	if c.Activate() {
		return
	}
	m.log.Debug("activation rejected", "day", c.Day().Date, "reason", "outside month")
	m.queue(events.DebugCmd(c.ID(), "activate", "rejected: outside month"))
}

// CellAt maps a screen position relative to the container to a cell.
func (m *Model) CellAt(x, y int) (*day.Model, bool) {
	if x < 0 || y < headerHeight || m.cellW <= 0 || m.cellH <= 0 {
		return nil, false
	}
	row := (y - headerHeight) / m.cellH
	col := x / m.cellW
	if row >= len(m.weeks) || col >= calendar.DaysPerWeek {
		return nil, false
	}
	return m.weeks[row].Day(col), true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.editor != nil && m.insideEditor(msg.X, msg.Y) {
		return
	}
	c, ok := m.CellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	m.FocusDay(c.Day().Date)
	// Clicking away keeps whatever is typed in the focused field.
	if m.editor != nil {
		if change, ok := m.editor.Commit(); ok {
			m.applyField(change)
		}
	}
	m.activate(c)
}

func (m *Model) insideEditor(x, y int) bool {
	view := m.editor.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		return false
	}
	ox, oy := overlay.Offsets(width, height, min(w, width), min(h, height), overlay.Centered())
	return x >= ox && x < ox+w && y >= oy && y < oy+h
}

func (m *Model) setFocus(row, col int) {
	if c := m.FocusedDay(); c != nil {
		c.SetFocused(false)
	}
	m.focusRow, m.focusCol = row, col
	if c := m.FocusedDay(); c != nil {
		c.SetFocused(true)
	}
}

func (m *Model) focusDefault() {
	target := m.grid.Reference()
	if m.grid.Contains(m.opts.Today) {
		target = m.opts.Today
	}
	m.focusRow, m.focusCol = 0, 0
	if !m.FocusDay(target) {
		m.setFocus(0, 0)
	}
}
