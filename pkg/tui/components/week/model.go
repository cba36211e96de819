// Package week composes seven day cells into one calendar row.
package week

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/selection"
	"tableflip.dev/remcal/pkg/tui/components/day"
)

// Model is a row of day cells. It keeps no selection state of its own; the
// reader is forwarded unchanged to every cell.
type Model struct {
	week calendar.Week
	days [calendar.DaysPerWeek]*day.Model
}

// New builds the cells for w.
func New(w calendar.Week, ch selection.Reader, opts day.Options) *Model {
	m := &Model{week: w}
	for i, d := range w {
		m.days[i] = day.New(d, ch, opts)
	}
	return m
}

// Mount mounts every cell.
func (m *Model) Mount() {
	for _, d := range m.days {
		d.Mount()
	}
}

// Unmount releases every cell's subscription.
func (m *Model) Unmount() {
	for _, d := range m.days {
		d.Unmount()
	}
}

// Week returns the row descriptor.
func (m *Model) Week() calendar.Week { return m.week }

// Day returns the cell in column col (0 = Sunday).
func (m *Model) Day(col int) *day.Model {
	if col < 0 || col >= len(m.days) {
		return nil
	}
	return m.days[col]
}

// Days returns the cells in display order.
func (m *Model) Days() []*day.Model {
	return m.days[:]
}

// SetSize sizes every cell.
func (m *Model) SetSize(cellWidth, cellHeight int) {
	for _, d := range m.days {
		d.SetSize(cellWidth, cellHeight)
	}
}

// View renders the row.
func (m *Model) View() string {
	cells := make([]string, 0, len(m.days))
	for _, d := range m.days {
		cells = append(cells, d.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
