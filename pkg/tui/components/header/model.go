// Package header renders the month title and the weekday name row.
package header

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/tui/theme"
)

// Weekdays lists the column names in display order.
var Weekdays = [calendar.DaysPerWeek]time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Model is the calendar header.
type Model struct {
	title     string
	cellWidth int
	theme     theme.HeaderTheme
}

// New builds a header for the month of g.
func New(g calendar.Grid, th theme.HeaderTheme) *Model {
	return &Model{title: g.Title(), cellWidth: 8, theme: th}
}

// SetTitle replaces the month title.
func (m *Model) SetTitle(title string) { m.title = title }

// Title returns the month title.
func (m *Model) Title() string { return m.title }

// SetCellWidth matches the weekday columns to the day cells below.
func (m *Model) SetCellWidth(w int) { m.cellWidth = max(w, 1) }

// WeekdayName returns the label for wd at the given column width. Full names
// are used when they fit, then three letters, then one.
func WeekdayName(wd time.Weekday, width int) string {
	name := wd.String()
	switch {
	case len(name) <= width:
		return name
	case width >= 3:
		return name[:3]
	default:
		return truncate.String(name, uint(max(width, 1)))
	}
}

// View renders the title line above the weekday row.
func (m *Model) View() string {
	total := m.cellWidth * calendar.DaysPerWeek
	title := m.theme.Title.Width(total).Render(m.title)

	names := make([]string, 0, calendar.DaysPerWeek)
	for _, wd := range Weekdays {
		names = append(names, m.theme.Weekday.Width(m.cellWidth).Render(WeekdayName(wd, m.cellWidth)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, names...)
	return lipgloss.JoinVertical(lipgloss.Left, title, row)
}
