// Package day renders a single calendar cell and publishes activation
// intents for it on the shared selection channel.
package day

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
	"tableflip.dev/remcal/pkg/selection"
	"tableflip.dev/remcal/pkg/tui/components/thumbnail"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/theme"
)

// Options carries shared rendering context for cells.
type Options struct {
	Today  calendar.Date
	Theme  theme.DayTheme
	Logger *slog.Logger
}

// Model is one calendar cell.
type Model struct {
	id  events.ComponentID
	day calendar.Day

	ch  selection.Reader
	sub selection.Subscription

	open    bool
	focused bool
	today   bool
	thumbs  []reminder.Thumbnail

	width  int
	height int

	theme theme.DayTheme
	log   *slog.Logger
}

// New builds a cell for d. The reader is kept as given; the cell does not
// subscribe until Mount.
func New(d calendar.Day, ch selection.Reader, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Model{
		id:     events.ComponentID("day-" + d.Date.String()),
		day:    d,
		ch:     ch,
		today:  !opts.Today.IsZero() && opts.Today.Equal(d.Date),
		theme:  opts.Theme,
		log:    log,
		width:  8,
		height: 4,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Day returns the cell's descriptor.
func (m *Model) Day() calendar.Day { return m.day }

// Mount subscribes to committed transitions so the cell can track whether
// its own editor is open.
func (m *Model) Mount() {
	if m.sub != nil || m.ch == nil {
		return
	}
	if active, ok := m.ch.Current(); ok {
		m.open = active.Equal(m.day.Date)
	}
	m.sub = m.ch.Subscribe(func(t selection.Transition) {
		m.open = t.HasTo && t.To.Equal(m.day.Date)
	})
}

// Unmount releases the subscription. Safe to call repeatedly.
func (m *Model) Unmount() {
	if m.sub == nil {
		return
	}
	m.sub.Unsubscribe()
	m.sub = nil
	m.open = false
}

// Mounted reports whether the cell holds a live subscription.
func (m *Model) Mounted() bool { return m.sub != nil }

// Activate publishes an activation intent for an in-month day. Days outside
// the displayed month never publish.
func (m *Model) Activate() bool {
	if !m.day.InMonth {
		m.log.Info("can't add reminders to days outside the month", "day", m.day.Date)
		return false
	}
	if m.ch == nil {
		return false
	}
	m.ch.RequestActivate(m.day.Date)
	return true
}

// Open reports whether this cell's editor is currently open.
func (m *Model) Open() bool { return m.open }

// SetFocused toggles the keyboard focus highlight.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Focused reports whether the cell has keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// SetThumbnails replaces the reminder chips shown in the cell.
func (m *Model) SetThumbnails(ts []reminder.Thumbnail) {
	m.thumbs = append([]reminder.Thumbnail(nil), ts...)
}

// SetSize sets the outer size of the cell, border included.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 4)
	m.height = max(height, 3)
}

// View renders the cell.
func (m *Model) View() string {
	style := m.theme.InMonth
	if !m.day.InMonth {
		style = m.theme.OutMonth
	}
	if m.focused {
		style = style.BorderForeground(m.theme.Focused.GetBorderTopForeground())
	}
	if m.open {
		style = style.Border(m.theme.Open.GetBorderStyle()).BorderForeground(m.theme.Open.GetBorderTopForeground())
	}

	innerW := max(m.width-2, 1)
	innerH := max(m.height-2, 1)

	number := fmt.Sprintf("%2d", m.day.Date.Day)
	numStyle := m.theme.Number
	if m.today {
		numStyle = numStyle.Inherit(m.theme.Today)
	}
	lines := []string{numStyle.Render(number)}
	if m.day.InMonth {
		lines = append(lines, thumbnail.RenderAll(m.thumbs, innerW, innerH-1)...)
	}
	body := strings.Join(lines, "\n")

	return style.
		Width(innerW).
		Height(innerH).
		MaxHeight(m.height).
		Render(lipgloss.NewStyle().MaxWidth(innerW).Render(body))
}
