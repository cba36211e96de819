// Package eventlog shows the most recent calendar events (selection changes,
// field edits, rejected activations) in a scrollable panel.
package eventlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/remcal/pkg/tui/theme"
)

const defaultCapacity = 200

// Entry is one logged event.
type Entry struct {
	At        time.Time
	Component string
	Event     string
	Detail    string
	// Warn marks rejected or failed requests.
	Warn bool
}

// Model is a newest-first event log with a fixed capacity.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	capacity int

	width  int
	height int

	now   func() time.Time
	theme theme.LogTheme
}

// New builds a log holding at most capacity entries.
func New(capacity int, th theme.LogTheme) *Model {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	m := &Model{
		viewport: viewport.New(1, 1),
		capacity: capacity,
		now:      time.Now,
		theme:    th,
	}
	m.refresh()
	return m
}

// Update scrolls the log with the viewport's page keys and the mouse wheel.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// AtTop reports whether the newest entry is in view.
func (m *Model) AtTop() bool { return m.viewport.AtTop() }

// SetSize resizes the panel, border and title line included.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	m.viewport.Width = max(1, width-2)
	m.viewport.Height = max(1, height-3)
	m.refresh()
}

// View renders the bordered log.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := m.theme.Title.Render(fmt.Sprintf("Events (%d)", len(m.entries)))
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
	return m.theme.Frame.Width(m.width - 2).Height(m.height - 2).Render(body)
}

// Append records e as the newest entry and scrolls back to it.
func (m *Model) Append(e Entry) {
	if e.At.IsZero() {
		e.At = m.now()
	}
	if e.Component == "" {
		e.Component = "ui"
	}
	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.capacity {
		m.entries = m.entries[:m.capacity]
	}
	m.refresh()
	m.viewport.GotoTop()
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(m.theme.Clock.Render("Nothing yet. Pick a day to start."))
		return
	}
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = m.line(e)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// line renders "15:04:05 month SelectionChangeMsg state:"open" ...".
func (m *Model) line(e Entry) string {
	text := e.Event
	if e.Detail != "" {
		text += " " + e.Detail
	}
	prefix := e.At.Format("15:04:05") + " " + e.Component + " "
	if room := m.viewport.Width - len([]rune(prefix)); room > 0 {
		text = truncate.StringWithTail(text, uint(room), "…")
	}
	style := m.theme.Event
	if e.Warn {
		style = m.theme.Warn
	}
	return m.theme.Clock.Render(e.At.Format("15:04:05")) + " " +
		m.theme.Component.Render(e.Component) + " " +
		style.Render(text)
}
