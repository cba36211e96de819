// Package app hosts the root Bubble Tea model for the reminder calendar.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
	"tableflip.dev/remcal/pkg/tui/components/eventlog"
	"tableflip.dev/remcal/pkg/tui/components/month"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/theme"
)

const (
	footerHeight = 1
	logHeight    = 8
)

// Options configure the root model.
type Options struct {
	// Reference selects the month shown first. Defaults to Today.
	Reference    calendar.Date
	Today        calendar.Date
	DefaultColor string
	Logger       *slog.Logger
	Theme        theme.Theme
	Mouse        bool
	// Book seeds the reminders shown in the grid. Optional.
	Book *reminder.Book
}

// Model is the root Bubble Tea model.
type Model struct {
	month  *month.Model
	events *eventlog.Model
	keys   KeyMap
	help   help.Model
	theme  theme.Theme
	log    *slog.Logger
	today  calendar.Date

	showLog bool
	width   int
	height  int
}

// New builds the root model. An invalid reference date fails before any
// rendering happens.
func New(opts Options) (*Model, error) {
	if opts.Today.IsZero() {
		opts.Today = calendar.Today()
	}
	if opts.Reference.IsZero() {
		opts.Reference = opts.Today
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	mm, err := month.New(opts.Reference, month.Options{
		ID:           "month",
		Today:        opts.Today,
		DefaultColor: opts.DefaultColor,
		Logger:       log,
		Theme:        opts.Theme,
		Book:         opts.Book,
	})
	if err != nil {
		return nil, err
	}
	h := help.New()
	h.Styles.ShortKey = opts.Theme.Footer.Help
	h.Styles.ShortDesc = opts.Theme.Footer.Help
	return &Model{
		month:  mm,
		events: eventlog.New(200, opts.Theme.Log),
		keys:   DefaultKeyMap(),
		help:   h,
		theme:  opts.Theme,
		log:    log.With("component", "app"),
		today:  opts.Today,
	}, nil
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.month.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	_, err = tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

// Month exposes the month container.
func (m *Model) Month() *month.Model { return m.month }

// Events exposes the event log panel.
func (m *Model) Events() *eventlog.Model { return m.events }

// ShowingLog reports whether the event log panel is visible.
func (m *Model) ShowingLog() bool { return m.showLog }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.month.Init() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.month.Editing() {
			_, cmd := m.month.Update(msg)
			return m, cmd
		}
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.showLog && tea.MouseEvent(msg).IsWheel() {
			_, cmd := m.events.Update(msg)
			return m, cmd
		}
	}

	_, cmd := m.month.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.month.MoveFocus(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.month.MoveFocus(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.month.MoveFocus(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.month.MoveFocus(1, 0)
	case key.Matches(msg, m.keys.Activate):
		return m.month.ActivateFocused()
	case key.Matches(msg, m.keys.Next):
		return m.shiftMonth(1)
	case key.Matches(msg, m.keys.Prev):
		return m.shiftMonth(-1)
	case key.Matches(msg, m.keys.Today):
		if err := m.month.SetReferenceDate(m.today); err != nil {
			m.log.Error("jump to today", "err", err)
			return nil
		}
		m.month.FocusDay(m.today)
		return m.month.Flush()
	case key.Matches(msg, m.keys.Log):
		m.showLog = !m.showLog
		m.layout()
	case key.Matches(msg, m.keys.LogPage):
		if m.showLog {
			_, cmd := m.events.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model) shiftMonth(delta int) tea.Cmd {
	ref := m.month.Grid().Reference().AddMonths(delta)
	if err := m.month.SetReferenceDate(ref); err != nil {
		m.log.Warn("change month", "err", err)
		return events.DebugCmd("app", "month", err.Error())
	}
	return m.month.Flush()
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	gridHeight := m.height - footerHeight
	if m.showLog {
		h := min(logHeight, max(gridHeight/3, 3))
		m.events.SetSize(m.width, h)
		gridHeight -= h
	}
	m.help.Width = m.width
	m.month.SetSize(m.width, max(gridHeight, 3))
}

// noteEvent records component events in the log panel and the diagnostic log.
func (m *Model) noteEvent(msg tea.Msg) {
	d, ok := msg.(events.Describer)
	if !ok {
		return
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", msg), "events.")
	warn := false
	source := "ui"
	switch v := msg.(type) {
	case events.DebugMsg:
		warn = true
		source = string(v.Component)
	case events.SelectionChangeMsg:
		source = string(v.Component)
	case events.FieldChangedMsg:
		source = string(v.Component)
	case events.EditorCloseMsg:
		source = string(v.Component)
	case events.MonthChangeMsg:
		source = string(v.Component)
	}
	m.log.Debug("event", "type", name, "source", source, "detail", d.Describe())
	m.events.Append(eventlog.Entry{Component: source, Event: name, Detail: d.Describe(), Warn: warn})
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{m.month.View()}
	if m.showLog {
		parts = append(parts, m.events.View())
	}
	parts = append(parts, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) footer() string {
	status := m.theme.Footer.Status.Render(m.month.State().String())
	helpView := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(status)
	if gap < 1 {
		return helpView
	}
	return helpView + strings.Repeat(" ", gap) + status
}
