// Package month hosts the month container: it owns the selection state and
// the reminder book, caches the month grid, and renders the editor overlay
// above the week rows.
package month

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
	"tableflip.dev/remcal/pkg/selection"
	"tableflip.dev/remcal/pkg/tui/components/day"
	"tableflip.dev/remcal/pkg/tui/components/editor"
	"tableflip.dev/remcal/pkg/tui/components/header"
	"tableflip.dev/remcal/pkg/tui/components/week"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/theme"
	"tableflip.dev/remcal/pkg/tui/ui/overlay"
)

const headerHeight = 2

// SelectionState is either Closed (Open false) or Open on Active.
type SelectionState struct {
	Active calendar.Date
	Open   bool
}

func (s SelectionState) String() string {
	if !s.Open {
		return "closed"
	}
	return "open(" + s.Active.String() + ")"
}

// Options configure a container.
type Options struct {
	ID           events.ComponentID
	Today        calendar.Date
	DefaultColor string
	Logger       *slog.Logger
	Theme        theme.Theme
	// Book is shared with the caller when set; otherwise the container keeps
	// its own.
	Book *reminder.Book
}

// Model is the month container.
type Model struct {
	id   events.ComponentID
	opts Options
	log  *slog.Logger

	grid  calendar.Grid
	ch    *selection.Channel
	owner *selection.Owner
	sub   selection.Subscription
	book  *reminder.Book

	header *header.Model
	weeks  []*week.Model

	state       SelectionState
	record      reminder.Record
	editor      *editor.Model
	transitions int

	focusRow int
	focusCol int

	width  int
	height int
	cellW  int
	cellH  int

	pending []tea.Cmd
}

// New builds a container for the month containing ref. An invalid ref fails
// with calendar.ErrInvalidDate before anything is mounted.
func New(ref calendar.Date, opts Options) (*Model, error) {
	grid, err := calendar.ComputeMonthGrid(ref)
	if err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	if opts.ID == "" {
		opts.ID = "month"
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	book := opts.Book
	if book == nil {
		book = reminder.NewBook()
	}

	m := &Model{
		id:    opts.ID,
		opts:  opts,
		log:   log.With("component", string(opts.ID)),
		grid:  grid,
		ch:    selection.New(log),
		book:  book,
		cellW: 10,
		cellH: 5,
	}
	owner, err := m.ch.Bind(m.handleRequest)
	if err != nil {
		return nil, fmt.Errorf("month: bind selection: %w", err)
	}
	m.owner = owner
	m.sub = m.ch.Subscribe(func(selection.Transition) { m.transitions++ })
	m.header = header.New(grid, opts.Theme.Header)
	m.mountWeeks()
	m.focusDefault()
	return m, nil
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Grid returns the cached month grid.
func (m *Model) Grid() calendar.Grid { return m.grid }

// Channel exposes the read-only capability handed to the cells.
func (m *Model) Channel() selection.Reader { return m.ch }

// State returns the current selection state.
func (m *Model) State() SelectionState { return m.state }

// Transitions counts committed selection transitions.
func (m *Model) Transitions() int { return m.transitions }

// Record returns the record shown in the editor. ok is false when closed.
func (m *Model) Record() (reminder.Record, bool) {
	if !m.state.Open {
		return reminder.Record{}, false
	}
	return m.record, true
}

// Editing reports whether the editor overlay is open.
func (m *Model) Editing() bool { return m.editor != nil }

// Book returns the container's reminder book.
func (m *Model) Book() *reminder.Book { return m.book }

// Weeks returns the mounted week rows.
func (m *Model) Weeks() []*week.Model { return m.weeks }

// Put stores r when its day belongs to the displayed month.
func (m *Model) Put(r reminder.Record) error {
	if err := r.Day.Validate(); err != nil {
		return fmt.Errorf("month: put %q: %w", r.ID, err)
	}
	if !m.grid.Contains(r.Day) {
		return fmt.Errorf("month: put %q: %s is outside %s", r.ID, r.Day, m.grid.Title())
	}
	if r.ID == "" {
		fresh := reminder.NewDefault(r.Day, r.Color)
		r.ID = fresh.ID
	}
	m.book.Put(r)
	m.refreshThumbnails(r.Day)
	return nil
}

// SetReferenceDate switches to the month containing ref. Nothing changes when
// ref is in the month already shown.
func (m *Model) SetReferenceDate(ref calendar.Date) error {
	grid, err := calendar.ComputeMonthGrid(ref)
	if err != nil {
		return fmt.Errorf("month: %w", err)
	}
	if grid.Year == m.grid.Year && grid.Month == m.grid.Month {
		return nil
	}
	m.closeEditor()
	m.unmountWeeks()
	m.grid = grid
	m.header.SetTitle(grid.Title())
	m.mountWeeks()
	m.focusDefault()
	m.layout()
	m.queue(func() tea.Msg {
		return events.MonthChangeMsg{Component: m.id, Month: grid.Reference()}
	})
	return nil
}

// Close unmounts every view and releases the owner binding.
func (m *Model) Close() {
	m.closeEditor()
	m.pending = nil
	m.unmountWeeks()
	if m.sub != nil {
		m.sub.Unsubscribe()
		m.sub = nil
	}
	m.owner.Release()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes input to the editor when open and to the cells otherwise.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.editor != nil {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			m.queue(cmd)
			break
		}
		switch msg.String() {
		case "enter", " ":
			if c := m.FocusedDay(); c != nil {
				m.activate(c)
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case events.FieldChangedMsg:
		m.applyField(msg)
	case events.EditorCloseMsg:
		if m.state.Open && msg.RecordID == m.record.ID {
			m.closeEditor()
		}
	default:
		if m.editor != nil {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			m.queue(cmd)
		}
	}
	return m, m.Flush()
}

// CloseEditor dismisses the editor if it is open.
func (m *Model) CloseEditor() tea.Cmd {
	m.closeEditor()
	return m.Flush()
}

// handleRequest is the owner sink. Requests for padding days, days outside
// the grid, or the day already open leave the state unchanged.
func (m *Model) handleRequest(d calendar.Date) {
	cell, _, _, ok := m.grid.Lookup(d)
	switch {
	case !ok || !cell.InMonth:
		m.log.Debug("activation rejected", "day", d, "reason", "outside month")
		return
	case m.state.Open && m.state.Active.Equal(d):
		m.log.Debug("activation rejected", "day", d, "reason", "already open")
		return
	}

	prev := m.state
	m.state = SelectionState{Active: d, Open: true}
	if r, found := m.book.First(d); found {
		m.record = r
	} else {
		m.log.Debug("no reminder for day, using default", "day", d)
		m.record = reminder.NewDefault(d, m.opts.DefaultColor)
	}
	m.editor = editor.New(m.record, m.opts.Theme.Modal)
	m.sizeEditor()
	m.owner.Activate(d)

	change := events.SelectionChangeMsg{Component: m.id, Open: true, Day: d, Record: m.record}
	if prev.Open {
		p := prev.Active
		change.Previous = &p
	}
	m.log.Info("selection changed", "from", prev, "to", m.state)
	m.queue(events.SelectionChangeCmd(change), m.editor.Init())
}

func (m *Model) closeEditor() {
	if !m.state.Open {
		return
	}
	prev := m.state.Active
	m.state = SelectionState{}
	m.editor = nil
	m.owner.Clear()
	m.log.Info("selection changed", "from", "open("+prev.String()+")", "to", m.state)
	m.queue(events.SelectionChangeCmd(events.SelectionChangeMsg{
		Component: m.id,
		Previous:  &prev,
	}))
}

func (m *Model) applyField(msg events.FieldChangedMsg) {
	if !m.state.Open || msg.RecordID != m.record.ID {
		m.log.Debug("field change dropped", "record", msg.RecordID)
		return
	}
	updated, err := m.record.With(msg.Field, msg.Value)
	if err != nil {
		m.log.Warn("field change failed", "err", err)
		return
	}
	m.record = updated
	if updated.IsBlank() {
		m.book.Delete(updated.ID)
	} else {
		m.book.Put(updated)
	}
	m.refreshThumbnails(updated.Day)
}

func (m *Model) mountWeeks() {
	opts := day.Options{Today: m.opts.Today, Theme: m.opts.Theme.Day, Logger: m.log}
	m.weeks = make([]*week.Model, 0, len(m.grid.Weeks))
	for _, w := range m.grid.Weeks {
		wm := week.New(w, m.ch, opts)
		wm.Mount()
		m.weeks = append(m.weeks, wm)
	}
	for _, d := range m.grid.InMonthDays() {
		m.refreshThumbnails(d)
	}
}

func (m *Model) unmountWeeks() {
	for _, w := range m.weeks {
		w.Unmount()
	}
	m.weeks = nil
}

func (m *Model) refreshThumbnails(d calendar.Date) {
	if c := m.dayCell(d); c != nil {
		c.SetThumbnails(m.book.Thumbnails(d))
	}
}

func (m *Model) dayCell(d calendar.Date) *day.Model {
	_, row, col, ok := m.grid.Lookup(d)
	if !ok || row >= len(m.weeks) {
		return nil
	}
	return m.weeks[row].Day(col)
}

func (m *Model) queue(cmds ...tea.Cmd) {
	for _, c := range cmds {
		if c != nil {
			m.pending = append(m.pending, c)
		}
	}
}

// Flush returns the commands queued by state changes since the last call.
func (m *Model) Flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// SetSize lays the grid out to fill width x height.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	rows := max(len(m.weeks), 1)
	m.cellW = max(m.width/calendar.DaysPerWeek, 4)
	m.cellH = max((m.height-headerHeight)/rows, 3)
	m.header.SetCellWidth(m.cellW)
	for _, w := range m.weeks {
		w.SetSize(m.cellW, m.cellH)
	}
	m.sizeEditor()
}

func (m *Model) sizeEditor() {
	if m.editor == nil {
		return
	}
	w := 40
	if m.width > 0 {
		w = min(w, m.width-8)
	}
	m.editor.SetWidth(w)
}

// View renders the header, the week rows and, when open, the editor overlay.
func (m *Model) View() string {
	rows := make([]string, 0, len(m.weeks)+1)
	rows = append(rows, m.header.View())
	for _, w := range m.weeks {
		rows = append(rows, w.View())
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if m.editor == nil {
		return grid
	}
	width, height := m.canvas(grid)
	return overlay.Compose(grid, width, height, m.editor.View(), overlay.Centered())
}

func (m *Model) canvas(grid string) (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = lipgloss.Width(grid)
	}
	if height <= 0 {
		height = lipgloss.Height(grid)
	}
	return width, height
}
