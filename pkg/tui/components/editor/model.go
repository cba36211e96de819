// Package editor implements the reminder editor overlay. It edits a copy of a
// record and reports committed fields back to its host as events; it never
// writes to the host's state directly.
package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/remcal/pkg/reminder"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/theme"
)

// MaxFieldLength caps free-text fields.
const MaxFieldLength = 30

// TimeLayout is the accepted format for the time field.
const TimeLayout = "15:04"

var labels = map[reminder.Field]string{
	reminder.FieldMessage: "Message",
	reminder.FieldTime:    "Time",
	reminder.FieldCity:    "City",
	reminder.FieldColor:   "Color",
}

// Model is the reminder editor.
type Model struct {
	id     events.ComponentID
	record reminder.Record

	inputs []textinput.Model
	focus  int

	errMsg string
	width  int
	theme  theme.ModalTheme
}

// New opens an editor on a copy of r.
func New(r reminder.Record, th theme.ModalTheme) *Model {
	m := &Model{
		id:     events.ComponentID("editor-" + r.Day.String()),
		record: r,
		theme:  th,
		width:  40,
	}
	for _, f := range reminder.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = MaxFieldLength
		switch f {
		case reminder.FieldTime:
			in.Placeholder = "HH:MM"
			in.CharLimit = len(TimeLayout)
		case reminder.FieldMessage:
			in.Placeholder = "Message"
		case reminder.FieldCity:
			in.Placeholder = "City"
		case reminder.FieldColor:
			in.Placeholder = reminder.DefaultColor
		}
		v, _ := r.Get(f)
		in.SetValue(v)
		m.inputs = append(m.inputs, in)
	}
	m.inputs[0].Focus()
	m.SetWidth(m.width)
	return m
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Record returns the editor's copy including committed edits.
func (m *Model) Record() reminder.Record { return m.record }

// Field returns the field that currently has focus.
func (m *Model) Field() reminder.Field { return reminder.Fields[m.focus] }

// Err returns the last validation message, if any.
func (m *Model) Err() string { return m.errMsg }

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// SetWidth sets the editor's content width.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 20)
	for i := range m.inputs {
		m.inputs[i].Width = m.width - 10
	}
}

// Update handles navigation and forwards typing to the focused input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			closeCmd := events.EditorCloseCmd(m.id, m.record.ID)
			if cmd := m.commit(); cmd != nil {
				return m, tea.Sequence(cmd, closeCmd)
			}
			return m, closeCmd
		case "tab", "down", "enter":
			return m, tea.Batch(m.commit(), m.move(1))
		case "shift+tab", "up":
			return m, tea.Batch(m.commit(), m.move(-1))
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// Commit applies the focused input right away and returns the resulting
// change, if any. Hosts use it when the editor is about to be replaced.
func (m *Model) Commit() (events.FieldChangedMsg, bool) {
	cmd := m.commit()
	if cmd == nil {
		return events.FieldChangedMsg{}, false
	}
	change, ok := cmd().(events.FieldChangedMsg)
	return change, ok
}

// commit validates the focused input and, when its value changed, applies it
// to the local copy and reports it to the host.
func (m *Model) commit() tea.Cmd {
	field := reminder.Fields[m.focus]
	value := strings.TrimSpace(m.inputs[m.focus].Value())
	current, _ := m.record.Get(field)

	normalized, err := Normalize(field, value)
	if err != nil {
		m.errMsg = err.Error()
		m.inputs[m.focus].SetValue(current)
		return nil
	}
	m.errMsg = ""
	m.inputs[m.focus].SetValue(normalized)
	if normalized == current {
		return nil
	}
	updated, err := m.record.With(field, normalized)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.record = updated
	return events.FieldChangedCmd(m.id, m.record.ID, field, normalized)
}

// Normalize validates a raw field value and returns the value to store.
// An empty time resets to midnight and an empty color to the default.
func Normalize(field reminder.Field, value string) (string, error) {
	if len([]rune(value)) > MaxFieldLength {
		return "", fmt.Errorf("%s is limited to %d characters", labels[field], MaxFieldLength)
	}
	switch field {
	case reminder.FieldTime:
		if value == "" {
			return reminder.DefaultTime, nil
		}
		t, err := time.Parse(TimeLayout, value)
		if err != nil {
			return "", fmt.Errorf("time must look like %s", TimeLayout)
		}
		return t.Format(TimeLayout), nil
	case reminder.FieldColor:
		if value == "" {
			return reminder.DefaultColor, nil
		}
	}
	return value, nil
}

// View renders the editor frame.
func (m *Model) View() string {
	title := m.theme.Title.Render(fmt.Sprintf("Day: %s %d", m.record.Day.Month, m.record.Day.Day))
	lines := []string{title, ""}
	for i, f := range reminder.Fields {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		label := m.theme.Label.Render(fmt.Sprintf("%-8s", labels[f]+":"))
		lines = append(lines, marker+label+m.inputs[i].View())
	}
	if m.errMsg != "" {
		lines = append(lines, "", m.theme.Error.Render(wordwrap.String(m.errMsg, m.width)))
	}
	lines = append(lines, "", m.theme.Label.Render("tab next · shift+tab prev · esc close"))
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.Frame.Render(m.theme.Body.Width(m.width).Render(body))
}
