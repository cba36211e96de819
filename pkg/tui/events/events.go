package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Describer is implemented by messages that render themselves for logs.
type Describer interface {
	Describe() string
}

// SelectionChangeMsg announces a committed change of the active day.
type SelectionChangeMsg struct {
	Component ComponentID
	Open      bool
	Day       calendar.Date
	Previous  *calendar.Date
	Record    reminder.Record
}

// Describe renders the change for logs.
func (m SelectionChangeMsg) Describe() string {
	prev := ""
	if m.Previous != nil {
		prev = m.Previous.String()
	}
	state := "closed"
	if m.Open {
		state = "open"
	}
	return fmt.Sprintf(`state:%q day:%q prev:%q`, state, m.Day, prev)
}

// SelectionChangeCmd wraps SelectionChangeMsg in a tea.Cmd.
func SelectionChangeCmd(msg SelectionChangeMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// FieldChangedMsg is emitted by the reminder editor when a field is committed.
type FieldChangedMsg struct {
	Component ComponentID
	RecordID  string
	Field     reminder.Field
	Value     string
}

// Describe renders the edit for logs.
func (m FieldChangedMsg) Describe() string {
	return fmt.Sprintf(`record:%q field:%q value:%q`, m.RecordID, m.Field, m.Value)
}

// FieldChangedCmd wraps FieldChangedMsg in a tea.Cmd.
func FieldChangedCmd(component ComponentID, recordID string, field reminder.Field, value string) tea.Cmd {
	return func() tea.Msg {
		return FieldChangedMsg{
			Component: component,
			RecordID:  recordID,
			Field:     field,
			Value:     value,
		}
	}
}

// EditorCloseMsg is emitted when the reminder editor is dismissed.
type EditorCloseMsg struct {
	Component ComponentID
	RecordID  string
}

// Describe renders the close for logs.
func (m EditorCloseMsg) Describe() string {
	return fmt.Sprintf(`component:%q record:%q`, m.Component, m.RecordID)
}

// EditorCloseCmd wraps EditorCloseMsg in a tea.Cmd.
func EditorCloseCmd(component ComponentID, recordID string) tea.Cmd {
	return func() tea.Msg {
		return EditorCloseMsg{Component: component, RecordID: recordID}
	}
}

// MonthChangeMsg announces that the container now shows a different month.
type MonthChangeMsg struct {
	Component ComponentID
	Month     calendar.Date
}

// Describe renders the month change for logs.
func (m MonthChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q month:"%s %d"`, m.Component, m.Month.Month, m.Month.Year)
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}
