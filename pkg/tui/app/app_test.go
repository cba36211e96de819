package app

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/tui/events"
	"tableflip.dev/remcal/pkg/tui/theme"
)

func newApp(t *testing.T) *Model {
	t.Helper()
	today := calendar.MustDate(2021, time.March, 10)
	m, err := New(Options{Today: today, Theme: theme.Default()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(m.Month().Close)
	m.Update(tea.WindowSizeMsg{Width: 84, Height: 40})
	return m
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// drain feeds the messages produced by cmd back into the model, skipping
// timers so tests stay fast.
func drain(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(m, c)
		}
		return
	}
	cmdsType := reflect.TypeOf([]tea.Cmd(nil))
	if v := reflect.ValueOf(msg); v.IsValid() && v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdsType) {
		for _, c := range v.Convert(cmdsType).Interface().([]tea.Cmd) {
			drain(m, c)
		}
		return
	}
	switch msg.(type) {
	case events.SelectionChangeMsg, events.EditorCloseMsg, events.FieldChangedMsg, events.MonthChangeMsg, events.DebugMsg:
		_, next := m.Update(msg)
		drain(m, next)
	}
}

func TestNewRejectsInvalidReference(t *testing.T) {
	_, err := New(Options{Reference: calendar.Date{Year: 2021, Month: time.April, Day: 31}})
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFocusStartsOnToday(t *testing.T) {
	m := newApp(t)
	if got := m.Month().FocusedDay().Day().Date; !got.Equal(calendar.MustDate(2021, time.March, 10)) {
		t.Fatalf("expected focus on today, got %s", got)
	}
}

func TestKeyboardOpensEditorAndLogsEvents(t *testing.T) {
	m := newApp(t)
	press(m, "l")
	drain(m, press(m, "enter"))

	state := m.Month().State()
	if !state.Open || !state.Active.Equal(calendar.MustDate(2021, time.March, 11)) {
		t.Fatalf("expected open(2021-03-11), got %s", state)
	}

	var logged bool
	for _, e := range m.Events().Entries() {
		if e.Event == "SelectionChangeMsg" && e.Component == "month" {
			logged = true
		}
	}
	if !logged {
		t.Fatalf("expected selection change in the event log, got %+v", m.Events().Entries())
	}

	// Navigation keys go to the editor while it is open.
	press(m, "n")
	if got := m.Month().Grid().Title(); got != "March 2021" {
		t.Fatalf("expected month to stay put while editing, got %q", got)
	}

	drain(m, press(m, "esc"))
	if m.Month().State().Open {
		t.Fatalf("expected esc to close the editor")
	}
}

func TestPaddingDayRejectionIsLogged(t *testing.T) {
	m := newApp(t)
	// From March 10: up to March 3, then left to Sunday February 28.
	press(m, "k")
	for i := 0; i < 3; i++ {
		press(m, "h")
	}
	if got := m.Month().FocusedDay().Day().Date; !got.Equal(calendar.MustDate(2021, time.February, 28)) {
		t.Fatalf("expected focus on 2021-02-28, got %s", got)
	}
	drain(m, press(m, "enter"))

	if m.Month().State().Open {
		t.Fatalf("expected padding day to leave the editor closed")
	}
	var warned bool
	for _, e := range m.Events().Entries() {
		if e.Event == "DebugMsg" && e.Warn && strings.Contains(e.Detail, "outside month") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected the rejection in the event log, got %+v", m.Events().Entries())
	}
}

func TestEventLogScrollsWhenShown(t *testing.T) {
	m := newApp(t)
	press(m, "?")
	for i := 0; i < 30; i++ {
		m.Update(events.DebugMsg{Component: "test", Context: "fill", Detail: "x"})
	}
	if !m.Events().AtTop() {
		t.Fatalf("expected the newest entry in view")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Events().AtTop() {
		t.Fatalf("expected pgdown to scroll the event log")
	}

	press(m, "?")
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Events().AtTop() {
		t.Fatalf("expected the hidden log to ignore pgup")
	}
}

func TestMonthNavigation(t *testing.T) {
	m := newApp(t)
	drain(m, press(m, "n"))
	if got := m.Month().Grid().Title(); got != "April 2021" {
		t.Fatalf("expected April 2021, got %q", got)
	}
	drain(m, press(m, "p"))
	drain(m, press(m, "p"))
	if got := m.Month().Grid().Title(); got != "February 2021" {
		t.Fatalf("expected February 2021, got %q", got)
	}
	drain(m, press(m, "t"))
	if got := m.Month().Grid().Title(); got != "March 2021" {
		t.Fatalf("expected March 2021 after jumping to today, got %q", got)
	}
}

func TestToggleEventLog(t *testing.T) {
	m := newApp(t)
	press(m, "?")
	if !m.ShowingLog() {
		t.Fatalf("expected event log to show")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Events") {
		t.Fatalf("expected event log in view")
	}
	press(m, "?")
	if m.ShowingLog() {
		t.Fatalf("expected event log to hide")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newApp(t)
		cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := newApp(t)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "March 2021") {
		t.Fatalf("expected month title in view")
	}
	if !strings.Contains(view, "closed") {
		t.Fatalf("expected closed status in footer")
	}
}
