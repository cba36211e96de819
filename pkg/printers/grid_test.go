package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
)

func marchGrid(t *testing.T) calendar.Grid {
	t.Helper()
	g, err := calendar.ComputeMonthGrid(calendar.MustDate(2021, time.March, 10))
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func noColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestTextPrintsSundayFirstRows(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	gp := &GridPrinter{Out: &buf}
	gp.Text(marchGrid(t))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected title, header and 5 weeks, got %d lines:\n%s", len(lines), buf.String())
	}
	if strings.TrimSpace(lines[0]) != "March 2021" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if lines[2] != "28  1  2  3  4  5  6" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
	if lines[6] != "28 29 30 31  1  2  3" {
		t.Fatalf("unexpected last week %q", lines[6])
	}
}

func TestTextListsReminders(t *testing.T) {
	noColor(t)
	book := reminder.NewBook()
	r := reminder.NewDefault(calendar.MustDate(2021, time.March, 10), "")
	r.Time = "09:30"
	r.Message = "dentist"
	book.Put(r)

	var buf bytes.Buffer
	gp := &GridPrinter{Out: &buf, Book: book}
	gp.Text(marchGrid(t))
	if !strings.Contains(buf.String(), "2021-03-10 09:30 dentist") {
		t.Fatalf("expected reminder line, got:\n%s", buf.String())
	}
}

func TestTableMarksPadding(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	gp := &GridPrinter{Out: &buf}
	gp.Table(marchGrid(t))

	out := buf.String()
	if !strings.Contains(out, "WEEK") || !strings.Contains(out, "SUN") {
		t.Fatalf("expected header row, got:\n%s", out)
	}
	if !strings.Contains(out, "(28)") || !strings.Contains(out, "(3)") {
		t.Fatalf("expected padding days in parentheses, got:\n%s", out)
	}
	if got := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; got != 6 {
		t.Fatalf("expected 6 table rows, got %d", got)
	}
}

func TestJSONShape(t *testing.T) {
	var buf bytes.Buffer
	gp := &GridPrinter{Out: &buf}
	if err := gp.JSON(marchGrid(t)); err != nil {
		t.Fatalf("json: %v", err)
	}

	var got struct {
		Title string `json:"title"`
		Month string `json:"month"`
		Weeks [][]struct {
			Date    string `json:"date"`
			InMonth bool   `json:"inMonth"`
		} `json:"weeks"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Title != "March 2021" || got.Month != "March" {
		t.Fatalf("unexpected header %q %q", got.Title, got.Month)
	}
	if len(got.Weeks) != 5 || len(got.Weeks[0]) != 7 {
		t.Fatalf("unexpected shape %d weeks", len(got.Weeks))
	}
	if first := got.Weeks[0][0]; first.Date != "2021-02-28" || first.InMonth {
		t.Fatalf("unexpected first cell %+v", first)
	}
}
