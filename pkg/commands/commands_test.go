package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/remcal/pkg/calendar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGridText(t *testing.T) {
	out, err := run(t, "grid", "--on", "2021-3-10")
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if !strings.Contains(out, "March 2021") || !strings.Contains(out, "28  1  2  3  4  5  6") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestGridTable(t *testing.T) {
	out, err := run(t, "grid", "--on", "2015-2-1", "--table")
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	// February 2015 fills exactly four rows.
	if got := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; got != 5 {
		t.Fatalf("expected header and 4 weeks, got %d lines:\n%s", got, out)
	}
}

func TestGridJSON(t *testing.T) {
	out, err := run(t, "grid", "--on", "2021-03-10", "--json")
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if !strings.Contains(out, `"title": "March 2021"`) {
		t.Fatalf("unexpected json:\n%s", out)
	}
}

func TestGridJSONError(t *testing.T) {
	out, err := run(t, "grid", "--on", "2021-2-30", "--json")
	if err != nil {
		t.Fatalf("expected error to be rendered, got %v", err)
	}
	if !strings.Contains(out, `{"error":`) {
		t.Fatalf("expected json error, got %q", out)
	}
}

func TestGridReadsICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rent.ics")
	ics := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//remcal//test//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:rent\r\nDTSTAMP:20210301T000000Z\r\n" +
		"DTSTART;VALUE=DATE:20210301\r\nSUMMARY:Rent\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	if err := os.WriteFile(path, []byte(ics), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "grid", "--on", "2021-3-10", "--ics", path)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if !strings.Contains(out, "2021-03-01 00:00 Rent") {
		t.Fatalf("expected imported reminder, got:\n%s", out)
	}

	if _, err := run(t, "grid", "--ics", filepath.Join(t.TempDir(), "missing.ics")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestGridInvalidDate(t *testing.T) {
	_, err := run(t, "grid", "--on", "not-a-date")
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUIRequiresTerminal(t *testing.T) {
	_, err := run(t, "ui", "--on", "2021-3-10")
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	_, err = run(t, "ui", "--on", "2021-2-30")
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("expected invalid date before terminal check, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("expected dev version, got %q", out)
	}
}
