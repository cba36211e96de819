// Package printers renders month grids for non-interactive output.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/reminder"
)

const width = len("28 29 30 31  1  2  3") // one week row

// GridPrinter writes a month grid to Out. When Book is set, days with
// reminders are highlighted and listed.
type GridPrinter struct {
	Out   io.Writer
	Today calendar.Date
	Book  *reminder.Book
}

func (gp *GridPrinter) out() io.Writer {
	if gp.Out == nil {
		return color.Output
	}
	return gp.Out
}

// Text prints a compact Sunday-first calendar.
func (gp *GridPrinter) Text(g calendar.Grid) {
	w := gp.out()

	title := color.New(color.Bold)
	head := color.New(color.Underline)
	pad := color.New(color.Faint)
	plain := color.New()
	today := color.New(color.Bold, color.FgHiWhite, color.BgBlue)
	busy := color.New(color.Bold, color.FgHiYellow)

	t := g.Title()
	mid := max((width-len(t))/2, 0)
	_, _ = title.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), t)

	names := make([]string, 0, calendar.DaysPerWeek)
	for _, wd := range weekdays {
		names = append(names, wd.String()[:2])
	}
	_, _ = head.Fprintln(w, strings.Join(names, " "))

	for _, week := range g.Weeks {
		for i, d := range week {
			p := plain
			switch {
			case !d.InMonth:
				p = pad
			case d.Date.Equal(gp.Today):
				p = today
			case gp.hasReminders(d.Date):
				p = busy
			}
			_, _ = p.Fprintf(w, "%2d", d.Date.Day)
			if i < calendar.DaysPerWeek-1 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprintln(w)
	}

	if gp.Book == nil {
		return
	}
	for _, d := range g.InMonthDays() {
		for _, r := range gp.Book.ForDay(d) {
			_, _ = fmt.Fprintf(w, "%s %s %s\n", d, r.Time, r.Message)
		}
	}
}

// Table prints one row per week with padding days in parentheses.
func (gp *GridPrinter) Table(g calendar.Grid) {
	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{"WEEK"}
	for _, wd := range weekdays {
		header = append(header, strings.ToUpper(wd.String()[:3]))
	}
	tbl.AddRow(header...)
	for i, week := range g.Weeks {
		row := []interface{}{i + 1}
		for _, d := range week {
			cell := fmt.Sprintf("%d", d.Date.Day)
			if !d.InMonth {
				cell = "(" + cell + ")"
			} else if n := gp.count(d.Date); n > 0 {
				cell = fmt.Sprintf("%s*%d", cell, n)
			}
			row = append(row, cell)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(gp.out(), tbl)
}

type jsonGrid struct {
	Title     string            `json:"title"`
	Year      int               `json:"year"`
	Month     string            `json:"month"`
	Weeks     []calendar.Week   `json:"weeks"`
	Reminders []reminder.Record `json:"reminders,omitempty"`
}

// JSON prints the grid as indented JSON.
func (gp *GridPrinter) JSON(g calendar.Grid) error {
	out := jsonGrid{
		Title: g.Title(),
		Year:  g.Year,
		Month: g.Month.String(),
		Weeks: g.Weeks,
	}
	if gp.Book != nil {
		for _, d := range g.InMonthDays() {
			out.Reminders = append(out.Reminders, gp.Book.ForDay(d)...)
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: %w", err)
	}
	_, err = fmt.Fprintln(gp.out(), string(b))
	return err
}

func (gp *GridPrinter) hasReminders(d calendar.Date) bool {
	return gp.count(d) > 0
}

func (gp *GridPrinter) count(d calendar.Date) int {
	if gp.Book == nil {
		return 0
	}
	return len(gp.Book.ForDay(d))
}

var weekdays = [calendar.DaysPerWeek]time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}
