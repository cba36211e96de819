package calendar

import (
	"fmt"
	"time"
)

// DaysPerWeek is the fixed width of a week row.
const DaysPerWeek = 7

// Day describes a single cell of a month grid.
type Day struct {
	Date    Date `json:"date"`
	InMonth bool `json:"inMonth"`
}

// Week is a row of seven consecutive days, Sunday first.
type Week [DaysPerWeek]Day

// First returns the Sunday that opens the row.
func (w Week) First() Date { return w[0].Date }

// Last returns the Saturday that closes the row.
func (w Week) Last() Date { return w[DaysPerWeek-1].Date }

// Padding returns the number of leading and trailing out-of-month days.
func (w Week) Padding() (leading, trailing int) {
	for _, d := range w {
		if d.InMonth {
			break
		}
		leading++
	}
	if leading == DaysPerWeek {
		return leading, 0
	}
	for i := DaysPerWeek - 1; i >= 0 && !w[i].InMonth; i-- {
		trailing++
	}
	return leading, trailing
}

// Grid is the ordered set of week rows covering one month.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []Week     `json:"weeks"`
}

// ComputeMonthGrid partitions the month containing ref into week rows.
//
// The first row starts on the Sunday on or before the first of the month and
// every following cell is derived by whole-day arithmetic, so rows that cross
// month or year boundaries need no special casing.
func ComputeMonthGrid(ref Date) (Grid, error) {
	if err := ref.Validate(); err != nil {
		return Grid{}, err
	}

	first := ref.FirstOfMonth()
	offset := int(first.Weekday())
	total := offset + DaysIn(ref.Year, ref.Month)
	rows := (total + DaysPerWeek - 1) / DaysPerWeek

	grid := Grid{
		Year:  ref.Year,
		Month: ref.Month,
		Weeks: make([]Week, rows),
	}
	cursor := first.AddDays(-offset)
	for r := range grid.Weeks {
		for c := 0; c < DaysPerWeek; c++ {
			grid.Weeks[r][c] = Day{Date: cursor, InMonth: cursor.SameMonth(first)}
			cursor = cursor.AddDays(1)
		}
	}
	return grid, nil
}

// Title renders "March 2021".
func (g Grid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// Reference returns the first day of the grid's month.
func (g Grid) Reference() Date {
	return Date{Year: g.Year, Month: g.Month, Day: 1}
}

// Contains reports whether d belongs to the grid's month.
func (g Grid) Contains(d Date) bool {
	return d.Year == g.Year && d.Month == g.Month
}

// Lookup returns the cell for d and its row/column, if d is visible.
func (g Grid) Lookup(d Date) (Day, int, int, bool) {
	for r, w := range g.Weeks {
		if d.Before(w.First()) || d.After(w.Last()) {
			continue
		}
		for c, day := range w {
			if day.Date.Equal(d) {
				return day, r, c, true
			}
		}
	}
	return Day{}, 0, 0, false
}

// Days flattens the grid in display order.
func (g Grid) Days() []Day {
	out := make([]Day, 0, len(g.Weeks)*DaysPerWeek)
	for _, w := range g.Weeks {
		out = append(out, w[:]...)
	}
	return out
}

// InMonthDays returns only the days of the grid's own month.
func (g Grid) InMonthDays() []Date {
	out := make([]Date, 0, 31)
	for _, d := range g.Days() {
		if d.InMonth {
			out = append(out, d.Date)
		}
	}
	return out
}
