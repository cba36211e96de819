package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{in: "2021-03-01", want: MustDate(2021, time.March, 1)},
		{in: "2021-3-1", want: MustDate(2021, time.March, 1)},
		{in: " 2024-02-29 ", want: MustDate(2024, time.February, 29)},
		{in: "12/25", want: MustDate(time.Now().Year(), time.December, 25)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2021-02-30", "2021-13-01"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustDate(2021, time.February, 28)
	if got := d.AddDays(1); got != MustDate(2021, time.March, 1) {
		t.Fatalf("AddDays(1) = %s", got)
	}
	if got := MustDate(2021, time.January, 1).AddDays(-1); got != MustDate(2020, time.December, 31) {
		t.Fatalf("AddDays(-1) = %s", got)
	}
	if got := MustDate(2021, time.January, 31).AddMonths(1); got != MustDate(2021, time.February, 1) {
		t.Fatalf("AddMonths(1) = %s", got)
	}
	if got := MustDate(2021, time.January, 15).AddMonths(-1); got != MustDate(2020, time.December, 1) {
		t.Fatalf("AddMonths(-1) = %s", got)
	}
	if got := MustDate(2024, time.February, 3).LastOfMonth(); got.Day != 29 {
		t.Fatalf("LastOfMonth = %s", got)
	}
	if got := MustDate(2021, time.March, 1).Weekday(); got != time.Monday {
		t.Fatalf("Weekday = %s", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustDate(2021, time.March, 9)
	b := MustDate(2021, time.March, 10)
	c := MustDate(2022, time.January, 1)
	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Fatalf("ordering of %s and %s is wrong", a, b)
	}
	if !b.Before(c) || c.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("ordering across years is wrong")
	}
}

func TestDateText(t *testing.T) {
	d := MustDate(2021, time.March, 1)
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "2021-03-01" {
		t.Fatalf("marshal = %s", b)
	}
	var back Date
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("unmarshal = %s", back)
	}
}
