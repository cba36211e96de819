package reminder

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"tableflip.dev/remcal/pkg/calendar"
)

const maxText = 30

// ReadICS decodes every VEVENT in r into a Record. Events without a start
// are skipped. Timed events are placed on their local start day; all-day
// events get DefaultTime. color is used when an event has no COLOR.
func ReadICS(r io.Reader, loc *time.Location, color string) ([]Record, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultColor
	}
	dec := ical.NewDecoder(r)
	var out []Record
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reminder: decoding ics: %w", err)
		}
		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			rec, ok := recordFromEvent(comp, loc, color)
			if ok {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func recordFromEvent(comp *ical.Component, loc *time.Location, color string) (Record, bool) {
	start := comp.Props.Get(ical.PropDateTimeStart)
	if start == nil {
		return Record{}, false
	}
	t, err := start.DateTime(loc)
	if err != nil {
		return Record{}, false
	}

	rec := Record{
		ID:    uuid.NewString(),
		Color: color,
		Day:   calendar.FromTime(t.In(loc)),
		Time:  t.In(loc).Format("15:04"),
	}
	if start.Params.Get(ical.ParamValue) == string(ical.ValueDate) {
		rec.Day = calendar.FromTime(t)
		rec.Time = DefaultTime
	}
	if p := comp.Props.Get(ical.PropUID); p != nil && p.Value != "" {
		rec.ID = p.Value
	}
	if p := comp.Props.Get(ical.PropSummary); p != nil {
		rec.Message = clip(p.Value)
	}
	if p := comp.Props.Get(ical.PropLocation); p != nil {
		rec.City = clip(p.Value)
	}
	if p := comp.Props.Get("COLOR"); p != nil && p.Value != "" {
		rec.Color = strings.ToLower(p.Value)
	}
	return rec, true
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxText {
		return string(r[:maxText])
	}
	return s
}
