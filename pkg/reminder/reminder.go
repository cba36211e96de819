// Package reminder defines the reminder records a month container owns.
package reminder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/remcal/pkg/calendar"
)

const (
	// DefaultTime is used for records materialized for an empty day.
	DefaultTime = "00:00"
	// DefaultColor is the fallback background for new records.
	DefaultColor = "white"
)

// Field enumerates the editable parts of a Record.
type Field string

const (
	FieldMessage Field = "message"
	FieldTime    Field = "time"
	FieldCity    Field = "city"
	FieldColor   Field = "color"
)

// Fields lists the editable fields in editor order.
var Fields = []Field{FieldMessage, FieldTime, FieldCity, FieldColor}

// Record is a single reminder pinned to a calendar day.
type Record struct {
	ID      string        `json:"id"`
	Color   string        `json:"color"`
	Day     calendar.Date `json:"day"`
	Time    string        `json:"time"`
	City    string        `json:"city"`
	Message string        `json:"message"`
}

// NewDefault materializes an empty record for day.
func NewDefault(day calendar.Date, color string) Record {
	if strings.TrimSpace(color) == "" {
		color = DefaultColor
	}
	return Record{
		ID:    uuid.NewString(),
		Color: color,
		Day:   day,
		Time:  DefaultTime,
	}
}

// IsBlank reports whether the record carries no user content.
func (r Record) IsBlank() bool {
	return r.Message == "" && r.City == "" && r.Time == DefaultTime
}

// Get returns the value of f.
func (r Record) Get(f Field) (string, error) {
	switch f {
	case FieldMessage:
		return r.Message, nil
	case FieldTime:
		return r.Time, nil
	case FieldCity:
		return r.City, nil
	case FieldColor:
		return r.Color, nil
	}
	return "", fmt.Errorf("reminder: unknown field %q", f)
}

// With returns a copy of r with f set to value.
func (r Record) With(f Field, value string) (Record, error) {
	switch f {
	case FieldMessage:
		r.Message = value
	case FieldTime:
		r.Time = value
	case FieldCity:
		r.City = value
	case FieldColor:
		r.Color = value
	default:
		return r, fmt.Errorf("reminder: unknown field %q", f)
	}
	return r, nil
}

// Thumbnail is the read-only projection handed to the thumbnail renderer.
type Thumbnail struct {
	ID      string
	Color   string
	Message string
}

// Thumbnail projects r for display.
func (r Record) Thumbnail() Thumbnail {
	return Thumbnail{ID: r.ID, Color: r.Color, Message: r.Message}
}
