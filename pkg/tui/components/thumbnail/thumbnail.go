// Package thumbnail renders the compact reminder chips shown inside day cells.
package thumbnail

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/remcal/pkg/reminder"
)

// named maps the CSS-ish color names reminders carry to hex colors.
var named = map[string]string{
	"white":  "#ffffff",
	"black":  "#000000",
	"red":    "#ff5f5f",
	"green":  "#5fd75f",
	"yellow": "#ffff5f",
	"blue":   "#5f87ff",
	"purple": "#af5fff",
	"cyan":   "#5fffff",
	"grey":   "#808080",
	"gray":   "#808080",
	"orange": "#ff8700",
	"pink":   "#ffafd7",
}

// Color resolves a reminder color to a Lip Gloss color. Unknown names pass
// through unchanged so hex values and ANSI indexes work as-is.
func Color(name string) lipgloss.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = reminder.DefaultColor
	}
	if c, ok := named[key]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(name)
}

// Render draws one thumbnail line of exactly width cells.
func Render(t reminder.Thumbnail, width int) string {
	if width <= 0 {
		return ""
	}
	text := strings.TrimSpace(t.Message)
	if text == "" {
		text = "•"
	}
	text = truncate.StringWithTail(text, uint(width), "…")

	bg := Color(t.Color)
	style := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Background(bg).
		Foreground(contrast(t.Color))
	return style.Render(text)
}

// RenderAll renders up to limit thumbnails, summarizing any overflow.
func RenderAll(ts []reminder.Thumbnail, width, limit int) []string {
	if limit <= 0 || len(ts) == 0 {
		return nil
	}
	lines := make([]string, 0, min(len(ts), limit))
	for i, t := range ts {
		if i == limit-1 && len(ts) > limit {
			more := lipgloss.NewStyle().Faint(true).Width(width).MaxWidth(width)
			lines = append(lines, more.Render(truncate.String("+"+strconv.Itoa(len(ts)-i)+" more", uint(width))))
			break
		}
		lines = append(lines, Render(t, width))
	}
	return lines
}

// contrast picks black or white text for the given background. Colors that
// are not hex (ANSI indexes) get white text.
func contrast(name string) lipgloss.Color {
	c, err := colorful.Hex(string(Color(name)))
	if err != nil {
		return lipgloss.Color("15")
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return lipgloss.Color("0")
	}
	return lipgloss.Color("15")
}
