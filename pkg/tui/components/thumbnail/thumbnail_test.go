package thumbnail

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/remcal/pkg/reminder"
)

func TestRenderFitsWidth(t *testing.T) {
	thumb := reminder.Thumbnail{ID: "1", Color: "blue", Message: "pick up the dry cleaning"}
	out := Render(thumb, 8)
	if w := ansi.StringWidth(out); w != 8 {
		t.Fatalf("width = %d, want 8 (%q)", w, ansi.Strip(out))
	}
	if !strings.HasPrefix(ansi.Strip(out), "pick up") {
		t.Fatalf("unexpected text %q", ansi.Strip(out))
	}
}

func TestRenderEmptyMessage(t *testing.T) {
	out := ansi.Strip(Render(reminder.Thumbnail{ID: "1"}, 4))
	if !strings.HasPrefix(out, "•") {
		t.Fatalf("expected placeholder bullet, got %q", out)
	}
	if Render(reminder.Thumbnail{}, 0) != "" {
		t.Fatalf("expected empty render for zero width")
	}
}

func TestRenderAllSummarizesOverflow(t *testing.T) {
	ts := []reminder.Thumbnail{
		{ID: "1", Message: "a"},
		{ID: "2", Message: "b"},
		{ID: "3", Message: "c"},
		{ID: "4", Message: "d"},
	}
	lines := RenderAll(ts, 10, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(ansi.Strip(lines[1])); got != "+3 more" {
		t.Fatalf("overflow line = %q", got)
	}
	if got := RenderAll(ts[:2], 10, 2); len(got) != 2 || strings.Contains(ansi.Strip(got[1]), "more") {
		t.Fatalf("unexpected overflow summary for exact fit: %q", got)
	}
}

func TestColorResolvesNames(t *testing.T) {
	if Color("White") != "#ffffff" || Color("") != "#ffffff" {
		t.Fatalf("white should map to #ffffff")
	}
	if Color("#ff8800") != "#ff8800" {
		t.Fatalf("hex colors should pass through")
	}
}

func TestContrastFollowsLightness(t *testing.T) {
	cases := map[string]lipgloss.Color{
		"white":   "0",
		"yellow":  "0",
		"black":   "15",
		"#000080": "15",
		"21":      "15",
	}
	for in, want := range cases {
		if got := contrast(in); got != want {
			t.Fatalf("contrast(%q) = %q, want %q", in, got, want)
		}
	}
}
