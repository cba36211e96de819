package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Day    DayTheme
	Footer FooterTheme
	Modal  ModalTheme
	Log    LogTheme
}

// HeaderTheme styles the month title and weekday names.
type HeaderTheme struct {
	Title   lipgloss.Style
	Weekday lipgloss.Style
}

// DayTheme styles calendar cells.
type DayTheme struct {
	InMonth  lipgloss.Style
	OutMonth lipgloss.Style
	Number   lipgloss.Style
	Today    lipgloss.Style
	Focused  lipgloss.Style
	Open     lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles the centered reminder editor.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style
}

// LogTheme styles the event log panel. Rejected requests use Warn, the same
// accent the day cells use for focus.
type LogTheme struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Event     lipgloss.Style
	Warn      lipgloss.Style
	Clock     lipgloss.Style
	Component lipgloss.Style
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Default returns the built-in theme used across the UI. Colors adapt to the
// terminal background detected by Apply.
func Default() Theme {
	border := lipgloss.NormalBorder()
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("21")).
				Align(lipgloss.Center),
			Weekday: lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("21")).
				Align(lipgloss.Center),
		},
		Day: DayTheme{
			InMonth: lipgloss.NewStyle().
				Border(border).
				BorderForeground(ac("250", "245")),
			OutMonth: lipgloss.NewStyle().
				Border(border).
				BorderForeground(ac("253", "238")).
				Foreground(ac("248", "240")),
			Number: lipgloss.NewStyle().Bold(true),
			Today:  lipgloss.NewStyle().Underline(true),
			Focused: lipgloss.NewStyle().
				BorderForeground(lipgloss.Color("212")),
			Open: lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("63")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(ac("240", "245")),
			Status: lipgloss.NewStyle().Foreground(ac("241", "244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(ac("240", "245")),
			Body:  lipgloss.NewStyle(),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		Log: LogTheme{
			Frame: lipgloss.NewStyle().
				Border(border).
				BorderForeground(ac("250", "245")),
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("21")),
			Event:     lipgloss.NewStyle(),
			Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Clock:     lipgloss.NewStyle().Foreground(ac("240", "245")),
			Component: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		},
	}
}
