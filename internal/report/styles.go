package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/solartime"
)

// Styles controls how tables are decorated. The zero value writes plain text.
type Styles struct {
	color bool

	Title  lipgloss.Style
	Header lipgloss.Style
	Absent lipgloss.Style
}

// NewStyles returns the table styles. With color false every Render is a
// no-op, for pipes and files.
func NewStyles(color bool) Styles {
	return Styles{
		color: color,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Absent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

var periodColors = map[solartime.DayPeriod]lipgloss.Color{
	solartime.Day:                  lipgloss.Color("226"),
	solartime.CivilTwilight:        lipgloss.Color("214"),
	solartime.NauticalTwilight:     lipgloss.Color("69"),
	solartime.AstronomicalTwilight: lipgloss.Color("61"),
	solartime.Night:                lipgloss.Color("240"),
}

// PeriodStyle returns the colour used for a day period.
func PeriodStyle(p solartime.DayPeriod) lipgloss.Style {
	c, ok := periodColors[p]
	if !ok {
		c = lipgloss.Color("252")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
