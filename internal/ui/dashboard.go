package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/solartime/internal/report"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	nextRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// DashboardModel shows the current sun state and the day's timeline.
type DashboardModel struct {
	width  int
	height int
	day    *report.DayExport
	state  *report.StateExport
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the timeline and state shown.
func (m DashboardModel) UpdateData(day *report.DayExport, state *report.StateExport) DashboardModel {
	m.day = day
	m.state = state
	return m
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.day == nil || m.state == nil {
		return "  No data\n"
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(m.state.Place.String()))
	b.WriteString("\n  ")
	b.WriteString(m.state.Instant.Format("2006-01-02 15:04:05 MST"))
	b.WriteString("   ")
	b.WriteString(report.PeriodStyle(m.state.Period).Render(m.state.Period.String()))
	b.WriteString("\n  ")
	b.WriteString(fmt.Sprintf("Sun %7.2f° %s  az %6.2f°", m.state.AltitudeDeg, m.renderAltitudeBar(m.state.AltitudeDeg, 24), m.state.AzimuthDeg))
	b.WriteString("\n\n")
	b.WriteString(m.renderTimeline())
	return b.String()
}

// renderAltitudeBar maps -90°..90° onto width cells.
func (m DashboardModel) renderAltitudeBar(alt float64, width int) string {
	filled := int((alt + 90) / 180 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style lipgloss.Style
	if alt >= 0 {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	} else {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("61"))
	}
	return "[" + style.Render(bar) + "]"
}

func (m DashboardModel) renderTimeline() string {
	var b strings.Builder

	header := fmt.Sprintf("%-26s %-20s %s", "Event", "Time", "In")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	next, hasNext := nextEvent(m.day.Events, m.state.Instant)
	for i, e := range m.day.Events {
		if e.Time == nil {
			b.WriteString(absentStyle.Render(fmt.Sprintf("  %-26s %-20s", e.Event, "--")))
			b.WriteString("\n")
			continue
		}

		until := e.Time.Sub(m.state.Instant).Round(time.Second)
		row := fmt.Sprintf("  %-26s %-20s %s", e.Event, e.Time.In(m.state.Instant.Location()).Format("01-02 15:04:05"), formatUntil(until))
		if hasNext && i == next {
			b.WriteString(nextRowStyle.Render("▶" + row[1:]))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// nextEvent returns the index of the first present event after now.
func nextEvent(events []report.EventExport, now time.Time) (int, bool) {
	for i, e := range events {
		if e.Time != nil && e.Time.After(now) {
			return i, true
		}
	}
	return 0, false
}

func formatUntil(d time.Duration) string {
	if d < 0 {
		return "-" + (-d).String()
	}
	return d.String()
}
