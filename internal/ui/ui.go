// Package ui provides the live sun clock using Bubble Tea.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/solartime"
	"github.com/litescript/solartime/internal/config"
	"github.com/litescript/solartime/internal/report"
	"github.com/litescript/solartime/internal/version"
)

// TickMsg triggers a clock update.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	st    *solartime.SolarTime
	place config.Place
	loc   *time.Location

	now    time.Time
	offset int // days between now and the day shown in the timeline

	width  int
	height int
	ready  bool

	dashboard DashboardModel
}

// New creates the sun clock for place. The clock starts at now and then
// follows the wall clock.
func New(st *solartime.SolarTime, place config.Place, loc *time.Location, now time.Time) Model {
	m := Model{
		st:        st,
		place:     place,
		loc:       loc,
		now:       now.In(loc),
		dashboard: NewDashboardModel(),
	}
	return m.refresh()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.offset--
		case "right", "l":
			m.offset++
		case "t":
			m.offset = 0
		default:
			return m, nil
		}
		return m.refresh(), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height-4)

	case TickMsg:
		m.now = time.Time(msg).In(m.loc)
		return m.refresh(), tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.dashboard.View() + "\n" + m.renderFooter()
}

// Day returns the day shown in the timeline.
func (m Model) Day() time.Time {
	return m.now.AddDate(0, 0, m.offset)
}

func (m Model) refresh() Model {
	m.dashboard = m.dashboard.UpdateData(
		report.ExportDay(m.st, m.place, m.Day()),
		report.ExportState(m.st, m.place, m.now),
	)
	return m
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	help := "q: quit | ←/→: day | t: today"
	if m.offset != 0 {
		help += fmt.Sprintf(" | %+dd", m.offset)
	}
	return "  " + dimStyle.Render(help+" | v"+version.Version)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
