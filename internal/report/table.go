package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const tableWidth = 56

// WriteTimesTable writes the day's events as a text table.
func WriteTimesTable(w io.Writer, d *DayExport, s Styles) {
	title := fmt.Sprintf("Solar events for %s on %s (%s)", d.Place, d.Day, d.Zone)
	fmt.Fprintln(w, s.render(s.Title, title))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))
	fmt.Fprintln(w, s.render(s.Header, fmt.Sprintf("%-26s %s", "Event", "Time")))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	for _, e := range d.Events {
		if e.Time == nil {
			fmt.Fprintf(w, "%-26s %s\n", e.Event, s.render(s.Absent, "--"))
			continue
		}
		fmt.Fprintf(w, "%-26s %s\n", e.Event, formatEventTime(*e.Time, d.date))
	}

	fmt.Fprintln(w, strings.Repeat("─", tableWidth))
	fmt.Fprintf(w, "24-hour day: %s   24-hour night: %s\n", yesNo(d.Is24HourDay), yesNo(d.Is24HourNight))
}

// WriteState writes the sun state as a two-column list.
func WriteState(w io.Writer, st *StateExport, s Styles) {
	title := fmt.Sprintf("Sun state for %s at %s", st.Place, st.Instant.Format(time.RFC3339))
	fmt.Fprintln(w, s.render(s.Title, title))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	rows := []struct {
		label string
		value string
	}{
		{"Period", s.render(PeriodStyle(st.Period), st.Period.String())},
		{"Altitude", fmt.Sprintf("%.2f°", st.AltitudeDeg)},
		{"Azimuth", fmt.Sprintf("%.2f°", st.AzimuthDeg)},
		{"Day", yesNo(st.Day)},
		{"Civil twilight", yesNo(st.CivilTwilight)},
		{"Nautical twilight", yesNo(st.NauticalTwilight)},
		{"Astronomical twilight", yesNo(st.AstronomicalTwilight)},
		{"Night", yesNo(st.Night)},
		{"24-hour day", yesNo(st.Is24HourDay)},
		{"24-hour night", yesNo(st.Is24HourNight)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-22s %s\n", r.label, r.value)
	}
}

// formatEventTime shows only the clock time for events on day and adds the
// date for those that fall on a neighbouring day, such as solar midnight.
func formatEventTime(t, day time.Time) string {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02 15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
