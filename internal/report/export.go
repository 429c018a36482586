// Package report renders solar events and sun state as text tables and JSON.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/solartime"
	"github.com/litescript/solartime/internal/astro"
	"github.com/litescript/solartime/internal/config"
)

// DayExport is the JSON-serializable representation of a day's events.
type DayExport struct {
	Place         config.Place  `json:"place"`
	Day           string        `json:"day"`
	Zone          string        `json:"zone"`
	Events        []EventExport `json:"events"`
	Is24HourDay   bool          `json:"is_24_hour_day"`
	Is24HourNight bool          `json:"is_24_hour_night"`

	date time.Time
}

// EventExport is one named event. Time is omitted when the event does not
// occur that day.
type EventExport struct {
	Event string     `json:"event"`
	Time  *time.Time `json:"time,omitempty"`
}

// StateExport is the JSON-serializable sun state at an instant, with the
// Sun's horizontal position.
type StateExport struct {
	Place config.Place `json:"place"`
	solartime.Status
	AltitudeDeg float64 `json:"altitude_deg"`
	AzimuthDeg  float64 `json:"azimuth_deg"`
}

// ExportDay evaluates the timeline of day at p.
func ExportDay(st *solartime.SolarTime, p config.Place, day time.Time) *DayExport {
	ss := solartime.NewSunState(st)
	export := &DayExport{
		Place:         p,
		Day:           day.Format("2006-01-02"),
		Zone:          day.Location().String(),
		Is24HourDay:   ss.Is24HourDay(day, p.Latitude, p.Longitude),
		Is24HourNight: ss.Is24HourNight(day, p.Latitude, p.Longitude),
		date:          day,
	}

	for _, e := range st.Timeline(day, p.Latitude, p.Longitude) {
		ev := EventExport{Event: e.Kind.String()}
		if e.Present {
			t := e.Time
			ev.Time = &t
		}
		export.Events = append(export.Events, ev)
	}
	return export
}

// ExportState classifies t at p.
func ExportState(st *solartime.SolarTime, p config.Place, t time.Time) *StateExport {
	pos := astro.SunHorizontal(t, p.Latitude, p.Longitude)
	return &StateExport{
		Place:       p,
		Status:      solartime.NewSunState(st).Status(t, p.Latitude, p.Longitude),
		AltitudeDeg: pos.AltDeg,
		AzimuthDeg:  pos.AzDeg,
	}
}

// WriteJSON writes the day as JSON to the given writer.
func (d *DayExport) WriteJSON(w io.Writer) error {
	return writeJSON(w, d)
}

// WriteJSON writes the state as JSON to the given writer.
func (s *StateExport) WriteJSON(w io.Writer) error {
	return writeJSON(w, s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
