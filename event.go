package solartime

import "time"

// EventKind names a solar event. The constants are in chronological order.
type EventKind int

const (
	EventPreviousSolarMidnight EventKind = iota
	EventAstronomicalDawn
	EventNauticalDawn
	EventCivilDawn
	EventSunrise
	EventSolarNoon
	EventSunset
	EventCivilDusk
	EventNauticalDusk
	EventAstronomicalDusk
	EventNextSolarMidnight
)

// EventKinds lists every event kind in chronological order.
var EventKinds = []EventKind{
	EventPreviousSolarMidnight,
	EventAstronomicalDawn,
	EventNauticalDawn,
	EventCivilDawn,
	EventSunrise,
	EventSolarNoon,
	EventSunset,
	EventCivilDusk,
	EventNauticalDusk,
	EventAstronomicalDusk,
	EventNextSolarMidnight,
}

var eventNames = map[EventKind]string{
	EventPreviousSolarMidnight: "previous solar midnight",
	EventAstronomicalDawn:      "astronomical dawn",
	EventNauticalDawn:          "nautical dawn",
	EventCivilDawn:             "civil dawn",
	EventSunrise:               "sunrise",
	EventSolarNoon:             "solar noon",
	EventSunset:                "sunset",
	EventCivilDusk:             "civil dusk",
	EventNauticalDusk:          "nautical dusk",
	EventAstronomicalDusk:      "astronomical dusk",
	EventNextSolarMidnight:     "next solar midnight",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one entry of a day's timeline. Time is the zero value when the
// event is not Present.
type Event struct {
	Kind    EventKind
	Time    time.Time
	Present bool
}
