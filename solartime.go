package solartime

import (
	"time"

	"go.uber.org/zap"

	"github.com/litescript/solartime/internal/astro"
)

// SolarTime computes the named solar events of a day. Latitude and longitude
// are in degrees, West negative. The zero value is not usable; call New.
type SolarTime struct {
	log *zap.Logger
}

// Option configures a SolarTime.
type Option func(*SolarTime)

// WithLogger sets the logger used to trace absent events at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *SolarTime) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a SolarTime.
func New(opts ...Option) *SolarTime {
	s := &SolarTime{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSolarTime = New()

// Default returns a shared SolarTime without logging. It is safe for
// concurrent use.
func Default() *SolarTime {
	return defaultSolarTime
}

// AstronomicalDawn returns when the Sun rises through -18°.
func (s *SolarTime) AstronomicalDawn(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dawn(EventAstronomicalDawn, day, latitude, longitude, astro.Astronomical)
}

// NauticalDawn returns when the Sun rises through -12°.
func (s *SolarTime) NauticalDawn(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dawn(EventNauticalDawn, day, latitude, longitude, astro.Nautical)
}

// CivilDawn returns when the Sun rises through -6°.
func (s *SolarTime) CivilDawn(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dawn(EventCivilDawn, day, latitude, longitude, astro.Civil)
}

// Sunrise returns when the upper limb of the Sun clears the horizon.
func (s *SolarTime) Sunrise(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dawn(EventSunrise, day, latitude, longitude, astro.SunriseSunset)
}

// SolarNoon returns the solar transit. It is absent when the Sun does not
// rise that day.
func (s *SolarTime) SolarNoon(day time.Time, latitude, longitude float64) (time.Time, bool) {
	t, ok := astro.SolarNoon(day, latitude, longitude)
	if !ok {
		s.absent(EventSolarNoon, day, latitude, longitude)
	}
	return t, ok
}

func (s *SolarTime) Sunset(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dusk(EventSunset, day, latitude, longitude, astro.SunriseSunset)
}

// CivilDusk returns when the Sun sets through -6°.
func (s *SolarTime) CivilDusk(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dusk(EventCivilDusk, day, latitude, longitude, astro.Civil)
}

// NauticalDusk returns when the Sun sets through -12°.
func (s *SolarTime) NauticalDusk(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dusk(EventNauticalDusk, day, latitude, longitude, astro.Nautical)
}

// AstronomicalDusk returns when the Sun sets through -18°.
func (s *SolarTime) AstronomicalDusk(day time.Time, latitude, longitude float64) (time.Time, bool) {
	return s.dusk(EventAstronomicalDusk, day, latitude, longitude, astro.Astronomical)
}

// PreviousNight returns the astronomical night ending on day: from the
// astronomical dusk of the previous day to the astronomical dawn of day.
func (s *SolarTime) PreviousNight(day time.Time, latitude, longitude float64) (Span, bool) {
	return s.night(day.AddDate(0, 0, -1), day, latitude, longitude)
}

// NextNight returns the astronomical night starting on day.
func (s *SolarTime) NextNight(day time.Time, latitude, longitude float64) (Span, bool) {
	return s.night(day, day.AddDate(0, 0, 1), latitude, longitude)
}

// PreviousSolarMidnight returns the midpoint of PreviousNight. It is absent
// when there is no astronomical night, e.g. around the summer solstice at
// mid-northern latitudes.
func (s *SolarTime) PreviousSolarMidnight(day time.Time, latitude, longitude float64) (time.Time, bool) {
	night, ok := s.PreviousNight(day, latitude, longitude)
	if !ok {
		s.absent(EventPreviousSolarMidnight, day, latitude, longitude)
		return time.Time{}, false
	}
	return night.Midpoint(), true
}

// NextSolarMidnight returns the midpoint of NextNight.
func (s *SolarTime) NextSolarMidnight(day time.Time, latitude, longitude float64) (time.Time, bool) {
	night, ok := s.NextNight(day, latitude, longitude)
	if !ok {
		s.absent(EventNextSolarMidnight, day, latitude, longitude)
		return time.Time{}, false
	}
	return night.Midpoint(), true
}

// Event returns the event of the given kind.
func (s *SolarTime) Event(kind EventKind, day time.Time, latitude, longitude float64) (time.Time, bool) {
	switch kind {
	case EventPreviousSolarMidnight:
		return s.PreviousSolarMidnight(day, latitude, longitude)
	case EventAstronomicalDawn:
		return s.AstronomicalDawn(day, latitude, longitude)
	case EventNauticalDawn:
		return s.NauticalDawn(day, latitude, longitude)
	case EventCivilDawn:
		return s.CivilDawn(day, latitude, longitude)
	case EventSunrise:
		return s.Sunrise(day, latitude, longitude)
	case EventSolarNoon:
		return s.SolarNoon(day, latitude, longitude)
	case EventSunset:
		return s.Sunset(day, latitude, longitude)
	case EventCivilDusk:
		return s.CivilDusk(day, latitude, longitude)
	case EventNauticalDusk:
		return s.NauticalDusk(day, latitude, longitude)
	case EventAstronomicalDusk:
		return s.AstronomicalDusk(day, latitude, longitude)
	case EventNextSolarMidnight:
		return s.NextSolarMidnight(day, latitude, longitude)
	}
	return time.Time{}, false
}

// Timeline evaluates every event kind for day, in chronological order.
func (s *SolarTime) Timeline(day time.Time, latitude, longitude float64) []Event {
	events := make([]Event, 0, len(EventKinds))
	for _, kind := range EventKinds {
		t, ok := s.Event(kind, day, latitude, longitude)
		events = append(events, Event{Kind: kind, Time: t, Present: ok})
	}
	return events
}

func (s *SolarTime) night(duskDay, dawnDay time.Time, latitude, longitude float64) (Span, bool) {
	dusk, ok := s.AstronomicalDusk(duskDay, latitude, longitude)
	if !ok {
		return Span{}, false
	}
	dawn, ok := s.AstronomicalDawn(dawnDay, latitude, longitude)
	if !ok {
		return Span{}, false
	}
	return Span{Start: dusk, End: dawn}, true
}

func (s *SolarTime) dawn(kind EventKind, day time.Time, latitude, longitude float64, alt astro.Altitude) (time.Time, bool) {
	t, ok := astro.Dawn(day, latitude, longitude, alt)
	if !ok {
		s.absent(kind, day, latitude, longitude)
	}
	return t, ok
}

func (s *SolarTime) dusk(kind EventKind, day time.Time, latitude, longitude float64, alt astro.Altitude) (time.Time, bool) {
	t, ok := astro.Dusk(day, latitude, longitude, alt)
	if !ok {
		s.absent(kind, day, latitude, longitude)
	}
	return t, ok
}

func (s *SolarTime) absent(kind EventKind, day time.Time, latitude, longitude float64) {
	s.log.Debug("event does not occur",
		zap.Stringer("event", kind),
		zap.Time("day", day),
		zap.Float64("lat", latitude),
		zap.Float64("lon", longitude))
}
