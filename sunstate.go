package solartime

import (
	"time"

	"go.uber.org/zap"

	"github.com/litescript/solartime/internal/astro"
)

// SunState answers whether it is day, night or twilight at an instant.
type SunState struct {
	st  *SolarTime
	log *zap.Logger
}

// NewSunState creates a SunState on top of st.
func NewSunState(st *SolarTime) *SunState {
	return &SunState{st: st, log: st.log}
}

// Status is every predicate of SunState evaluated for one instant.
type Status struct {
	Instant              time.Time `json:"instant"`
	Period               DayPeriod `json:"period"`
	Day                  bool      `json:"day"`
	Night                bool      `json:"night"`
	CivilTwilight        bool      `json:"civil_twilight"`
	NauticalTwilight     bool      `json:"nautical_twilight"`
	AstronomicalTwilight bool      `json:"astronomical_twilight"`
	Is24HourDay          bool      `json:"is_24_hour_day"`
	Is24HourNight        bool      `json:"is_24_hour_night"`
}

// IsDay reports whether t is at or after sunrise and before sunset. Without a
// sunrise or sunset that day it reports whether the Sun never sets.
func (s *SunState) IsDay(t time.Time, latitude, longitude float64) bool {
	rise, okRise := s.st.Sunrise(t, latitude, longitude)
	set, okSet := s.st.Sunset(t, latitude, longitude)
	if okRise && okSet {
		return !t.Before(rise) && t.Before(set)
	}
	s.log.Debug("day falls back to 24-hour check", zap.Time("t", t), zap.Float64("lat", latitude))
	return s.Is24HourDay(t, latitude, longitude)
}

// IsNight reports whether t is before astronomical dawn or after
// astronomical dusk. Without those events it reports whether the Sun never
// rises that day.
func (s *SunState) IsNight(t time.Time, latitude, longitude float64) bool {
	dawn, okDawn := s.st.AstronomicalDawn(t, latitude, longitude)
	dusk, okDusk := s.st.AstronomicalDusk(t, latitude, longitude)
	if okDawn && okDusk {
		return t.Before(dawn) || t.After(dusk)
	}
	s.log.Debug("night falls back to 24-hour check", zap.Time("t", t), zap.Float64("lat", latitude))
	return s.Is24HourNight(t, latitude, longitude)
}

// IsCivilTwilight reports whether t is between civil dawn and sunrise or
// between sunset and civil dusk.
func (s *SunState) IsCivilTwilight(t time.Time, latitude, longitude float64) bool {
	return s.inTwilight(t, latitude, longitude, astro.Civil, astro.SunriseSunset)
}

// IsNauticalTwilight reports whether t is between nautical and civil dawn or
// between civil and nautical dusk.
func (s *SunState) IsNauticalTwilight(t time.Time, latitude, longitude float64) bool {
	return s.inTwilight(t, latitude, longitude, astro.Nautical, astro.Civil)
}

// IsAstronomicalTwilight reports whether t is between astronomical and
// nautical dawn or between nautical and astronomical dusk.
func (s *SunState) IsAstronomicalTwilight(t time.Time, latitude, longitude float64) bool {
	return s.inTwilight(t, latitude, longitude, astro.Astronomical, astro.Nautical)
}

// IsTwilight reports whether t falls in any of the three twilight bands.
func (s *SunState) IsTwilight(t time.Time, latitude, longitude float64) bool {
	return s.IsCivilTwilight(t, latitude, longitude) ||
		s.IsNauticalTwilight(t, latitude, longitude) ||
		s.IsAstronomicalTwilight(t, latitude, longitude)
}

// DayPeriod classifies t, checking Day, then each twilight band from
// brightest to darkest, then Night. Night is also returned when nothing
// matches.
func (s *SunState) DayPeriod(t time.Time, latitude, longitude float64) DayPeriod {
	switch {
	case s.IsDay(t, latitude, longitude):
		return Day
	case s.IsCivilTwilight(t, latitude, longitude):
		return CivilTwilight
	case s.IsNauticalTwilight(t, latitude, longitude):
		return NauticalTwilight
	case s.IsAstronomicalTwilight(t, latitude, longitude):
		return AstronomicalTwilight
	case s.IsNight(t, latitude, longitude):
		return Night
	}
	s.log.Debug("no day period matched, defaulting to night",
		zap.Time("t", t), zap.Float64("lat", latitude), zap.Float64("lon", longitude))
	return Night
}

// Is24HourDay reports whether the Sun stays above the horizon for the whole
// day containing t.
func (s *SunState) Is24HourDay(t time.Time, latitude, longitude float64) bool {
	return astro.Is24HourDay(astro.LatitudeRad(latitude), astro.DeclinationAt(t, longitude))
}

// Is24HourNight reports whether the Sun stays below the horizon for the
// whole day containing t.
func (s *SunState) Is24HourNight(t time.Time, latitude, longitude float64) bool {
	return astro.Is24HourNight(astro.LatitudeRad(latitude), astro.DeclinationAt(t, longitude))
}

// Status evaluates every predicate for t.
func (s *SunState) Status(t time.Time, latitude, longitude float64) Status {
	return Status{
		Instant:              t,
		Period:               s.DayPeriod(t, latitude, longitude),
		Day:                  s.IsDay(t, latitude, longitude),
		Night:                s.IsNight(t, latitude, longitude),
		CivilTwilight:        s.IsCivilTwilight(t, latitude, longitude),
		NauticalTwilight:     s.IsNauticalTwilight(t, latitude, longitude),
		AstronomicalTwilight: s.IsAstronomicalTwilight(t, latitude, longitude),
		Is24HourDay:          s.Is24HourDay(t, latitude, longitude),
		Is24HourNight:        s.Is24HourNight(t, latitude, longitude),
	}
}

// inTwilight reports whether t lies in the dawn or dusk window of a twilight
// band bounded by outer and the next brighter threshold inner. Twilight has
// no 24-hour fallback: a missing bound means false.
func (s *SunState) inTwilight(t time.Time, latitude, longitude float64, outer, inner astro.Altitude) bool {
	outerDawn, ok1 := astro.Dawn(t, latitude, longitude, outer)
	innerDawn, ok2 := astro.Dawn(t, latitude, longitude, inner)
	innerDusk, ok3 := astro.Dusk(t, latitude, longitude, inner)
	outerDusk, ok4 := astro.Dusk(t, latitude, longitude, outer)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	dawn := Span{Start: outerDawn, End: innerDawn}
	dusk := Span{Start: innerDusk, End: outerDusk}
	return dawn.Contains(t) || dusk.Contains(t)
}
