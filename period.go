package solartime

import (
	"errors"
	"fmt"
)

// DayPeriod classifies an instant by how far the Sun is below the horizon.
// The constants are ordered from brightest to darkest.
type DayPeriod int

const (
	Day DayPeriod = iota
	CivilTwilight
	NauticalTwilight
	AstronomicalTwilight
	Night
)

// ErrUnknownDayPeriod is returned when parsing an unrecognised period name.
var ErrUnknownDayPeriod = errors.New("unknown day period")

var periodNames = [...]string{
	Day:                  "day",
	CivilTwilight:        "civil-twilight",
	NauticalTwilight:     "nautical-twilight",
	AstronomicalTwilight: "astronomical-twilight",
	Night:                "night",
}

func (p DayPeriod) String() string {
	if p < Day || p > Night {
		return fmt.Sprintf("DayPeriod(%d)", int(p))
	}
	return periodNames[p]
}

// IsTwilight reports whether p is one of the three twilight bands.
func (p DayPeriod) IsTwilight() bool {
	return p == CivilTwilight || p == NauticalTwilight || p == AstronomicalTwilight
}

// MarshalText implements encoding.TextMarshaler.
func (p DayPeriod) MarshalText() ([]byte, error) {
	if p < Day || p > Night {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDayPeriod, int(p))
	}
	return []byte(periodNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DayPeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseDayPeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseDayPeriod parses the name produced by DayPeriod.String.
func ParseDayPeriod(s string) (DayPeriod, error) {
	for i, name := range periodNames {
		if name == s {
			return DayPeriod(i), nil
		}
	}
	return Night, fmt.Errorf("%w: %q", ErrUnknownDayPeriod, s)
}
