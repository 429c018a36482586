// Package config resolves the place (coordinates and time zone) that the
// solartime command computes events for. Places come from command-line flags,
// a YAML place book or SOLARTIME_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrUnknownPlace is returned when a named place is not in the book.
	ErrUnknownPlace = errors.New("unknown place")
	// ErrInvalidPlace is returned for out-of-range coordinates or a bad zone.
	ErrInvalidPlace = errors.New("invalid place")
	// ErrNoPlace is returned when nothing selects a place.
	ErrNoPlace = errors.New("no place configured")
)

// Place is a named observer location. Longitude is East positive.
type Place struct {
	Name      string  `yaml:"name" json:"name"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Zone      string  `yaml:"zone" json:"zone"`
}

// Location loads the place's time zone. An empty zone is the local zone.
func (p Place) Location() (*time.Location, error) {
	if p.Zone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: zone %q: %v", ErrInvalidPlace, p.label(), p.Zone, err)
	}
	return loc, nil
}

// Validate checks coordinate ranges and that the zone loads.
func (p Place) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: %s: latitude %v outside [-90, 90]", ErrInvalidPlace, p.label(), p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: %s: longitude %v outside [-180, 180]", ErrInvalidPlace, p.label(), p.Longitude)
	}
	_, err := p.Location()
	return err
}

func (p Place) label() string {
	if p.Name == "" {
		return "place"
	}
	return p.Name
}

func (p Place) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", p.label(), p.Latitude, p.Longitude)
}
