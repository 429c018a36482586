package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvLatitude  = "SOLARTIME_LATITUDE"
	EnvLongitude = "SOLARTIME_LONGITUDE"
	EnvZone      = "SOLARTIME_ZONE"
	EnvPlaces    = "SOLARTIME_PLACES"
	EnvLogLevel  = "SOLARTIME_LOG_LEVEL"
)

// Env is the configuration found in the process environment.
type Env struct {
	// Place is nil unless both latitude and longitude are set.
	Place      *Place
	Zone       string
	PlacesPath string
	LogLevel   string
}

// FromEnv loads the given dotenv files (".env" when none are named) into the
// process environment and then reads the SOLARTIME_* variables. Missing
// dotenv files are ignored. Variables already set are not overridden.
func FromEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	env := Env{
		Zone:       strings.TrimSpace(os.Getenv(EnvZone)),
		PlacesPath: strings.TrimSpace(os.Getenv(EnvPlaces)),
		LogLevel:   strings.TrimSpace(os.Getenv(EnvLogLevel)),
	}

	lat, hasLat, err := floatEnv(EnvLatitude)
	if err != nil {
		return Env{}, err
	}
	lon, hasLon, err := floatEnv(EnvLongitude)
	if err != nil {
		return Env{}, err
	}
	switch {
	case hasLat && hasLon:
		p := Place{Name: "environment", Latitude: lat, Longitude: lon, Zone: env.Zone}
		if err := p.Validate(); err != nil {
			return Env{}, err
		}
		env.Place = &p
	case hasLat || hasLon:
		return Env{}, fmt.Errorf("%w: %s and %s must be set together", ErrInvalidPlace, EnvLatitude, EnvLongitude)
	}
	return env, nil
}

func floatEnv(key string) (float64, bool, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrInvalidPlace, key, s)
	}
	return v, true, nil
}
