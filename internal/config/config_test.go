package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_Validate(t *testing.T) {
	tests := []struct {
		name    string
		place   Place
		wantErr bool
	}{
		{"valid", Place{Name: "essen", Latitude: 51.4, Longitude: 6.9, Zone: "Europe/Berlin"}, false},
		{"empty zone is local", Place{Latitude: 0, Longitude: 0}, false},
		{"pole", Place{Latitude: -90, Longitude: 180, Zone: "UTC"}, false},
		{"latitude too large", Place{Latitude: 91, Longitude: 0}, true},
		{"longitude too small", Place{Latitude: 0, Longitude: -181}, true},
		{"bad zone", Place{Latitude: 0, Longitude: 0, Zone: "Mars/Olympus_Mons"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.place.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlace)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	book, err := Load(filepath.Join("testdata", "places.yaml"))
	require.NoError(t, err)
	require.Len(t, book.Places, 3)

	p, err := book.Default()
	require.NoError(t, err)
	assert.Equal(t, "essen", p.Name)
	assert.InDelta(t, 6.97337, p.Longitude, 1e-9)

	p, err = book.Lookup("Tromso")
	require.NoError(t, err)
	loc, err := p.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Oslo", loc.String())

	_, err = book.Lookup("atlantis")
	assert.ErrorIs(t, err, ErrUnknownPlace)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown default", "default: mars\nplaces: []\n", ErrUnknownPlace},
		{"unnamed place", "places:\n  - latitude: 1\n    longitude: 2\n", ErrInvalidPlace},
		{"duplicate", "places:\n  - name: a\n  - name: A\n", ErrInvalidPlace},
		{"out of range", "places:\n  - name: a\n    latitude: 100\n", ErrInvalidPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("places:\n  - name: a\n    altitude: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestParse_Empty(t *testing.T) {
	book, err := Parse(nil)
	require.NoError(t, err)
	_, err = book.Default()
	assert.ErrorIs(t, err, ErrNoPlace)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLatitude, "51.44968")
	t.Setenv(EnvLongitude, "6.97337")
	t.Setenv(EnvZone, "Europe/Berlin")
	t.Setenv(EnvLogLevel, "debug")

	env, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.NotNil(t, env.Place)
	assert.InDelta(t, 51.44968, env.Place.Latitude, 1e-9)
	assert.Equal(t, "Europe/Berlin", env.Place.Zone)
	assert.Equal(t, "debug", env.LogLevel)
}

func TestFromEnv_DotenvFile(t *testing.T) {
	t.Setenv(EnvLatitude, "")
	t.Setenv(EnvLongitude, "")
	// godotenv never overrides a variable that is set, even to "".
	t.Setenv(EnvPlaces, "")
	require.NoError(t, os.Unsetenv(EnvPlaces))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOLARTIME_PLACES=/etc/solartime/places.yaml\n"), 0o600))

	env, err := FromEnv(path)
	require.NoError(t, err)
	assert.Nil(t, env.Place)
	assert.Equal(t, "/etc/solartime/places.yaml", env.PlacesPath)
}

func TestFromEnv_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv(EnvLatitude, "north")
	t.Setenv(EnvLongitude, "6.9")
	_, err := FromEnv(missing)
	assert.ErrorIs(t, err, ErrInvalidPlace)

	t.Setenv(EnvLatitude, "51.4")
	t.Setenv(EnvLongitude, "")
	_, err = FromEnv(missing)
	assert.ErrorIs(t, err, ErrInvalidPlace)
}

func TestResolve(t *testing.T) {
	book, err := Load(filepath.Join("testdata", "places.yaml"))
	require.NoError(t, err)

	lat, lon := 10.0, 20.0
	envPlace := &Place{Name: "environment", Latitude: 1, Longitude: 2, Zone: "UTC"}

	tests := []struct {
		name     string
		sel      Selection
		env      Env
		book     *Book
		wantName string
		wantZone string
		wantErr  error
	}{
		{"flags win", Selection{Latitude: &lat, Longitude: &lon, Place: "tromso"}, Env{Place: envPlace, Zone: "UTC"}, book, "custom", "UTC", nil},
		{"named place", Selection{Place: "tromso"}, Env{Place: envPlace}, book, "tromso", "Europe/Oslo", nil},
		{"environment", Selection{}, Env{Place: envPlace}, book, "environment", "UTC", nil},
		{"book default", Selection{}, Env{}, book, "essen", "Europe/Berlin", nil},
		{"zone override", Selection{Place: "essen", Zone: "UTC"}, Env{}, book, "essen", "UTC", nil},
		{"nothing", Selection{}, Env{}, nil, "", "", ErrNoPlace},
		{"half coordinates", Selection{Latitude: &lat}, Env{}, book, "", "", ErrInvalidPlace},
		{"named without book", Selection{Place: "essen"}, Env{}, nil, "", "", ErrUnknownPlace},
		{"bad zone override", Selection{Place: "essen", Zone: "Nowhere/Special"}, Env{}, book, "", "", ErrInvalidPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.sel, tt.env, tt.book)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantZone, p.Zone)
		})
	}
}
