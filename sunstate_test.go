package solartime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	nunavutLat = 82.481306
	nunavutLon = -62.239533
)

func TestDayPeriod_Essen(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	ss := NewSunState(New())

	tests := []struct {
		name string
		at   time.Time
		want DayPeriod
	}{
		{"winter noon", time.Date(2019, 1, 24, 12, 0, 0, 0, berlin), Day},
		{"winter civil dawn", time.Date(2019, 1, 24, 8, 0, 0, 0, berlin), CivilTwilight},
		{"winter nautical dawn", time.Date(2019, 1, 24, 7, 30, 0, 0, berlin), NauticalTwilight},
		{"winter astronomical dawn", time.Date(2019, 1, 24, 7, 0, 0, 0, berlin), AstronomicalTwilight},
		{"winter early astronomical dawn", time.Date(2019, 1, 24, 6, 30, 0, 0, berlin), AstronomicalTwilight},
		{"winter before dawn", time.Date(2019, 1, 24, 6, 0, 0, 0, berlin), Night},
		{"winter small hours", time.Date(2019, 1, 24, 1, 0, 0, 0, berlin), Night},
		{"winter late evening", time.Date(2019, 1, 24, 23, 0, 0, 0, berlin), Night},
		{"summer noon", time.Date(2019, 6, 24, 12, 0, 0, 0, berlin), Day},
		{"summer civil dawn", time.Date(2019, 6, 24, 5, 0, 0, 0, berlin), CivilTwilight},
		{"summer nautical dawn", time.Date(2019, 6, 24, 3, 16, 0, 0, berlin), NauticalTwilight},
		{"summer nautical dusk", time.Date(2019, 6, 24, 23, 0, 0, 0, berlin), NauticalTwilight},
		{"summer late nautical dusk", time.Date(2019, 6, 24, 23, 55, 0, 0, berlin), NauticalTwilight},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ss.DayPeriod(tt.at, essenLat, essenLon))
		})
	}
}

func TestIsDay_BoundsHalfOpen(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	st := New()
	ss := NewSunState(st)
	day := time.Date(2019, 1, 24, 12, 0, 0, 0, berlin)

	rise, ok := st.Sunrise(day, essenLat, essenLon)
	require.True(t, ok)
	set, ok := st.Sunset(day, essenLat, essenLon)
	require.True(t, ok)

	assert.True(t, ss.IsDay(rise, essenLat, essenLon), "sunrise itself is day")
	assert.False(t, ss.IsDay(set, essenLat, essenLon), "sunset itself is not day")
	assert.False(t, ss.IsDay(rise.Add(-time.Second), essenLat, essenLon))
	assert.True(t, ss.IsDay(set.Add(-time.Second), essenLat, essenLon))
}

func TestTwilight_BoundsExclusive(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	st := New()
	ss := NewSunState(st)
	day := time.Date(2019, 1, 24, 12, 0, 0, 0, berlin)

	civil, ok := st.CivilDawn(day, essenLat, essenLon)
	require.True(t, ok)
	assert.False(t, ss.IsCivilTwilight(civil, essenLat, essenLon))
	assert.False(t, ss.IsNauticalTwilight(civil, essenLat, essenLon))
	assert.True(t, ss.IsCivilTwilight(civil.Add(time.Second), essenLat, essenLon))
	assert.True(t, ss.IsNauticalTwilight(civil.Add(-time.Second), essenLat, essenLon))

	dusk, ok := st.NauticalDusk(day, essenLat, essenLon)
	require.True(t, ok)
	assert.True(t, ss.IsNauticalTwilight(dusk.Add(-time.Second), essenLat, essenLon))
	assert.True(t, ss.IsAstronomicalTwilight(dusk.Add(time.Second), essenLat, essenLon))
	assert.False(t, ss.IsTwilight(dusk, essenLat, essenLon), "nautical dusk itself is in no band")
}

func TestIsNight(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	ss := NewSunState(New())

	assert.True(t, ss.IsNight(time.Date(2019, 1, 24, 23, 0, 0, 0, berlin), essenLat, essenLon))
	assert.False(t, ss.IsNight(time.Date(2019, 1, 24, 12, 0, 0, 0, berlin), essenLat, essenLon))
	assert.False(t, ss.IsNight(time.Date(2019, 1, 24, 19, 0, 0, 0, berlin), essenLat, essenLon))
}

// Around midsummer Essen has no astronomical dawn or dusk, but the Sun still
// rises, so neither IsNight nor any band matches at 01:00 and the period
// falls back to Night.
func TestDayPeriod_DefaultsToNight(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	core, logs := observer.New(zapcore.DebugLevel)
	ss := NewSunState(New(WithLogger(zap.New(core))))
	at := time.Date(2019, 6, 24, 1, 0, 0, 0, berlin)

	assert.False(t, ss.IsNight(at, essenLat, essenLon))
	assert.False(t, ss.IsTwilight(at, essenLat, essenLon))
	assert.Equal(t, Night, ss.DayPeriod(at, essenLat, essenLon))
	assert.NotEmpty(t, logs.FilterMessage("no day period matched, defaulting to night").All())
}

func TestPolarNight_Tromso_State(t *testing.T) {
	istanbul := loadLocation(t, "Europe/Istanbul")
	ss := NewSunState(New())

	tests := []struct {
		name  string
		at    time.Time
		want  DayPeriod
		night bool
	}{
		{"morning astronomical twilight", time.Date(2019, 12, 24, 9, 0, 0, 0, istanbul), AstronomicalTwilight, false},
		{"afternoon nautical twilight", time.Date(2019, 12, 24, 16, 30, 0, 0, istanbul), NauticalTwilight, false},
		{"evening", time.Date(2019, 12, 24, 20, 0, 0, 0, istanbul), Night, true},
		{"small hours", time.Date(2019, 12, 24, 2, 0, 0, 0, istanbul), Night, true},
		// civil twilight has no sunrise to end it, so midday lands on the default
		{"midday", time.Date(2019, 12, 24, 12, 0, 0, 0, istanbul), Night, false},
		{"after civil dawn", time.Date(2019, 12, 24, 11, 40, 0, 0, istanbul), Night, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ss.DayPeriod(tt.at, tromsoLat, tromsoLon))
			assert.Equal(t, tt.night, ss.IsNight(tt.at, tromsoLat, tromsoLon))
			assert.False(t, ss.IsDay(tt.at, tromsoLat, tromsoLon))
			assert.True(t, ss.Is24HourNight(tt.at, tromsoLat, tromsoLon))
			assert.False(t, ss.Is24HourDay(tt.at, tromsoLat, tromsoLon))
		})
	}
}

func TestMidnightSun(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	ss := NewSunState(New())

	for _, h := range []int{0, 3, 12, 23} {
		at := time.Date(2019, 6, 24, h, 0, 0, 0, berlin)
		assert.True(t, ss.Is24HourDay(at, nunavutLat, nunavutLon))
		assert.True(t, ss.IsDay(at, nunavutLat, nunavutLon), "hour %d", h)
		assert.Equal(t, Day, ss.DayPeriod(at, nunavutLat, nunavutLon), "hour %d", h)
	}
}

func TestSouthPoleSummer(t *testing.T) {
	ss := NewSunState(New())
	at := time.Date(2019, 12, 24, 12, 0, 0, 0, time.UTC)

	assert.True(t, ss.IsDay(at, -90, 0))
	assert.True(t, ss.Is24HourDay(at, -90, 0))
	assert.Equal(t, Day, ss.DayPeriod(at, -90, 0))
}

func TestStatus(t *testing.T) {
	berlin := loadLocation(t, "Europe/Berlin")
	ss := NewSunState(New())
	at := time.Date(2019, 1, 24, 7, 30, 0, 0, berlin)

	s := ss.Status(at, essenLat, essenLon)
	assert.Equal(t, NauticalTwilight, s.Period)
	assert.True(t, s.NauticalTwilight)
	assert.False(t, s.Day)
	assert.False(t, s.Night)
	assert.False(t, s.CivilTwilight)
	assert.False(t, s.AstronomicalTwilight)
	assert.False(t, s.Is24HourDay)
	assert.False(t, s.Is24HourNight)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"period":"nautical-twilight"`)
}
