package astro

import (
	"math"
	"testing"
	"time"
)

func TestVariables(t *testing.T) {
	berlin := mustLoadLocation(t, "Europe/Berlin")

	tests := []struct {
		name      string
		time      time.Time
		longitude float64
		want      SolarEquationVariables
	}{
		{
			name:      "J2000 at Greenwich",
			time:      time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			longitude: 0,
			want: SolarEquationVariables{
				N:                 0,
				MeanAnomaly:       6.240075448462786,
				EclipticLongitude: 4.893604856795677,
				Transit:           2451545.0031179767,
				Declination:       -0.40199934800416653,
			},
		},
		{
			name:      "Essen midsummer",
			time:      time.Date(2019, 6, 24, 12, 0, 0, 0, berlin),
			longitude: 6.973370,
			want: SolarEquationVariables{
				N:                 7114,
				MeanAnomaly:       2.9508506360199345,
				EclipticLongitude: 1.612059855860267,
				Transit:           2458658.983103132,
				Declination:       0.40871870958236367,
			},
		},
	}

	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variables(tt.time, tt.longitude)
			if got.N != tt.want.N {
				t.Errorf("N = %v, want %v", got.N, tt.want.N)
			}
			if math.Abs(got.MeanAnomaly-tt.want.MeanAnomaly) > tol {
				t.Errorf("MeanAnomaly = %v, want %v", got.MeanAnomaly, tt.want.MeanAnomaly)
			}
			if math.Abs(got.EclipticLongitude-tt.want.EclipticLongitude) > tol {
				t.Errorf("EclipticLongitude = %v, want %v", got.EclipticLongitude, tt.want.EclipticLongitude)
			}
			if math.Abs(got.Transit-tt.want.Transit) > tol {
				t.Errorf("Transit = %v, want %v", got.Transit, tt.want.Transit)
			}
			if math.Abs(got.Declination-tt.want.Declination) > tol {
				t.Errorf("Declination = %v, want %v", got.Declination, tt.want.Declination)
			}
		})
	}
}

func TestVariables_Deterministic(t *testing.T) {
	ts := time.Date(2021, 8, 14, 9, 30, 0, 0, time.UTC)
	first := Variables(ts, -74.0)
	for i := 0; i < 10; i++ {
		if got := Variables(ts, -74.0); got != first {
			t.Fatalf("Variables() not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestVariables_DeclinationRange(t *testing.T) {
	// Declination stays within the axial tilt over a year.
	maxDecl := degToRad(axialTilt) + 1e-9
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 366; d++ {
		v := Variables(start.AddDate(0, 0, d), 0)
		if math.Abs(v.Declination) > maxDecl {
			t.Errorf("day %d: declination %.4f° exceeds tilt", d, radToDeg(v.Declination))
		}
	}
}

func TestVariables_SolsticeDeclination(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		wantMin float64
		wantMax float64
	}{
		{"June solstice", time.Date(2019, 6, 21, 12, 0, 0, 0, time.UTC), 23.3, 23.5},
		{"December solstice", time.Date(2019, 12, 22, 12, 0, 0, 0, time.UTC), -23.5, -23.3},
		{"March equinox", time.Date(2019, 3, 20, 12, 0, 0, 0, time.UTC), -0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := radToDeg(Variables(tt.time, 0).Declination)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("declination = %.3f°, want between %.1f° and %.1f°", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}
