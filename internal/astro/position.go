// Package astro implements the sunrise equation: Julian date conversion, the
// solar equation variables, the hour angle for a sun altitude threshold and
// the dawn, dusk and solar noon events derived from them.
//
// The formulas follow the Wikipedia articles on the Julian day and the
// sunrise equation. Every function is pure; absence of an event (polar day or
// polar night) is reported through a boolean, never an error.
package astro

import (
	"math"
	"time"
)

// unixEpochJD is the Julian Date of 1970-01-01 00:00 UTC.
const unixEpochJD = 2440587.5

// Horizontal is the position of the Sun as seen by an observer.
type Horizontal struct {
	RAdeg   float64 // Right Ascension in degrees (0-360)
	DecDeg  float64 // Declination in degrees (-90 to +90)
	AltDeg  float64 // Altitude above the horizon in degrees
	AzDeg   float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	Instant time.Time
}

// SunPosition calculates the apparent equatorial coordinates of the Sun using
// a low precision Astronomical Almanac ephemeris. Accuracy is about 0.01°,
// which is independent of and finer than the sunrise equation.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	jd := instantJulianDate(t)

	// Julian centuries from J2000.0
	T := (jd - J2000) / 36525.0

	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of centre
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// Apparent longitude, corrected for aberration and nutation.
	omega := 125.04 - 1934.136*T
	lon := degToRad(L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega)))

	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := degToRad(eps0 + 0.00256*math.Cos(degToRad(omega)))

	raDeg = normalizeAngle360(radToDeg(math.Atan2(math.Cos(eps)*math.Sin(lon), math.Cos(lon))))
	decDeg = radToDeg(math.Asin(math.Sin(eps) * math.Sin(lon)))
	return raDeg, decDeg
}

// SunHorizontal returns the Sun's altitude and azimuth at t for an observer at
// latitude and longitude (degrees, West negative). Refraction is not applied.
func SunHorizontal(t time.Time, latitude, longitude float64) Horizontal {
	raDeg, decDeg := SunPosition(t)

	lat := degToRad(latitude)
	dec := degToRad(decDeg)
	ha := degToRad(localSiderealTime(t, longitude) - raDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	cosAz = math.Max(-1, math.Min(1, cosAz))
	az := math.Acos(cosAz)
	// Positive hour angle means the Sun is west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		RAdeg:   raDeg,
		DecDeg:  decDeg,
		AltDeg:  radToDeg(alt),
		AzDeg:   radToDeg(az),
		Instant: t,
	}
}

// instantJulianDate is the continuous Julian Date of t including fractions of
// a second.
func instantJulianDate(t time.Time) float64 {
	return float64(t.UnixNano())/float64(24*time.Hour) + unixEpochJD
}

// localSiderealTime returns the Local Sidereal Time in degrees.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime returns GMST in degrees (IAU 1982).
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := instantJulianDate(t)
	T := (jd - J2000) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0
	return normalizeAngle360(gmst)
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
