package astro

import (
	"math"
	"time"
)

const (
	// axialTilt is the Earth's obliquity in degrees.
	axialTilt = 23.439

	// transitOffset is the 0.0009 day correction between J2000 and mean
	// solar noon at longitude 0.
	transitOffset = 0.0009
)

// SolarEquationVariables are the intermediate quantities of the sunrise
// equation for one day and longitude. Angles are in radians.
type SolarEquationVariables struct {
	N                 float64 // Julian cycle: days since 2000-01-01 12:00 UTC
	MeanAnomaly       float64 // M
	EclipticLongitude float64 // λ
	Transit           float64 // Julian Date of solar noon
	Declination       float64 // δ
}

// Variables computes the solar equation variables for the day containing t at
// longitude (degrees, West negative).
func Variables(t time.Time, longitude float64) SolarEquationVariables {
	// The sunrise equation is written for West positive.
	lw := -longitude

	julianDate := ToJulianDate(t)

	n := math.Floor(julianDate - J2000 - transitOffset - lw/360 + 0.5)

	// Approximate solar noon
	jStar := J2000 + transitOffset + lw/360 + n

	m := degToRad(math.Mod(357.5291+0.98560028*(jStar-J2000), 360))

	center := 1.9148*math.Sin(m) + 0.0200*math.Sin(2*m) + 0.0003*math.Sin(3*m)

	// 102.9372 is the argument of perihelion.
	lambda := degToRad(math.Mod(radToDeg(m)+102.9372+center+180, 360))

	transit := jStar + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*lambda)

	delta := math.Asin(math.Sin(lambda) * math.Sin(degToRad(axialTilt)))

	return SolarEquationVariables{
		N:                 n,
		MeanAnomaly:       m,
		EclipticLongitude: lambda,
		Transit:           transit,
		Declination:       delta,
	}
}
