package astro

import (
	"math"
	"time"
)

// JulianSunset returns the Julian Date at which the Sun descends through
// altitude on the day containing t.
func JulianSunset(t time.Time, latitude, longitude float64, altitude Altitude) (float64, bool) {
	v := Variables(t, longitude)
	return julianSunset(v, latitude, longitude, altitude)
}

// JulianSunrise returns the Julian Date at which the Sun ascends through
// altitude. It mirrors the sunset around the solar transit, so it is absent
// whenever the sunset is.
func JulianSunrise(t time.Time, latitude, longitude float64, altitude Altitude) (float64, bool) {
	v := Variables(t, longitude)
	jset, ok := julianSunset(v, latitude, longitude, altitude)
	if !ok {
		return 0, false
	}
	return v.Transit - (jset - v.Transit), true
}

func julianSunset(v SolarEquationVariables, latitude, longitude float64, altitude Altitude) (float64, bool) {
	omega, ok := HourAngle(altitude, degToRad(latitude), v.Declination)
	if !ok {
		return 0, false
	}
	jset := J2000 + transitOffset +
		((radToDeg(omega)-longitude)/360 + v.N + 0.0053*math.Sin(v.MeanAnomaly) - 0.0069*math.Sin(2*v.EclipticLongitude))
	return jset, true
}

// Dawn returns the instant the Sun rises through altitude on day, expressed
// in day's location.
func Dawn(day time.Time, latitude, longitude float64, altitude Altitude) (time.Time, bool) {
	jrise, ok := JulianSunrise(day, latitude, longitude, altitude)
	if !ok {
		return time.Time{}, false
	}
	return ToGregorian(jrise, time.UTC).In(day.Location()), true
}

// Dusk returns the instant the Sun sets through altitude on day, expressed in
// day's location.
func Dusk(day time.Time, latitude, longitude float64, altitude Altitude) (time.Time, bool) {
	jset, ok := JulianSunset(day, latitude, longitude, altitude)
	if !ok {
		return time.Time{}, false
	}
	return ToGregorian(jset, time.UTC).In(day.Location()), true
}

// SolarNoon returns the solar transit on day. It is absent when there is no
// sunrise that day; the hour angle only gates existence.
func SolarNoon(day time.Time, latitude, longitude float64) (time.Time, bool) {
	v := Variables(day, longitude)
	if _, ok := HourAngle(SunriseSunset, degToRad(latitude), v.Declination); !ok {
		return time.Time{}, false
	}
	return ToGregorian(v.Transit, time.UTC).In(day.Location()), true
}

// DeclinationAt returns the solar declination in radians used by the sunrise
// equation for the day containing t at longitude.
func DeclinationAt(t time.Time, longitude float64) float64 {
	return Variables(t, longitude).Declination
}

// LatitudeRad converts a latitude in degrees to radians.
func LatitudeRad(latitude float64) float64 {
	return degToRad(latitude)
}
