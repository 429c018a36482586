package astro

import "math"

// HourAngle returns the hour angle in radians at which the Sun crosses
// altitude for an observer at latitudeRad, given the solar declination. It
// reports false when the Sun never reaches the altitude that day.
func HourAngle(altitude Altitude, latitudeRad, declination float64) (float64, bool) {
	cosOmega := (math.Sin(degToRad(altitude.Degrees())) - math.Sin(latitudeRad)*math.Sin(declination)) /
		(math.Cos(latitudeRad) * math.Cos(declination))

	omega := math.Acos(cosOmega)
	if math.IsNaN(omega) {
		return 0, false
	}
	return omega, true
}

// Is24HourDay reports whether the Sun stays above the horizon all day.
func Is24HourDay(latitudeRad, declination float64) bool {
	return math.Tan(latitudeRad)*math.Tan(declination) > 1
}

// Is24HourNight reports whether the Sun stays below the horizon all day.
func Is24HourNight(latitudeRad, declination float64) bool {
	return math.Tan(latitudeRad)*math.Tan(declination) < -1
}
