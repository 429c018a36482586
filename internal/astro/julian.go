package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// Day counts of the Gregorian cycles used when inverting a Julian Day Number.
const (
	daysPer400Years = 146097
	daysPerCentury  = 36524
	daysPer4Years   = 1461
	daysPer5Months  = 153
)

// ToJulianDate converts t to a Julian Date. The instant is normalized to UTC
// first and sub-second precision is dropped. Years use astronomical numbering
// (1 BC is year 0).
func ToJulianDate(t time.Time) float64 {
	t = t.UTC()

	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	// March-based year so that the leap day falls at the end.
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	hour := float64(t.Hour())
	minute := float64(t.Minute())
	second := float64(t.Second())

	return float64(jdn) + (hour-12)/24 + minute/1440 + second/86400
}

// ToGregorian converts a Julian Date to an instant, rounded to the nearest
// second, and expresses it in loc. A nil loc means the system local zone.
func ToGregorian(jd float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	// Shift the epoch to midnight and then back to March 1, 4801 BC.
	J := int(jd + 0.5)
	j := J + 32044

	g := j / daysPer400Years
	dg := j % daysPer400Years

	c := (dg/daysPerCentury + 1) * 3 / 4
	dc := dg - c*daysPerCentury

	b := dc / daysPer4Years
	db := dc % daysPer4Years

	a := (db/365 + 1) * 3 / 4
	da := db - a*365

	// Full years since March 1, 4801 BC and full months since the last March 1.
	y := g*400 + c*100 + b*4 + a
	m := (da*5+308)/daysPer5Months - 2
	d := da - (m+4)*daysPer5Months/5 + 122

	year := y - 4800 + (m+2)/12
	month := (m+2)%12 + 1
	day := d + 1

	fraction := (jd + 0.5) - float64(J)
	hours := int(fraction * 24)
	minutes := int((fraction*24 - float64(hours)) * 60)
	// May round up to 60; adding it as a duration carries into the minute.
	seconds := int(fraction*24*3600 - float64(hours*3600+minutes*60) + 0.5)

	utc := time.Date(year, time.Month(month), day, hours, minutes, 0, 0, time.UTC).
		Add(time.Duration(seconds) * time.Second)
	return utc.In(loc)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
