// Package solartime computes sunrise, sunset, the civil, nautical and
// astronomical twilight boundaries, solar noon and solar midnight for any
// place and day, and classifies an instant into a day period.
//
// Events are returned as (time.Time, bool) pairs. A false result means the
// event does not occur that day at that place (polar day or polar night);
// it is never an error. Returned times carry the location of the day that was
// passed in.
//
//	st := solartime.New()
//	rise, ok := st.Sunrise(day, 51.449680, 6.973370)
//
// All values are computed from the sunrise equation and are accurate to about
// a minute. SolarTime and SunState hold no mutable state and are safe for
// concurrent use.
package solartime
