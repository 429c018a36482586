package astro

import "fmt"

// Altitude is a solar elevation angle in degrees. Negative values are below
// the horizon.
type Altitude float64

// Sun altitude thresholds for the named sunrise/sunset and twilight events.
const (
	// SunriseSunset accounts for refraction and the solar disc radius.
	SunriseSunset Altitude = -0.833
	Civil         Altitude = -6.0
	Nautical      Altitude = -12.0
	Astronomical  Altitude = -18.0
)

// Degrees returns the threshold as a plain float64.
func (a Altitude) Degrees() float64 {
	return float64(a)
}

func (a Altitude) String() string {
	switch a {
	case SunriseSunset:
		return "sunrise/sunset"
	case Civil:
		return "civil"
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("%.3f°", float64(a))
	}
}
