// Package astro holds the pure time-of-day helpers: the HH:MM based
// sunrise/sunset classification the pipeline uses, and a low-precision
// solar-position estimate kept as a building block for a more accurate
// boundary.
package astro

import (
	"math"
	"strconv"
	"strings"

	"photo_archive/internal/domain"
)

// DeriveTag classifies a local HH:MM capture time: strictly before 12:00 is
// sunrise, everything else sunset. A missing or unparseable time defaults to
// sunrise.
func DeriveTag(hhmm string) domain.Tag {
	decimal, ok := parseClock(hhmm)
	if !ok {
		return domain.TagSunrise
	}
	if decimal < 12.0 {
		return domain.TagSunrise
	}
	return domain.TagSunset
}

// parseClock converts "HH:MM" to decimal hours.
func parseClock(hhmm string) (float64, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return float64(hour) + float64(minute)/60, true
}

// SolarNoonUTC returns solar noon for the given day and longitude as UTC
// decimal hours, using the standard low-precision solar-position
// approximation (equation of time from solar mean longitude, anomaly, and
// right ascension). epochMillis is any instant within the UTC day.
func SolarNoonUTC(epochMillis int64, lng float64) float64 {
	jd := math.Floor(float64(epochMillis)/86_400_000) + 2440587.5
	n := jd - 2451545.0

	l := math.Mod(280.46+0.9856474*n, 360)
	if l < 0 {
		l += 360
	}
	g := deg2rad(math.Mod(357.528+0.9856003*n, 360))
	lambda := deg2rad(l + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))
	eps := deg2rad(23.439 - 0.0000004*n)

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda)) * 12 / math.Pi
	eot := l/15 - math.Mod(ra+24, 24)

	return 12 - lng/15 - eot
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
