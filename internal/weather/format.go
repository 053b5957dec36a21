package weather

import (
	"fmt"
	"math"
	"unicode"
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass maps a wind direction in degrees to one of eight compass points by
// rounding into 45° sectors.
func Compass(deg float64) string {
	idx := int(math.Round(deg/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}

// FormatSummary renders the short human-readable weather line, e.g.
// "61°F · Clear · Wind SW 6mph". Temperature and wind speed are rounded to
// the nearest integer and the description's first letter is capitalized.
func FormatSummary(tempF, windMph, windDeg float64, description string) string {
	return fmt.Sprintf("%d°F · %s · Wind %s %dmph",
		int(math.Round(tempF)),
		capitalize(description),
		Compass(windDeg),
		int(math.Round(windMph)),
	)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
