package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"photo_archive/internal/domain"
)

func TestDeriveTag(t *testing.T) {
	tests := []struct {
		time string
		want domain.Tag
	}{
		{"05:47", domain.TagSunrise},
		{"11:59", domain.TagSunrise},
		{"12:00", domain.TagSunset},
		{"20:11", domain.TagSunset},
		{"00:00", domain.TagSunrise},
		{"23:59", domain.TagSunset},
		{"", domain.TagSunrise},
		{"noon", domain.TagSunrise},
		{"12", domain.TagSunrise},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTag(tt.time))
		})
	}
}

func TestSolarNoonUTC(t *testing.T) {
	tests := []struct {
		name string
		date string
		lng  float64
		want float64
	}{
		{"puget sound midsummer", "2025-06-14", -122.3, 20.157584685554824},
		{"greenwich new year", "2025-01-01", 0.0, 12.057489408472016},
		{"greenwich midsummer", "2025-06-14", 0.0, 12.00425135222149},
		{"berlin november", "2024-11-03", 13.4, 10.832566148909022},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)

			got := SolarNoonUTC(day.UnixMilli(), tt.lng)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
