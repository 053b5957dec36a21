// Package processor turns the aggregated artifact (or the demo fallback)
// into the render-ready archive: labeled, tagged, weather-enriched days plus
// the derived week buckets and flat navigation sequence.
package processor

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"sort"
	"strings"
	"time"

	"photo_archive/internal/astro"
	"photo_archive/internal/domain"
	"photo_archive/internal/weather"
)

// Config holds processor configuration.
type Config struct {
	DefaultLocation string
	DefaultLat      float64
	DefaultLng      float64
}

type Service struct {
	source  ArtifactSource
	weather WeatherResolver // nil when no provider key is configured
	logger  *slog.Logger
	config  Config
}

func NewService(source ArtifactSource, weather WeatherResolver, logger *slog.Logger, cfg Config) *Service {
	return &Service{
		source:  source,
		weather: weather,
		logger:  logger.With("component", "processor"),
		config:  cfg,
	}
}

// Process runs one full enrichment pass. It never fails: an unloadable
// artifact falls back to the demo dataset, an unresolvable weather lookup
// falls back to the placeholder, and every image comes out with an id, a
// tag, a location, and a weather string.
func (s *Service) Process(ctx context.Context) (*domain.Archive, *domain.ProcessStats) {
	startTime := time.Now()

	stats := &domain.ProcessStats{Source: "artifact"}

	days, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Warn("artifact unavailable, using demo data", "error", err)
		days = domain.DemoDays()
		stats.Source = "demo"
	}

	for i := range days {
		s.enrichDay(ctx, &days[i], stats)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})

	archive := &domain.Archive{
		Days:     days,
		Weeks:    BuildWeeks(days),
		Sequence: flatten(days),
	}

	stats.Days = len(days)
	stats.Duration = time.Since(startTime)

	s.logger.Info("processing completed",
		"source", stats.Source,
		"days", stats.Days,
		"images", stats.Images,
		"weather_resolved", stats.WeatherResolved,
		"weather_missing", stats.WeatherMissing,
		"duration", stats.Duration,
	)

	return archive, stats
}

func (s *Service) enrichDay(ctx context.Context, day *domain.DayRecord, stats *domain.ProcessStats) {
	lat, lng := s.config.DefaultLat, s.config.DefaultLng
	if day.Lat != nil {
		lat = *day.Lat
	}
	if day.Lng != nil {
		lng = *day.Lng
	}

	day.Label = dateLabel(day.Date)
	day.MigrateHeroFlags()

	for i := range day.Images {
		img := &day.Images[i]
		stats.Images++

		if img.Type == "" {
			img.Type = domain.MediaImage
		}
		if img.Tag == "" {
			img.Tag = astro.DeriveTag(img.Time)
		}
		if img.ID == "" {
			img.ID = fallbackID(day.Date, img.Time)
		}
		if img.Location == "" {
			img.Location = day.Location
		}
		if img.Location == "" {
			img.Location = s.config.DefaultLocation
		}

		if img.Weather == "" && s.weather != nil {
			// Sequential on purpose: one in-flight lookup at a time.
			if summary, ok := s.weather.Resolve(ctx, weather.Query{
				Date: day.Date,
				Time: img.Time,
				Lat:  lat,
				Lng:  lng,
			}); ok {
				img.Weather = summary
			}
		}
		if img.Weather == "" {
			img.Weather = domain.WeatherPlaceholder
		}
		if img.Weather == domain.WeatherPlaceholder {
			stats.WeatherMissing++
		} else {
			stats.WeatherResolved++
		}
	}
}

// dateLabel renders the long-form date, e.g. "Saturday, June 14, 2025". An
// unparseable date falls back to the raw string.
func dateLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// fallbackID builds a practically unique id from the capture date and time
// plus a short random suffix.
func fallbackID(date, hhmm string) string {
	clock := strings.ReplaceAll(hhmm, ":", "")
	if clock == "" {
		clock = "0000"
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			suffix[i] = 'x'
			continue
		}
		suffix[i] = base36[n.Int64()]
	}

	return date + "-" + clock + "-" + string(suffix)
}

// flatten builds the flat navigation sequence: all images of all days, in
// day order, each image keeping its within-day position.
func flatten(days []domain.DayRecord) []domain.SequenceEntry {
	sequence := make([]domain.SequenceEntry, 0)
	for _, day := range days {
		for _, img := range day.Images {
			sequence = append(sequence, domain.SequenceEntry{
				Date:  day.Date,
				Label: day.Label,
				Image: img,
			})
		}
	}
	return sequence
}
