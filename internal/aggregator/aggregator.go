// Package aggregator merges the per-day and sidecar content files into the
// single day-array artifact the site is rendered from.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"photo_archive/internal/astro"
	"photo_archive/internal/domain"
)

// Config holds aggregator configuration.
type Config struct {
	ContentDir string
	Glob       string
	OutputPath string
}

type Aggregator struct {
	contentDir string
	glob       string
	outputPath string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Aggregator {
	glob := cfg.Glob
	if glob == "" {
		glob = "*.json"
	}
	return &Aggregator{
		contentDir: cfg.ContentDir,
		glob:       glob,
		outputPath: cfg.OutputPath,
		logger:     logger.With("component", "aggregator"),
	}
}

// Build runs one aggregation pass: scan, merge, normalize, sort, write.
// Malformed source files are skipped with a warning; a missing or empty
// content directory produces an empty artifact, not an error.
func (a *Aggregator) Build(ctx context.Context) (*domain.BuildStats, error) {
	startTime := time.Now()
	stats := &domain.BuildStats{}

	files, err := a.listFiles()
	if err != nil {
		return nil, fmt.Errorf("list content files: %w", err)
	}
	stats.Files = len(files)

	byDate := make(map[string]*domain.DayRecord)
	var dates []string

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, err := os.ReadFile(file)
		if err != nil {
			a.skip(stats, file, fmt.Sprintf("read: %v", err))
			continue
		}

		unit, err := parseUnit(data)
		if err != nil {
			a.skip(stats, file, err.Error())
			continue
		}

		mergeUnit(byDate, &dates, unit)
	}

	days := make([]domain.DayRecord, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		normalizeDay(day)
		stats.Images += len(day.Images)
		days = append(days, *day)
	}

	// ISO dates compare lexicographically.
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	stats.Days = len(days)

	if err := a.write(days); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	stats.Duration = time.Since(startTime)

	a.logger.Info("build completed",
		"files", stats.Files,
		"skipped", stats.Skipped,
		"days", stats.Days,
		"images", stats.Images,
		"output", a.outputPath,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (a *Aggregator) listFiles() ([]string, error) {
	if _, err := os.Stat(a.contentDir); os.IsNotExist(err) {
		a.logger.Warn("content directory missing", "dir", a.contentDir)
		return nil, nil
	}

	pattern := filepath.Join(a.contentDir, a.glob)
	files, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	sort.Strings(files)
	return files, nil
}

func (a *Aggregator) skip(stats *domain.BuildStats, file, reason string) {
	stats.Skipped++
	stats.Warnings = append(stats.Warnings, domain.BuildWarning{File: file, Reason: reason})
	a.logger.Warn("skipping content file", "file", file, "reason", reason)
}

// mergeUnit folds one parsed unit into the day collection. Images from files
// sharing a date are concatenated; location and coordinates come from the
// first file seen for that date.
func mergeUnit(byDate map[string]*domain.DayRecord, dates *[]string, unit sourceUnit) {
	day, ok := byDate[unit.day.Date]
	if !ok {
		d := unit.day
		byDate[d.Date] = &d
		*dates = append(*dates, d.Date)
		return
	}

	day.Images = append(day.Images, unit.day.Images...)
	if day.Location == "" {
		day.Location = unit.day.Location
	}
	if day.Lat == nil {
		day.Lat = unit.day.Lat
	}
	if day.Lng == nil {
		day.Lng = unit.day.Lng
	}
	if day.IsHero == nil {
		day.IsHero = unit.day.IsHero
		day.HeroIndex = unit.day.HeroIndex
	}
}

// normalizeDay sorts a day's images ascending by time (missing times sort
// first), derives missing tags, and migrates legacy hero flags.
func normalizeDay(day *domain.DayRecord) {
	sort.SliceStable(day.Images, func(i, j int) bool {
		return day.Images[i].Time < day.Images[j].Time
	})

	for i := range day.Images {
		img := &day.Images[i]
		if img.Type == "" {
			img.Type = domain.MediaImage
		}
		if img.Tag == "" {
			img.Tag = astro.DeriveTag(img.Time)
		}
	}

	day.MigrateHeroFlags()
}

func (a *Aggregator) write(days []domain.DayRecord) error {
	if err := os.MkdirAll(filepath.Dir(a.outputPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(a.outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.outputPath, err)
	}

	return nil
}
