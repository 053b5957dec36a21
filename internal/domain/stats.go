package domain

import "time"

// BuildWarning records a source file that was skipped during aggregation.
type BuildWarning struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// BuildStats holds statistics about one aggregation run.
type BuildStats struct {
	Files    int
	Skipped  int
	Days     int
	Images   int
	Warnings []BuildWarning
	Duration time.Duration
}

// ProcessStats holds statistics about one processing pass.
type ProcessStats struct {
	Source          string        `json:"source"` // "artifact" or "demo"
	Days            int           `json:"days"`
	Images          int           `json:"images"`
	WeatherResolved int           `json:"weather_resolved"`
	WeatherMissing  int           `json:"weather_missing"`
	Duration        time.Duration `json:"duration"`
}
