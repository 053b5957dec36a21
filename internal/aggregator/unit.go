package aggregator

import (
	"encoding/json"
	"fmt"

	"photo_archive/internal/domain"
)

// unitShape discriminates the two accepted content-file shapes.
type unitShape string

const (
	// shapeSidecar is one JSON file per image, stored alongside the asset.
	shapeSidecar unitShape = "sidecar"
	// shapeDay is one JSON file per calendar date with an images array.
	shapeDay unitShape = "day"
)

// sourceUnit is one parsed content file, resolved to a single shape at parse
// time. Whatever the input shape, it contributes one partial DayRecord.
type sourceUnit struct {
	shape unitShape
	day   domain.DayRecord
}

// rawUnit is the superset of both shapes as they appear on disk. An explicit
// "shape" field wins; legacy files without one are classified by whether a
// top-level "src" is present.
type rawUnit struct {
	Shape    string   `json:"shape"`
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`

	// per-day shape
	Images    []domain.ImageRecord `json:"images"`
	IsHero    *bool                `json:"is_hero"`
	HeroIndex *int                 `json:"hero_index"`

	// sidecar shape
	ID      string           `json:"id"`
	Src     string           `json:"src"`
	Type    domain.MediaType `json:"type"`
	Time    string           `json:"time"`
	Caption string           `json:"caption"`
	Tag     domain.Tag       `json:"tag"`
	Weather string           `json:"weather"`
	Hero    bool             `json:"hero"`
}

// parseUnit decodes one content file. Files without a date are rejected here
// so the caller can skip them with a warning.
func parseUnit(data []byte) (sourceUnit, error) {
	var raw rawUnit
	if err := json.Unmarshal(data, &raw); err != nil {
		return sourceUnit{}, fmt.Errorf("parse json: %w", err)
	}

	if raw.Date == "" {
		return sourceUnit{}, fmt.Errorf("missing date")
	}

	shape, err := resolveShape(raw)
	if err != nil {
		return sourceUnit{}, err
	}

	unit := sourceUnit{
		shape: shape,
		day: domain.DayRecord{
			Date:     raw.Date,
			Location: raw.Location,
			Lat:      raw.Lat,
			Lng:      raw.Lng,
		},
	}

	switch shape {
	case shapeSidecar:
		unit.day.Images = []domain.ImageRecord{{
			ID:      raw.ID,
			Src:     raw.Src,
			Type:    raw.Type,
			Time:    raw.Time,
			Caption: raw.Caption,
			Tag:     raw.Tag,
			Weather: raw.Weather,
			Hero:    raw.Hero,
		}}
	case shapeDay:
		unit.day.Images = raw.Images
		unit.day.IsHero = raw.IsHero
		unit.day.HeroIndex = raw.HeroIndex
	}

	return unit, nil
}

func resolveShape(raw rawUnit) (unitShape, error) {
	switch raw.Shape {
	case string(shapeSidecar):
		if raw.Src == "" {
			return "", fmt.Errorf("sidecar shape without src")
		}
		return shapeSidecar, nil
	case string(shapeDay):
		return shapeDay, nil
	case "":
		// Legacy files carry no shape marker.
		if raw.Src != "" {
			return shapeSidecar, nil
		}
		return shapeDay, nil
	default:
		return "", fmt.Errorf("unknown shape %q", raw.Shape)
	}
}
