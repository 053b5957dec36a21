package domain

// Tag classifies an image by the half of the day it was shot in.
type Tag string

const (
	TagSunrise Tag = "sunrise"
	TagSunset  Tag = "sunset"
)

// MediaType distinguishes still frames from clips.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// WeatherPlaceholder is rendered for any image whose weather could not be
// resolved.
const WeatherPlaceholder = "—"

// ImageRecord is one photographed or filmed moment.
type ImageRecord struct {
	ID       string    `json:"id,omitempty"`
	Src      string    `json:"src"`
	Type     MediaType `json:"type,omitempty"`
	Time     string    `json:"time,omitempty"` // HH:MM, 24-hour, local
	Caption  string    `json:"caption,omitempty"`
	Tag      Tag       `json:"tag,omitempty"`
	Weather  string    `json:"weather,omitempty"`
	Location string    `json:"location,omitempty"`
	Hero     bool      `json:"hero,omitempty"`
}

// DayRecord is one calendar date's shoot.
//
// IsHero/HeroIndex are the legacy day-level hero flags; they are still
// accepted on input and migrated onto the per-image Hero flag during
// normalization.
type DayRecord struct {
	Date     string        `json:"date"` // YYYY-MM-DD
	Location string        `json:"location,omitempty"`
	Lat      *float64      `json:"lat,omitempty"`
	Lng      *float64      `json:"lng,omitempty"`
	Images   []ImageRecord `json:"images"`

	IsHero    *bool `json:"is_hero,omitempty"`
	HeroIndex *int  `json:"hero_index,omitempty"`

	// Label is derived during processing; the aggregator never sets it, so
	// it is absent from the persisted artifact.
	Label string `json:"label,omitempty"`
}

// MigrateHeroFlags moves the legacy day-level hero flags onto the flagged
// image and clears them. A HeroIndex outside the image range is dropped.
func (d *DayRecord) MigrateHeroFlags() {
	if d.IsHero != nil && *d.IsHero {
		idx := 0
		if d.HeroIndex != nil {
			idx = *d.HeroIndex
		}
		if idx >= 0 && idx < len(d.Images) {
			d.Images[idx].Hero = true
		}
	}
	d.IsHero = nil
	d.HeroIndex = nil
}

// WeekBucket groups days by the Sunday that begins their week. Derived,
// never persisted.
type WeekBucket struct {
	WeekStart string      `json:"weekStart"` // YYYY-MM-DD, always a Sunday
	Days      []DayRecord `json:"days"`
}

// SequenceEntry is one position in the flat navigation sequence.
type SequenceEntry struct {
	Date  string      `json:"date"`
	Label string      `json:"label"`
	Image ImageRecord `json:"image"`
}

// Archive is the fully processed, render-ready view of the content:
// enriched days newest-first, their week buckets, and the flat sequence
// used for sequential viewing. Rebuilt from scratch on every processing
// pass.
type Archive struct {
	Days     []DayRecord     `json:"days"`
	Weeks    []WeekBucket    `json:"weeks"`
	Sequence []SequenceEntry `json:"sequence"`
}
