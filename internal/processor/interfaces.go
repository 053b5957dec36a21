package processor

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"photo_archive/internal/domain"
	"photo_archive/internal/weather"
)

// ArtifactSource loads the aggregated day array.
type ArtifactSource interface {
	Load(ctx context.Context) ([]domain.DayRecord, error)
}

// WeatherResolver resolves a weather summary for a capture moment. A false
// return is a miss; the processor substitutes the placeholder.
type WeatherResolver interface {
	Resolve(ctx context.Context, q weather.Query) (string, bool)
}
