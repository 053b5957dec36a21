// Package weather resolves a short historical-weather summary for a capture
// moment. Lookups go through a process-lifetime in-memory cache and an
// optional persistent store before touching the provider; any failure
// resolves to a miss so the caller can substitute the placeholder.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Query identifies one capture moment to resolve weather for.
type Query struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM, may be empty
	Lat  float64
	Lng  float64
}

// Store is the persistent cache contract. Implementations must treat a
// missing key as a non-error miss.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, summary string) error
}

// Config holds weather client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	store      Store // nil when no persistent cache is configured
	cache      map[string]string
	logger     *slog.Logger
}

func New(cfg Config, store Store, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		store:   store,
		cache:   make(map[string]string),
		logger:  logger.With("component", "weather"),
	}
}

// CacheKey composes the cache key from the date and the coordinates rounded
// to one decimal place, so nearby shoots on the same day share an entry.
func CacheKey(date string, lat, lng float64) string {
	return fmt.Sprintf("%s|%.1f|%.1f", date, lat, lng)
}

// Resolve returns the weather summary for a query and whether one could be
// resolved. Enrichment must keep going whatever the provider does, so errors
// never escape: a failed lookup is logged and reported as a miss.
func (c *Client) Resolve(ctx context.Context, q Query) (string, bool) {
	key := CacheKey(q.Date, q.Lat, q.Lng)

	if summary, ok := c.cache[key]; ok {
		return summary, true
	}

	if c.store != nil {
		summary, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.logger.Warn("weather cache read failed", "key", key, "error", err)
		} else if ok {
			c.cache[key] = summary
			return summary, true
		}
	}

	summary, err := c.fetch(ctx, q)
	if err != nil {
		c.logger.Debug("weather lookup failed", "key", key, "error", err)
		return "", false
	}

	c.cache[key] = summary
	if c.store != nil {
		if err := c.store.Put(ctx, key, summary); err != nil {
			c.logger.Warn("weather cache write failed", "key", key, "error", err)
		}
	}

	return summary, true
}

func (c *Client) fetch(ctx context.Context, q Query) (string, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", q.Lat))
	params.Set("lon", fmt.Sprintf("%f", q.Lng))
	params.Set("dt", fmt.Sprintf("%d", captureUnix(q.Date, q.Time)))
	params.Set("units", "imperial")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Data) == 0 {
		return "", fmt.Errorf("empty data point")
	}

	point := apiResp.Data[0]
	if len(point.Weather) == 0 {
		return "", fmt.Errorf("missing weather condition")
	}

	return FormatSummary(point.Temp, point.WindSpeed, point.WindDeg, point.Weather[0].Description), nil
}

// captureUnix converts a capture date and HH:MM to a UTC unix timestamp.
// A missing or malformed time falls back to midday.
func captureUnix(date, hhmm string) int64 {
	if hhmm != "" {
		if ts, err := time.Parse("2006-01-02 15:04", date+" "+hhmm); err == nil {
			return ts.Unix()
		}
	}
	if ts, err := time.Parse("2006-01-02 15:04", date+" 12:00"); err == nil {
		return ts.Unix()
	}
	return 0
}

type apiResponse struct {
	Data []dataPoint `json:"data"`
}

type dataPoint struct {
	Temp      float64     `json:"temp"`
	WindSpeed float64     `json:"wind_speed"`
	WindDeg   float64     `json:"wind_deg"`
	Weather   []condition `json:"weather"`
}

type condition struct {
	Description string `json:"description"`
}
